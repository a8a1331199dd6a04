// Package auth orchestrates a full portal login: credentials lookup,
// session handshake and the web-to-app strong authentication loop.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/etnz/bourso"
	"github.com/etnz/bourso/settings"
	"github.com/etnz/bourso/web"
)

// Client is the slice of the session client the service drives.
type Client interface {
	InitSession(ctx context.Context) error
	Login(ctx context.Context, clientNumber bourso.ClientNumber, password bourso.Password) error
	RequestMfa(ctx context.Context) (*web.MfaChallenge, error)
	CheckMfa(ctx context.Context, challenge *web.MfaChallenge) (done bool, qr string, err error)
}

// CredentialsProvider supplies the credentials the portal may ask for
// during a login.
type CredentialsProvider interface {
	ReadPassword() (bourso.Password, error)
	// ReadMfaCode prompts for an SMS or email confirmation code. The
	// web-to-app flow never asks for one; code channels are detected and
	// rejected upstream, so this is only reached if the portal brings
	// them back.
	ReadMfaCode() (bourso.MfaCode, error)
}

// Service logs a user in end to end.
type Service struct {
	store       settings.Store
	credentials CredentialsProvider
	newClient   func() Client

	// Poll is the interval between two strong authentication checks.
	Poll time.Duration
	// ShowQR displays a challenge QR code to the operator. Nil means the
	// code is dropped.
	ShowQR func(payload string)

	// unsealPassword opens a stored sealed password. Nil means stored
	// passwords are ignored.
	unsealPassword func(string) (bourso.Password, error)
}

// mfaRetryThreshold is the number of consecutive still-pending outcomes
// after which a fresh login attempt replaces another challenge round. A
// stale challenge sometimes never confirms; a new session recovers.
const mfaRetryThreshold = 2

// NewService wires a service around a settings store.
func NewService(store settings.Store, credentials CredentialsProvider, newClient func() Client) *Service {
	s := &Service{
		store:       store,
		credentials: credentials,
		newClient:   newClient,
		Poll:        2 * time.Second,
	}
	if fs, ok := store.(*settings.FileStore); ok {
		s.unsealPassword = fs.OpenPassword
	}
	return s
}

// Login returns an authenticated client, driving strong authentication
// when the portal demands it. It fails when no client number is
// configured.
func (s *Service) Login(ctx context.Context) (Client, error) {
	stored, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if stored.ClientNumber == "" {
		return nil, errors.New("no client number configured, run `bourso configure` first")
	}
	clientNumber, err := bourso.NewClientNumber(stored.ClientNumber)
	if err != nil {
		return nil, err
	}

	var password bourso.Password
	if stored.SealedPassword != "" && s.unsealPassword != nil {
		password, err = s.unsealPassword(stored.SealedPassword)
		if err != nil {
			return nil, err
		}
	} else {
		password, err = s.credentials.ReadPassword()
		if err != nil {
			return nil, err
		}
	}

	client := s.newClient()
	if err := client.InitSession(ctx); err != nil {
		return nil, err
	}
	err = client.Login(ctx, clientNumber, password)
	if errors.Is(err, web.ErrMfaRequired) {
		return s.handleMfa(ctx, client, clientNumber, password)
	}
	if err != nil {
		return nil, err
	}
	log.Printf("login successful")
	return client, nil
}

// handleMfa runs the challenge loop: request a challenge, poll until the
// user confirms in their app, re-request on a stale challenge, and after
// mfaRetryThreshold stale rounds start a clean login instead.
func (s *Service) handleMfa(ctx context.Context, client Client, clientNumber bourso.ClientNumber, password bourso.Password) (Client, error) {
	var stale int
	for {
		if stale == mfaRetryThreshold {
			log.Printf("strong authentication still pending after %d rounds, starting a fresh login", stale)
			if err := client.InitSession(ctx); err != nil {
				return nil, err
			}
			if err := client.Login(ctx, clientNumber, password); err != nil {
				return nil, err
			}
			log.Printf("login successful")
			return client, nil
		}

		challenge, err := client.RequestMfa(ctx)
		if err != nil {
			return nil, err
		}
		log.Printf("confirm the login in your BoursoBank app")

		done, err := s.poll(ctx, client, challenge)
		if errors.Is(err, web.ErrMfaRequired) {
			stale++
			continue
		}
		if err != nil {
			return nil, err
		}
		if done {
			log.Printf("strong authentication confirmed")
			return client, nil
		}
	}
}

// poll checks the challenge until it is confirmed or the context ends.
func (s *Service) poll(ctx context.Context, client Client, challenge *web.MfaChallenge) (bool, error) {
	ticker := time.NewTicker(s.Poll)
	defer ticker.Stop()
	var lastQR string
	for {
		done, qr, err := client.CheckMfa(ctx, challenge)
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
		if qr != "" && qr != lastQR {
			lastQR = qr
			if s.ShowQR != nil {
				s.ShowQR(qr)
			}
		}
		select {
		case <-ctx.Done():
			return false, fmt.Errorf("strong authentication interrupted: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}
