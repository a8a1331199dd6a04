package web

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotInitialized means Login was called before InitSession.
	ErrSessionNotInitialized = errors.New("session not initialized, call InitSession first")
	// ErrInvalidCredentials means the portal rejected the client number or
	// the password.
	ErrInvalidCredentials = errors.New("invalid client number or password")
	// ErrLoginFailed means the credential submission failed for a reason
	// the portal did not attribute to the credentials.
	ErrLoginFailed = errors.New("login failed")
	// ErrMfaRequired means the credentials were accepted but the portal
	// demands strong authentication before the session becomes usable.
	ErrMfaRequired = errors.New("strong authentication required")
	// ErrMfaUnsupported means the portal offered an authentication channel
	// this client cannot drive.
	ErrMfaUnsupported = errors.New("unsupported strong authentication method")
	// ErrNotAuthenticated means an operation needing a logged-in session
	// ran on a session that is not (or no longer) authenticated.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// PortalChangedError reports a portal page that no longer carries an
// expected marker. It means the portal was redesigned, not that the caller
// did anything wrong.
type PortalChangedError struct {
	// Marker names what could not be found (a token, a section, a pattern).
	Marker string
}

func (e *PortalChangedError) Error() string {
	return fmt.Sprintf("portal page changed: %s not found", e.Marker)
}
