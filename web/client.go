// Package web implements the session client for the BoursoBank customer
// portal. The portal has no official API: every operation here drives the
// same pages a browser would, scraping tokens and markers out of the HTML
// along the way. Exact paths, form field names and page markers must match
// the portal bit for bit; any portal redesign is a breaking change.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/etnz/bourso"
	"golang.org/x/net/publicsuffix"
)

const (
	// BaseURL is the customer-facing portal.
	BaseURL = "https://clients.boursobank.com"
	// PortalURL serves the public quote endpoints.
	PortalURL = "https://www.boursorama.com"

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/141.0.0.0 Safari/537.36"
)

// AuthState tracks the login handshake.
type AuthState int

const (
	Unauthenticated AuthState = iota
	SessionInitialized
	Submitted
	Authenticated
	MfaPending
	LoginFailed
)

func (s AuthState) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case SessionInitialized:
		return "session initialized"
	case Submitted:
		return "submitted"
	case Authenticated:
		return "authenticated"
	case MfaPending:
		return "mfa pending"
	case LoginFailed:
		return "failed"
	}
	return "unknown"
}

// Client is a single logged-in (or logging-in) portal session. It owns the
// cookie jar and every token the portal hands out during the handshake.
//
// A Client is single-flight by construction: the CSRF token, challenge id
// and wizard flow tokens are single-use and position dependent, so a
// session must never be driven by two operations concurrently.
type Client struct {
	http *http.Client

	base   string // customer portal base URL
	portal string // public portal base URL (quotes)

	state AuthState

	// brsMit is the __brs_mit cookie value. The portal delivers it inside
	// an inline script on the first hit of the login page, not as a header.
	brsMit string
	// token is the CSRF form token scraped from the login page.
	token string
	// challengeID binds the randomized keypad layout to this attempt.
	challengeID string
	keypad      KeypadMapping

	config Config
}

// NewClient creates a fresh, unauthenticated session. Redirects are never
// followed automatically: the portal communicates through Location headers
// and each one must be observed.
func NewClient() *Client {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		// cookiejar.New only fails on a nil-safe option misuse.
		panic(err)
	}
	return &Client{
		http: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		base:   BaseURL,
		portal: PortalURL,
	}
}

// State returns the current authentication state.
func (c *Client) State() AuthState { return c.state }

// Config returns the portal configuration scraped during the handshake.
func (c *Client) Config() Config { return c.config }

// get issues a GET with the portal headers and returns the response body.
func (c *Client) get(ctx context.Context, url string, header http.Header) (status int, body string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", fmt.Errorf("cannot create http request %q: %w", url, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", err
	}
	return resp.StatusCode, string(b), nil
}

// post issues a POST with the portal headers.
func (c *Client) post(ctx context.Context, url, contentType string, payload io.Reader, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, payload)
	if err != nil {
		return nil, fmt.Errorf("cannot create http request %q: %w", url, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.http.Do(req)
}

// InitSession performs the login-page handshake: two successive fetches of
// the login page (the first one only yields the __brs_mit cookie, embedded
// in an inline script), then the virtual keypad fragment with its challenge
// id and randomized key layout.
func (c *Client) InitSession(ctx context.Context) error {
	// First hit: the portal emits the __brs_mit cookie in a script and
	// expects the browser to set it itself before reloading.
	_, body, err := c.get(ctx, c.base+"/connexion/", nil)
	if err != nil {
		return err
	}
	c.brsMit, err = extractBrsMitCookie(body)
	if err != nil {
		return err
	}

	base, err := url.Parse(c.base + "/")
	if err != nil {
		return fmt.Errorf("cannot parse base url: %w", err)
	}
	c.http.Jar.SetCookies(base, []*http.Cookie{
		// Removes the domain migration interstitial.
		{Name: "brsDomainMigration", Value: "migrated"},
		// Grants access to the virtual keypad fragment.
		{Name: "__brs_mit", Value: c.brsMit},
	})

	// Second hit, now carrying the cookies, returns the real login form.
	_, body, err = c.get(ctx, c.base+"/connexion/", nil)
	if err != nil {
		return err
	}
	if c.token, err = extractFormToken(body); err != nil {
		return err
	}
	if c.config, err = extractConfig(body); err != nil {
		return err
	}

	_, body, err = c.get(ctx, c.base+"/connexion/clavier-virtuel?_hinclude=1", nil)
	if err != nil {
		return err
	}
	if c.challengeID, err = extractChallengeToken(body); err != nil {
		return err
	}
	if c.keypad, err = decodeKeypad(body); err != nil {
		return err
	}

	c.state = SessionInitialized
	return nil
}

// Login submits the credentials. The password is never sent as text: each
// digit is translated to the session's randomized keypad key and the key
// identifiers are submitted instead.
//
// Returns ErrInvalidCredentials, ErrMfaRequired (recoverable, hand off to
// RequestMfa/CheckMfa) or ErrLoginFailed.
func (c *Client) Login(ctx context.Context, clientNumber bourso.ClientNumber, password bourso.Password) error {
	if c.state == Unauthenticated {
		return ErrSessionNotInitialized
	}
	keys, err := passwordToKeys(c.keypad, password)
	if err != nil {
		return err
	}

	form := []formField{
		{"form[fakePassword]", strings.Repeat("•", len(keys))},
		{"form[ajx]", "1"},
		{"form[password]", strings.Join(keys, "|")},
		// passwordAck carries keypad press timings and coordinates; the
		// portal accepts it empty.
		{"form[passwordAck]", `{"ry":[],"pt":[],"js":true}`},
		{"form[platformAuthenticatorAvailable]", "1"},
		{"form[matrixRandomChallenge]", c.challengeID},
		{"form[_token]", c.token},
		{"form[clientNumber]", string(clientNumber)},
	}
	payload, contentType, err := multipartForm(form)
	if err != nil {
		return err
	}

	resp, err := c.post(ctx, c.base+"/connexion/saisie-mot-de-passe", contentType, payload, nil)
	if err != nil {
		return err
	}
	c.state = Submitted
	if resp.StatusCode != http.StatusFound {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		body := string(b)
		c.state = LoginFailed
		if strings.Contains(body, "Identifiant ou mot de passe invalide") ||
			strings.Contains(body, "Erreur d'authentification") {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("%w: status %d", ErrLoginFailed, resp.StatusCode)
	}
	resp.Body.Close()

	_, body, err := c.get(ctx, c.base+"/", nil)
	if err != nil {
		return err
	}
	return c.classifyLanding(body)
}

// classifyLanding inspects the landing page after a credential or MFA
// submission: a logout link means we are in, a security-check hint means
// the portal wants strong authentication first.
func (c *Client) classifyLanding(body string) error {
	if strings.Contains(body, `href="/se-deconnecter"`) {
		config, err := extractConfig(body)
		if err != nil {
			return err
		}
		c.config = config
		c.state = Authenticated
		return nil
	}
	if strings.Contains(body, "/securisation") {
		c.state = MfaPending
		return ErrMfaRequired
	}
	c.state = LoginFailed
	return ErrInvalidCredentials
}

// requireAuth guards authenticated operations: the session must hold a
// populated user hash and API bearer before any network call.
func (c *Client) requireAuth() error {
	if c.state != Authenticated || c.config.UserHash == "" || c.config.DefaultAPIBearer == "" {
		return ErrNotAuthenticated
	}
	return nil
}
