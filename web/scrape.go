package web

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"regexp"
)

// Extraction patterns for the login handshake. They are anchored on markup
// the portal has carried unchanged for years; when one stops matching the
// caller gets a PortalChangedError naming the missing marker.
var (
	brsMitPattern    = regexp.MustCompile(`(?m)__brs_mit=(?P<brs_mit_cookie>.*?);`)
	formTokenPattern = regexp.MustCompile(`(?ms)form\[_token\]"(.*?)value="(?P<token>.*?)"\s*>`)
)

// extractBrsMitCookie scrapes the __brs_mit cookie value out of the inline
// script served on the very first hit of the login page.
func extractBrsMitCookie(body string) (string, error) {
	m := brsMitPattern.FindStringSubmatch(body)
	if m == nil {
		return "", &PortalChangedError{Marker: "__brs_mit cookie"}
	}
	return m[1], nil
}

// extractFormToken scrapes the CSRF token from a form[_token] input.
func extractFormToken(body string) (string, error) {
	m := formTokenPattern.FindStringSubmatch(body)
	if m == nil {
		return "", &PortalChangedError{Marker: "form[_token]"}
	}
	return m[2], nil
}

// formField is one multipart form field. Fields keep their submission
// order: the portal's form handler is order sensitive.
type formField struct {
	name, value string
}

// multipartForm encodes fields as a multipart/form-data body and returns it
// with its Content-Type (which carries the boundary).
func multipartForm(fields []formField) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("cannot encode form field %q: %w", f.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
