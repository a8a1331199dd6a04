package web

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"regexp"

	"github.com/etnz/bourso"
)

// The virtual keypad shows ten digit glyphs in randomized positions; each
// glyph carries a three-letter key identifier valid only for the current
// challenge. The glyph images themselves never change, so hashing each
// image identifies which digit a key stands for.

// KeypadMapping maps each digit 0-9 to its key identifier for the current
// challenge.
type KeypadMapping [10]string

var (
	challengePattern = regexp.MustCompile(`(?m)data-matrix-random-challenge\]"\)\.val\("(?P<token>.*?)"\)`)
	keypadKeyPattern = regexp.MustCompile(`(?ms)<button.*?data-matrix-key="(?P<matrix_key>[A-Z]{3})".*?src="(?P<svg>data:image.*?)">.*?</button>`)
)

// glyphDigests indexes the SHA-1 of each digit's glyph image, digested as
// the full data URL the portal serves.
var glyphDigests = map[string]int{
	"4c8f62e5fd8bcef590b98f6a92ca369c35f20f66": 0,
	"b72dd7f4263e30a2524686af53a4c3e88d6e0d42": 1,
	"af18296a717961b8ca36886bf1cf8c9f888df81b": 2,
	"a1255c1d9f1535a2db0bd68170623765a2ca388a": 3,
	"7d70a713314bbf388dd00c57bf948a5c3bec5bc7": 4,
	"31d731d376fe54af6a240ac4483db497546ba5a7": 5,
	"95b29e5e4fc3a33c5ac1e97c51a27f51189ac1b0": 6,
	"74c6cd18e2d1cfb4689bccbf7fa5bd7ab1fc9a4e": 7,
	"5b71a7519878da303b8c80721625d6ad993b2f1d": 8,
	"fa65a161c462b6c46c098fa0460a7af3c9ad35dc": 9,
}

// extractChallengeToken scrapes the matrixRandomChallenge token from the
// virtual keypad fragment.
func extractChallengeToken(body string) (string, error) {
	m := challengePattern.FindStringSubmatch(body)
	if m == nil {
		return "", &PortalChangedError{Marker: "data-matrix-random-challenge"}
	}
	return m[1], nil
}

// decodeKeypad identifies every key of the keypad fragment by the SHA-1 of
// its glyph and returns the digit-to-key mapping.
func decodeKeypad(body string) (KeypadMapping, error) {
	var mapping KeypadMapping
	matches := keypadKeyPattern.FindAllStringSubmatch(body, -1)
	if len(matches) != 10 {
		return mapping, &PortalChangedError{Marker: fmt.Sprintf("virtual keypad (%d keys)", len(matches))}
	}
	var seen int
	for _, m := range matches {
		key, svg := m[1], m[2]
		sum := sha1.Sum([]byte(svg))
		digit, ok := glyphDigests[hex.EncodeToString(sum[:])]
		if !ok {
			return mapping, &PortalChangedError{Marker: fmt.Sprintf("keypad glyph for key %q", key)}
		}
		if mapping[digit] != "" {
			return mapping, &PortalChangedError{Marker: fmt.Sprintf("duplicate keypad glyph for digit %d", digit)}
		}
		mapping[digit] = key
		seen++
	}
	if seen != 10 {
		return mapping, &PortalChangedError{Marker: "incomplete virtual keypad"}
	}
	return mapping, nil
}

// passwordToKeys translates a password into the keypad key identifiers to
// submit, one per digit.
func passwordToKeys(mapping KeypadMapping, password bourso.Password) ([]string, error) {
	keys := make([]string, 0, len(password))
	for _, r := range string(password) {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("password contains %q: the virtual keypad only accepts digits", r)
		}
		keys = append(keys, mapping[r-'0'])
	}
	return keys, nil
}
