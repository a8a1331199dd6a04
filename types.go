package bourso

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors for the portal's value types. The portal itself gives
// no useful feedback on malformed values, so everything is checked here,
// before any network call.
var (
	ErrInvalidClientNumber = errors.New("invalid client number: must be 8 digits (0-9)")
	ErrInvalidAccountID    = errors.New("invalid account id: must be 32 hexadecimal characters (0-9, a-f)")
	ErrInvalidSymbolID     = errors.New("invalid symbol id: must be 6-12 alphanumeric characters")
	ErrInvalidAmount       = errors.New("invalid money amount: must be positive with at most 2 decimal places")
	ErrInvalidReason       = errors.New("invalid transfer reason: must be at most 50 characters")
	ErrInvalidMfaCode      = errors.New("invalid mfa code: must be 6-12 digits (0-9)")
	ErrEmptyPassword       = errors.New("invalid password: must be a non-empty string")
)

// ClientNumber is the 8-digit customer identifier used to log in.
type ClientNumber string

func NewClientNumber(s string) (ClientNumber, error) {
	s = strings.TrimSpace(s)
	if len(s) != 8 || !isDigits(s) {
		return "", ErrInvalidClientNumber
	}
	return ClientNumber(s), nil
}

// Password is the numeric password typed on the virtual keypad.
type Password string

func NewPassword(s string) (Password, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyPassword
	}
	return Password(s), nil
}

// MfaCode is a one-time code received by email or SMS.
type MfaCode string

func NewMfaCode(s string) (MfaCode, error) {
	s = strings.TrimSpace(s)
	if len(s) < 6 || len(s) > 12 || !isDigits(s) {
		return "", ErrInvalidMfaCode
	}
	return MfaCode(s), nil
}

// AccountID is the opaque 32-character hexadecimal account identifier the
// portal uses in its URLs.
type AccountID string

func NewAccountID(s string) (AccountID, error) {
	s = strings.TrimSpace(s)
	if len(s) != 32 || !isHex(s) {
		return "", ErrInvalidAccountID
	}
	return AccountID(s), nil
}

// SymbolID identifies a tradable instrument (e.g. "1rTCW8").
type SymbolID string

func NewSymbolID(s string) (SymbolID, error) {
	s = strings.TrimSpace(s)
	if len(s) < 6 || len(s) > 12 || !isAlnum(s) {
		return "", ErrInvalidSymbolID
	}
	return SymbolID(s), nil
}

// TransferReason is the free-text label attached to a transfer. The
// portal rejects labels longer than 50 characters.
type TransferReason string

func NewTransferReason(s string) (TransferReason, error) {
	s = strings.TrimSpace(s)
	if len(s) > 50 {
		return "", ErrInvalidReason
	}
	return TransferReason(s), nil
}

// Amount is a positive monetary amount with at most two decimal places.
type Amount struct {
	value decimal.Decimal
}

func NewAmount(value decimal.Decimal) (Amount, error) {
	if !value.IsPositive() || !value.Equal(value.Round(2)) {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: value}, nil
}

// ParseAmount parses a decimal string like "125.50".
func ParseAmount(s string) (Amount, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	return NewAmount(value)
}

func NewAmountFromFloat(v float64) (Amount, error) {
	return NewAmount(decimal.NewFromFloat(v))
}

// LessThan reports whether the amount is strictly below v.
func (a Amount) LessThan(v int64) bool {
	return a.value.LessThan(decimal.NewFromInt(v))
}

// String renders the amount with two decimals and a dot separator.
func (a Amount) String() string {
	return a.value.StringFixed(2)
}

// Cents returns the amount in minor units.
func (a Amount) Cents() int64 {
	return a.value.Mul(decimal.NewFromInt(100)).IntPart()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

func isAlnum(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
