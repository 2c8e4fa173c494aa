package domain

import (
	"regexp"
	"strings"

	"store-ratings/internal/apperr"
)

const (
	NameMinLen     = 20
	NameMaxLen     = 60
	PasswordMinLen = 8
	PasswordMaxLen = 16
	AddressMaxLen  = 400

	// The fixed special-character set a password must draw from.
	PasswordSpecials = "!@#$&*"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func CheckName(name string) *apperr.FieldError {
	if n := len(name); n < NameMinLen || n > NameMaxLen {
		return &apperr.FieldError{Field: "name", Message: "Name must be between 20 and 60 characters"}
	}
	return nil
}

func CheckEmail(email string) *apperr.FieldError {
	if !emailRe.MatchString(email) {
		return &apperr.FieldError{Field: "email", Message: "Must provide a valid email address"}
	}
	return nil
}

func CheckPassword(pw string) *apperr.FieldError {
	if n := len(pw); n < PasswordMinLen || n > PasswordMaxLen {
		return &apperr.FieldError{Field: "password", Message: "Password must be between 8 and 16 characters"}
	}
	hasUpper := strings.IndexFunc(pw, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0
	hasSpecial := strings.ContainsAny(pw, PasswordSpecials)
	if !hasUpper || !hasSpecial {
		return &apperr.FieldError{Field: "password", Message: "Password must contain at least one uppercase letter and one special character"}
	}
	return nil
}

func CheckAddress(addr string) *apperr.FieldError {
	if len(addr) > AddressMaxLen {
		return &apperr.FieldError{Field: "address", Message: "Address cannot exceed 400 characters"}
	}
	return nil
}

func CheckRole(role string) *apperr.FieldError {
	if _, ok := ParseRole(role); !ok {
		return &apperr.FieldError{Field: "role", Message: "Invalid role"}
	}
	return nil
}

// Collect folds field checks into a single validation error, or nil when
// every check passed.
func Collect(checks ...*apperr.FieldError) error {
	var fields []apperr.FieldError
	for _, c := range checks {
		if c != nil {
			fields = append(fields, *c)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return apperr.Validation(fields...)
}
