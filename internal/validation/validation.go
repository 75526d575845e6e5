// Package validation holds the field-level rules shared by the catalog
// services: identifier syntax, URL syntax, email syntax, person-name
// charset, and the password strength policy.
package validation

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	validate = validator.New()

	// nameRe allows letters and whitespace only.
	nameRe = regexp.MustCompile(`^[A-Za-z\s]+$`)

	// urlRe matches ftp/http/https URLs without spaces or quotes.
	urlRe = regexp.MustCompile(`^(ftp|http|https)://[^ "]+$`)
)

// ValidID reports whether s is a syntactically well-formed identifier.
func ValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// ValidEmail reports whether s is a syntactically valid email address.
func ValidEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// ValidName reports whether s contains only letters and whitespace and
// is not blank.
func ValidName(s string) bool {
	return nameRe.MatchString(s) && hasNonSpace(s)
}

// ValidURL reports whether s is a syntactically valid ftp/http/https URL.
func ValidURL(s string) bool {
	return urlRe.MatchString(s)
}

// StrongPassword reports whether s satisfies the strength policy:
// at least 8 characters with a lowercase letter, an uppercase letter,
// a digit, and a symbol.
func StrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

func hasNonSpace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
