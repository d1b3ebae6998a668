// Package validation validates and sanitizes user-supplied form input before
// it is persisted. Every operation is a pure function: malformed input is
// reported as data, never as an error or panic.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	maxStringLen   = 200
	maxNameLen     = 50
	minNameLen     = 2
	maxEmailLen    = 100
	minPasswordLen = 8
	maxPasswordLen = 128
	minPhoneDigits = 10
	maxPhoneDigits = 15
	minAddressLen  = 5
	maxAddressLen  = 200
)

var (
	// One or more non-space/non-@ runs around "@" and ".".
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
)

// Result is the outcome of a single-field check. Error is set if and only if
// Valid is false.
type Result struct {
	Valid bool   `json:"is_valid"`
	Error string `json:"error,omitempty"`
}

func ok() Result {
	return Result{Valid: true}
}

func fail(msg string) Result {
	return Result{Valid: false, Error: msg}
}

// PhoneResult carries the digits-only value alongside the check outcome.
// Sanitized is empty when the input was empty or invalid.
type PhoneResult struct {
	Result
	Sanitized string `json:"sanitized,omitempty"`
}

// FormResult aggregates per-field errors for a whole form. Valid is true if
// and only if Errors is empty.
type FormResult struct {
	Valid  bool              `json:"is_valid"`
	Errors map[string]string `json:"errors"`
}

// SanitizeString trims whitespace, strips angle brackets, braces, square
// brackets and quotes, replaces "&" with "and" and caps the result at 200
// characters. Empty input yields "". Idempotent.
func SanitizeString(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '<', '>', '{', '}', '[', ']', '\'', '"':
			// dropped
		case '&':
			b.WriteString("and")
		default:
			b.WriteRune(r)
		}
	}
	return truncate(b.String(), maxStringLen)
}

// SanitizeName keeps only ASCII letters, whitespace, hyphens and apostrophes,
// collapses whitespace runs to a single space and caps the result at 50
// characters. Idempotent.
func SanitizeName(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			if !prevSpace {
				b.WriteRune(' ')
			}
			prevSpace = true
		case isNameRune(r):
			b.WriteRune(r)
			prevSpace = false
		default:
			// dropped without ending a whitespace run, so "a  9  b"
			// still collapses to "a b"
		}
	}
	return strings.TrimSpace(truncate(b.String(), maxNameLen))
}

// ValidateEmail checks presence, shape and length of an email address.
func ValidateEmail(email string) Result {
	if email == "" {
		return fail("Email is required")
	}

	trimmed := strings.TrimSpace(email)
	if !emailPattern.MatchString(trimmed) {
		return fail("Please enter a valid email address")
	}
	if runeLen(trimmed) > maxEmailLen {
		return fail("Email address is too long")
	}
	return ok()
}

// ValidatePassword checks a password. Strength rules (length, upper, lower,
// digit) only apply during sign-up; the 128-character cap always applies.
func ValidatePassword(password string, isSignUp bool) Result {
	if password == "" {
		return fail("Password is required")
	}

	if isSignUp {
		if runeLen(password) < minPasswordLen {
			return fail("Password must be at least 8 characters long")
		}
		if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
			return fail("Password must contain at least one uppercase letter")
		}
		if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
			return fail("Password must contain at least one lowercase letter")
		}
		if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
			return fail("Password must contain at least one number")
		}
	}

	if runeLen(password) > maxPasswordLen {
		return fail("Password is too long")
	}
	return ok()
}

// ValidatePhone checks an optional phone number. Empty input is valid with no
// sanitized value; otherwise all non-digits are stripped and the remaining
// digit count must be between 10 and 15.
func ValidatePhone(phone string) PhoneResult {
	if phone == "" {
		return PhoneResult{Result: ok()}
	}

	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	n := digits.Len()
	if n < minPhoneDigits || n > maxPhoneDigits {
		return PhoneResult{Result: fail("Please enter a valid phone number")}
	}
	return PhoneResult{
		Result:    ok(),
		Sanitized: truncate(digits.String(), maxPhoneDigits),
	}
}

// ValidateName checks a first or last name. fieldLabel is used in the error
// message, e.g. "First name".
func ValidateName(name, fieldLabel string) Result {
	if name == "" {
		return fail(fmt.Sprintf("%s is required", fieldLabel))
	}

	sanitized := SanitizeName(name)
	n := runeLen(sanitized)

	if n < 1 {
		return fail(fmt.Sprintf("%s cannot be empty", fieldLabel))
	}
	if n < minNameLen {
		return fail(fmt.Sprintf("%s must be at least 2 characters", fieldLabel))
	}
	if n > maxNameLen {
		return fail(fmt.Sprintf("%s must be less than 50 characters", fieldLabel))
	}
	// Re-check after sanitization; SanitizeName should have removed anything
	// outside this set already.
	if !namePattern.MatchString(sanitized) {
		return fail(fmt.Sprintf("%s can only contain letters, spaces, hyphens, and apostrophes", fieldLabel))
	}
	return ok()
}

// ValidateAddress checks an optional address. Empty input is valid.
func ValidateAddress(address string) Result {
	if address == "" {
		return ok()
	}

	n := runeLen(strings.TrimSpace(address))
	if n < minAddressLen {
		return fail("Address must be at least 5 characters")
	}
	if n > maxAddressLen {
		return fail("Address must be less than 200 characters")
	}
	return ok()
}

// ValidateRegistrationForm runs every registration field check independently
// and aggregates the failures; no field short-circuits another.
func ValidateRegistrationForm(firstName, lastName, email, password, confirmPassword string) FormResult {
	errors := make(map[string]string)

	if r := ValidateName(firstName, "First name"); !r.Valid {
		errors["firstName"] = r.Error
	}
	if r := ValidateName(lastName, "Last name"); !r.Valid {
		errors["lastName"] = r.Error
	}
	if r := ValidateEmail(email); !r.Valid {
		errors["email"] = r.Error
	}
	if r := ValidatePassword(password, true); !r.Valid {
		errors["password"] = r.Error
	}
	if password != confirmPassword {
		errors["confirmPassword"] = "Passwords do not match"
	}

	return FormResult{Valid: len(errors) == 0, Errors: errors}
}

// ValidateProfileForm aggregates the profile field checks the same way.
func ValidateProfileForm(firstName, lastName, address, phoneNumber string) FormResult {
	errors := make(map[string]string)

	if r := ValidateName(firstName, "First name"); !r.Valid {
		errors["firstName"] = r.Error
	}
	if r := ValidateName(lastName, "Last name"); !r.Valid {
		errors["lastName"] = r.Error
	}
	if r := ValidateAddress(address); !r.Valid {
		errors["address"] = r.Error
	}
	if r := ValidatePhone(phoneNumber); !r.Valid {
		errors["phoneNumber"] = r.Error
	}

	return FormResult{Valid: len(errors) == 0, Errors: errors}
}

func isNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-' || r == '\''
}

func runeLen(s string) int {
	return len([]rune(s))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
