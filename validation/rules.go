package validation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

const MinPasswordLength = 8

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	fullNamePattern = regexp.MustCompile(`^[A-Za-z\s]{2,}$`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
	lowerPattern    = regexp.MustCompile(`[a-z]`)
	digitPattern    = regexp.MustCompile(`\d`)
	specialPattern  = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)

	AllowedImageTypes      = []string{"image/jpeg", "image/png", "image/gif"}
	AllowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}
)

const (
	MsgFieldsRequired   = "All fields (fullName, email, password) are required"
	MsgUpdateFieldsNone = "At least one field (fullName or password) must be provided for update"
	MsgInvalidFullName  = "Full name must contain only alphabetic characters and spaces"
	MsgInvalidEmail     = "Invalid email format"
)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidFullName(name string) bool {
	return fullNamePattern.MatchString(name)
}

// CheckPassword returns an empty string when the password is strong enough,
// otherwise the message for the first rule it breaks.
func CheckPassword(password string) string {
	switch {
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength)
	case !upperPattern.MatchString(password):
		return "Password must contain at least one uppercase letter"
	case !lowerPattern.MatchString(password):
		return "Password must contain at least one lowercase letter"
	case !digitPattern.MatchString(password):
		return "Password must contain at least one digit"
	case !specialPattern.MatchString(password):
		return `Password must contain at least one special character (!@#$%^&*()_+-=[]{};':"|,.<>/?)`
	}
	return ""
}

func ValidImageType(mime string) bool {
	return slices.Contains(AllowedImageTypes, strings.ToLower(mime))
}

func ValidImageExtension(filename string) bool {
	return slices.Contains(AllowedImageExtensions, strings.ToLower(filepath.Ext(filename)))
}

// UserCreation checks a signup payload. Empty fields short-circuit with a
// single message; otherwise every failing rule is reported.
func UserCreation(fullName, email, password string) []string {
	if fullName == "" || email == "" || password == "" {
		return []string{MsgFieldsRequired}
	}

	var errs []string
	if !ValidFullName(fullName) {
		errs = append(errs, MsgInvalidFullName)
	}
	if !ValidEmail(email) {
		errs = append(errs, MsgInvalidEmail)
	}
	if msg := CheckPassword(password); msg != "" {
		errs = append(errs, msg)
	}
	return errs
}

func UserUpdate(fullName, password string) []string {
	if fullName == "" && password == "" {
		return []string{MsgUpdateFieldsNone}
	}

	var errs []string
	if fullName != "" && !ValidFullName(fullName) {
		errs = append(errs, MsgInvalidFullName)
	}
	if password != "" {
		if msg := CheckPassword(password); msg != "" {
			errs = append(errs, msg)
		}
	}
	return errs
}
