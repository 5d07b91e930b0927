// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"net/mail"
	"strings"
)

// ValidateEmail checks that the address parses as a bare RFC 5322 address.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("Please include a valid email")
	}
	return nil
}

// ValidateLoginPassword only requires presence; strength rules apply at
// registration, not login, so existing accounts can always sign in.
func ValidateLoginPassword(password string) error {
	if password == "" {
		return fmt.Errorf("Password is required")
	}
	return nil
}

// ValidateName checks the display name used at registration.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("Name is required")
	}
	if len(name) > 64 {
		return fmt.Errorf("Name must not exceed 64 characters")
	}
	return nil
}

// ValidateRegistrationPassword enforces the minimum length rule for new accounts.
func ValidateRegistrationPassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("Please enter a password with 6 or more characters")
	}
	if len(password) > 128 {
		return fmt.Errorf("Password must not exceed 128 characters")
	}
	return nil
}
