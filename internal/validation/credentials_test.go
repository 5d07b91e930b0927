package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@example.co.uk",
		"user+tag@example.com",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"user@",
		"Display Name <user@example.com>",
		"user@example.com ",
	}
	for _, email := range invalid {
		err := ValidateEmail(email)
		if assert.Error(t, err, "%q should be rejected", email) {
			assert.Equal(t, "Please include a valid email", err.Error())
		}
	}
}

func TestValidateLoginPassword(t *testing.T) {
	assert.NoError(t, ValidateLoginPassword("x"))

	err := ValidateLoginPassword("")
	if assert.Error(t, err) {
		assert.Equal(t, "Password is required", err.Error())
	}
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Ada Lovelace"))

	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("a", 65)))
	assert.NoError(t, ValidateName(strings.Repeat("a", 64)))
}

func TestValidateRegistrationPassword(t *testing.T) {
	assert.NoError(t, ValidateRegistrationPassword("secret"))

	err := ValidateRegistrationPassword("short")
	if assert.Error(t, err) {
		assert.Equal(t, "Please enter a password with 6 or more characters", err.Error())
	}

	assert.Error(t, ValidateRegistrationPassword(strings.Repeat("a", 129)))
	assert.NoError(t, ValidateRegistrationPassword(strings.Repeat("a", 128)))
}
