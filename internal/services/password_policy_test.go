package services

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePasswordStrength_RejectsOutOfRangePasswords(t *testing.T) {
	testCases := []string{
		"",
		"        ",
		"Short1",
		strings.Repeat("a", MaxPasswordBytes+1),
		strings.Repeat("é", 40),
	}

	for _, password := range testCases {
		err := ValidatePasswordStrength(password)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %q, got %v", password, err)
		}
	}
}

func TestValidatePasswordStrength_AcceptsPasswordsInRange(t *testing.T) {
	for _, password := range []string{"password", strings.Repeat("a", MaxPasswordBytes)} {
		if err := ValidatePasswordStrength(password); err != nil {
			t.Fatalf("expected nil error for %q, got %v", password, err)
		}
	}
}
