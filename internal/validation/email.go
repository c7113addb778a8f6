package validation

import (
	"errors"
	"net/mail"
	"strings"
)

// ValidateEmail accepts a bare address only. Display-name forms such as
// "Asha <asha@example.com>" are rejected because the value ends up in Reply-To.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email address is required")
	}

	// RFC 5321: total max 254 with @
	if len(email) > 254 {
		return errors.New("email address is too long (max 254 characters)")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return errors.New("invalid email address format")
	}

	_, domain, _ := strings.Cut(addr.Address, "@")
	if !strings.Contains(domain, ".") {
		return errors.New("invalid email address format")
	}

	return nil
}
