package entity

import (
	"fmt"
	"regexp"
	"strings"

	domainerrors "shop/internal/domain/errors"
)

const maxEmailLength = 320

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is a validated e-mail address, at most 320 characters.
type Email struct {
	value string
}

// NewEmail creates an Email from raw input.
func NewEmail(raw string) (Email, error) {
	return newValueObject(Email{value: strings.TrimSpace(raw)})
}

func (e Email) validate() error {
	if e.value == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("email is required")
	}
	if len(e.value) > maxEmailLength {
		return domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("email exceeds %d characters", maxEmailLength))
	}
	if !emailPattern.MatchString(e.value) {
		return domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("email %q is not a valid address", e.value))
	}

	return nil
}

// Value returns the address string.
func (e Email) Value() string {
	return e.value
}

// Equals reports value equality.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

func (e Email) String() string {
	return e.value
}
