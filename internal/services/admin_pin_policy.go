package services

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPINFormatInvalid = errors.New("pin format invalid")
	ErrPINMismatch      = errors.New("pin mismatch")
)

// DefaultAdminPIN gates the demo admin view when no ADMIN_PIN_HASH is
// configured. It is a placeholder, not a security boundary.
const DefaultAdminPIN = "1234"

var adminPINFormatRegex = regexp.MustCompile(`^\d{4}$`)

func ValidatePINFormat(pin string) error {
	if !adminPINFormatRegex.MatchString(pin) {
		return ErrPINFormatInvalid
	}
	return nil
}

func HashAdminPIN(pin string) (string, error) {
	if err := ValidatePINFormat(pin); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyAdminPIN(pinHash string, pin string) error {
	if err := ValidatePINFormat(pin); err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(pinHash), []byte(pin)); err != nil {
		return ErrPINMismatch
	}
	return nil
}
