package services

import (
	"errors"
	"net/mail"
	"strings"
)

var ErrEmailInvalid = errors.New("email invalid")

type SignInInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// NormalizeEmail lowercases and trims the address and returns "" when it
// does not parse as an email.
func NormalizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

// NormalizeSignInInput trims the contact fields and normalizes the email.
// The email is the only required field; it identifies the profile.
func NormalizeSignInInput(input SignInInput) (SignInInput, error) {
	email := NormalizeEmail(input.Email)
	if email == "" {
		return SignInInput{}, ErrEmailInvalid
	}

	return SignInInput{
		Name:    strings.TrimSpace(input.Name),
		Email:   email,
		Phone:   strings.TrimSpace(input.Phone),
		Address: strings.TrimSpace(input.Address),
	}, nil
}
