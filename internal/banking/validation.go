package banking

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

const CredentialLength = 4

var (
	ErrInvalidOwnerName  = errors.New("name must contain only letters")
	ErrInvalidCredential = errors.New("password must be 4 digits")
)

// ValidateOwnerName accepts a non-empty name made of letters only.
func ValidateOwnerName(name string) error {
	if name == "" {
		return ErrInvalidOwnerName
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return ErrInvalidOwnerName
		}
	}
	return nil
}

func ValidateCredential(credential string) error {
	if utf8.RuneCountInString(credential) != CredentialLength {
		return ErrInvalidCredential
	}
	for _, r := range credential {
		if !unicode.IsDigit(r) {
			return ErrInvalidCredential
		}
	}
	return nil
}
