// Package security provides password hashing and access token adapters
package security

import (
	"golang.org/x/crypto/bcrypt"
	"tripplanner.app/pkg/errors"
)

// BcryptPasswordHasher implements PasswordHasher with bcrypt
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher returns a hasher; a cost outside bcrypt's range uses bcrypt.DefaultCost
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if err == bcrypt.ErrPasswordTooLong {
			return "", errors.NewValidationError("Password is too long")
		}
		return "", errors.Wrap(errors.ErrorTypeUnknown, "failed to hash password", err)
	}
	return string(hashed), nil
}

// Compare returns an AuthError when password does not match hash
func (h *BcryptPasswordHasher) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errors.Wrap(errors.ErrorTypeAuth, "Invalid credentials", err)
	}
	return nil
}
