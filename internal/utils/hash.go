package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the bcrypt work factor used when no explicit cost is
// configured. It matches the cost the original deployment registered its
// accounts with, so existing digests keep verifying.
const DefaultBcryptCost = 10

// PasswordHasher provides one-way salted password hashing and verification
// built on bcrypt. The zero value is not usable; construct instances with
// [NewPasswordHasher].
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a PasswordHasher with the given bcrypt cost.
// A non-positive cost falls back to [DefaultBcryptCost].
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash computes the bcrypt digest of the given plaintext password.
// The salt is generated internally by bcrypt, so two calls with the same
// input produce different digests that both verify.
func (p *PasswordHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether the plaintext password matches the stored bcrypt
// digest. A mismatch returns (false, nil); only malformed digests or
// internal bcrypt failures produce a non-nil error.
func (p *PasswordHasher) Verify(password, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("error verifying password: %w", err)
	}

	return true, nil
}
