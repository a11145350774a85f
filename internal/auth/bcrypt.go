package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost trades login latency for brute-force resistance. Changing it
// only affects hashes created afterwards; stored hashes keep their cost.
const bcryptCost = 14

// HashPassword hashes a plaintext password for storage. Empty passwords
// are rejected before they ever reach the hasher.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(h), err
}

// ComparePasswordAndHash checks a candidate password against a stored
// hash, mapping a mismatch onto the package sentinel.
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedHashAndPassword
		}
		return err
	}
	return nil
}
