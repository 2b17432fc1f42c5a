package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor for password digests.
const bcryptCost = 10

// hashPassword produces a salted bcrypt digest. Two calls on the same
// plaintext yield different digests. Errors never carry the plaintext.
func hashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}
	return string(digest), nil
}

// verifyPassword reports whether plaintext matches the stored digest.
// A malformed digest is simply a non-match, never an error.
func verifyPassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
