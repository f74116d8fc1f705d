// ABOUTME: Password hashing and verification using bcrypt
// ABOUTME: One-way salted hashes; verification fails closed on malformed input

package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a valid bcrypt hash used for timing-safe comparison when a
// user doesn't exist. This prevents timing attacks that could enumerate
// valid usernames.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword produces a salted bcrypt digest of the plaintext.
// The plaintext is never stored or logged.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
// A malformed stored hash fails closed: the function returns false, it
// never propagates an error past this boundary.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// compareDummy burns a bcrypt comparison against a throwaway hash so the
// missing-user path takes as long as the wrong-password path.
func compareDummy(plaintext string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plaintext))
}
