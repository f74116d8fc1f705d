// ABOUTME: Tests for bcrypt password hashing and verification
// ABOUTME: Covers round-trips, salting, and fail-closed behavior on bad hashes

package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "secret1" {
		t.Fatal("HashPassword() returned the plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") {
		t.Errorf("hash %q is not a bcrypt digest", hash)
	}

	if !CheckPassword("secret1", hash) {
		t.Error("CheckPassword() = false for correct password")
	}
	if CheckPassword("wrong", hash) {
		t.Error("CheckPassword() = true for wrong password")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password are identical - salt missing")
	}
}

func TestCheckPassword_MalformedHashFailsClosed(t *testing.T) {
	for _, hash := range []string{"", "not-a-hash", "$2a$10$truncated"} {
		if CheckPassword("anything", hash) {
			t.Errorf("CheckPassword(%q) = true, want false", hash)
		}
	}
}
