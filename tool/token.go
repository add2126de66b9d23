package tool

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// sessionTokenBytes is the entropy of one session token; hex encoding
// doubles it to 64 characters on the wire.
const sessionTokenBytes = 32

// GenerateSessionToken returns a fresh random session token as hex.
func GenerateSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// SecureCompare reports whether two credential strings are equal without
// leaking the position of the first mismatching byte. Empty inputs and
// length mismatches are rejected before any byte comparison.
func SecureCompare(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
