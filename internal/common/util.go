package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString generates a random hexadecimal string backed by size
// random bytes, so the result is 2*size characters long.
func MakeRandHexString(size int) (string, error) {

	b := make([]byte, size)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// NewSessionID returns a fresh opaque session identifier.
func NewSessionID() (string, error) {
	return MakeRandHexString(SessionIDSize)
}
