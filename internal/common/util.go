package common

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// MakeRandHexString generates a random hexadecimal string of the given size.
// The size parameter is the number of random bytes read before hex encoding,
// so the resulting string is twice as long.
//
// It returns an error if the random number generator fails.
func MakeRandHexString(size int) (string, error) {

	b := make([]byte, size)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// NormalizeEmail returns the canonical form under which emails are stored
// and looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}
