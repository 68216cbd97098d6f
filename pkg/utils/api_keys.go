package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateRandomKey returns a URL-safe API key of the form "bp_<random>"
// carrying length bytes of entropy.
func GenerateRandomKey(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("bp_%s", base64.URLEncoding.EncodeToString(b)), nil
}
