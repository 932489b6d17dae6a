package generator

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// 32 bytes = 256 bits of entropy
const tokenSize = 32

func NewToken() (string, error) {
	b := make([]byte, tokenSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generator: failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
