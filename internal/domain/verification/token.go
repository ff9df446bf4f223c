package verification

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// TokenBytes is the entropy of a verification token: 128 bits.
const TokenBytes = 16

// Token is the secret mailed to the user. Only its SHA-256 digest is stored.
type Token struct {
	value string
	hash  string
}

// GenerateToken draws a fresh random token.
func GenerateToken() (*Token, error) {
	b := make([]byte, TokenBytes)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}
	value := hex.EncodeToString(b)
	return &Token{value: value, hash: HashToken(value)}, nil
}

// ParseToken validates a token received from a link.
func ParseToken(value string) (*Token, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if len(v) != TokenBytes*2 {
		return nil, fmt.Errorf("verification token must be %d hex characters", TokenBytes*2)
	}
	if _, err := hex.DecodeString(v); err != nil {
		return nil, fmt.Errorf("verification token must be hexadecimal")
	}
	return &Token{value: v, hash: HashToken(v)}, nil
}

func (t *Token) Value() string { return t.value }
func (t *Token) Hash() string  { return t.hash }

// HashToken returns the lookup key stored for a token value.
func HashToken(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
