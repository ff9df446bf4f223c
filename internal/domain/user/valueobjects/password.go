package valueobjects

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Password is a plaintext password that satisfies the account policy.
// It never leaves the process; only its hash is stored.
type Password struct {
	value string
}

func NewPassword(plain string) (*Password, error) {
	if utf8.RuneCountInString(plain) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters long")
	}
	// bcrypt ignores everything past 72 bytes
	if len(plain) > 72 {
		return nil, fmt.Errorf("password must not exceed 72 bytes")
	}
	if strings.IndexFunc(plain, func(r rune) bool { return !unicode.IsDigit(r) }) < 0 {
		return nil, fmt.Errorf("password cannot be entirely numeric")
	}
	return &Password{value: plain}, nil
}

func (p *Password) String() string {
	return p.value
}
