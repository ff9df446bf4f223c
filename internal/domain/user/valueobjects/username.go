package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 150
)

var usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)

// Username is the login handle. Letters, digits and @/./+/-/_ only.
type Username struct {
	value string
}

func NewUsername(value string) (*Username, error) {
	v := strings.TrimSpace(value)

	if utf8.RuneCountInString(v) < usernameMinLength {
		return nil, fmt.Errorf("username must be at least %d characters", usernameMinLength)
	}
	if utf8.RuneCountInString(v) > usernameMaxLength {
		return nil, fmt.Errorf("username cannot exceed %d characters", usernameMaxLength)
	}
	if !usernameRegex.MatchString(v) {
		return nil, fmt.Errorf("username may contain only letters, digits and @/./+/-/_")
	}

	return &Username{value: v}, nil
}

func (u *Username) String() string {
	return u.value
}
