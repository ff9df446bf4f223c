package valueobjects

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxNameLength       = 150
	maxPhoneLength      = 20
	maxDepartmentLength = 100
)

// NormalizePersonName trims the name and title-cases it when it was typed
// entirely in lowercase. Mixed-case input such as "McAllister" is kept.
func NormalizePersonName(field, value string) (string, error) {
	v := strings.Join(strings.Fields(value), " ")
	if utf8.RuneCountInString(v) > maxNameLength {
		return "", fmt.Errorf("%s cannot exceed %d characters", field, maxNameLength)
	}
	if v != "" && v == strings.ToLower(v) {
		// Casers keep state between calls and are not shared.
		v = cases.Title(language.English).String(v)
	}
	return v, nil
}

// NormalizePhone accepts digits, spaces and +-() only.
func NormalizePhone(value string) (string, error) {
	v := strings.TrimSpace(value)
	if utf8.RuneCountInString(v) > maxPhoneLength {
		return "", fmt.Errorf("phone cannot exceed %d characters", maxPhoneLength)
	}
	for _, r := range v {
		if !unicode.IsDigit(r) && !strings.ContainsRune(" +-()", r) {
			return "", fmt.Errorf("phone contains invalid character %q", r)
		}
	}
	return v, nil
}

func NormalizeDepartment(value string) (string, error) {
	v := strings.TrimSpace(value)
	if utf8.RuneCountInString(v) > maxDepartmentLength {
		return "", fmt.Errorf("department cannot exceed %d characters", maxDepartmentLength)
	}
	return v, nil
}
