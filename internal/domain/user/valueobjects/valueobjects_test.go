package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, r := range AllRoles() {
		got, err := NewRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := NewRole("superuser")
	assert.Error(t, err)
}

func TestRole_IsSupportStaff(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleEmployee, false},
		{RoleITStaff, true},
		{RoleHR, false},
		{RoleAdmin, true},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.IsSupportStaff())
		})
	}
}

func TestRole_Label(t *testing.T) {
	assert.Equal(t, "IT Staff", RoleITStaff.Label())
	assert.Equal(t, "Administrator", RoleAdmin.Label())
	assert.Equal(t, "ghost", Role("ghost").Label())
}

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"normalizes case and space", "  Alice@Example.COM ", "alice@example.com", false},
		{"empty", "", "", true},
		{"missing domain", "alice@", "", true},
		{"missing tld", "alice@example", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestEmail_Equals(t *testing.T) {
	a, _ := NewEmail("a@example.com")
	b, _ := NewEmail("A@example.com")
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(nil))
}

func TestNewUsername(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"jdoe", false},
		{"j.doe+it@corp", false},
		{"jd", true},
		{"john doe", true},
		{"john/doe", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := NewUsername(tt.input)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := NewPassword("short1")
	assert.Error(t, err)

	_, err = NewPassword("1234567890")
	assert.Error(t, err)

	p, err := NewPassword("correct horse 9")
	require.NoError(t, err)
	assert.Equal(t, "correct horse 9", p.String())

	_, err = NewPassword("pässwörd")
	assert.NoError(t, err, "eight characters even though more bytes")

	_, err = NewPassword(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestNormalizePersonName(t *testing.T) {
	got, err := NormalizePersonName("first_name", "  mary   ann ")
	require.NoError(t, err)
	assert.Equal(t, "Mary Ann", got)

	got, err = NormalizePersonName("last_name", "McAllister")
	require.NoError(t, err)
	assert.Equal(t, "McAllister", got)

	got, err = NormalizePersonName("last_name", "")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = NormalizePersonName("last_name", strings.Repeat("É", 150))
	require.NoError(t, err)
	assert.Equal(t, 150, len([]rune(got)))

	_, err = NormalizePersonName("last_name", strings.Repeat("É", 151))
	assert.Error(t, err)
}

func TestNormalizeDepartment_CountsCharacters(t *testing.T) {
	got, err := NormalizeDepartment(strings.Repeat("ø", 100))
	require.NoError(t, err)
	assert.Equal(t, 100, len([]rune(got)))

	_, err = NormalizeDepartment(strings.Repeat("ø", 101))
	assert.Error(t, err)
}

func TestNormalizePhone(t *testing.T) {
	got, err := NormalizePhone(" +1 (555) 010-2000 ")
	require.NoError(t, err)
	assert.Equal(t, "+1 (555) 010-2000", got)

	_, err = NormalizePhone("call me")
	assert.Error(t, err)
}
