package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Monotonic(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	prev := NewAt(at)
	for i := 0; i < 100; i++ {
		next := NewAt(at)
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestParse(t *testing.T) {
	s := New()
	parsed, err := Parse(" " + s + " ")
	require.NoError(t, err)
	assert.Equal(t, s, parsed)

	_, err = Parse("not-a-ulid")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestTime(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.True(t, Time(NewAt(at)).Equal(at))
	assert.True(t, Time("bogus").IsZero())
}
