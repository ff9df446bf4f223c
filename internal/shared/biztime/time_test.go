package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowUTC_IsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NowUTC().Location())
}

func TestFreeze_Restores(t *testing.T) {
	pinned := time.Date(2024, 3, 1, 9, 30, 0, 0, time.FixedZone("CET", 3600))

	restore := Freeze(pinned)
	assert.True(t, NowUTC().Equal(pinned))
	assert.Equal(t, time.UTC, NowUTC().Location())

	restore()
	assert.WithinDuration(t, time.Now(), NowUTC(), time.Second)
}
