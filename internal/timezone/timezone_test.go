package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Location(""))
	assert.Equal(t, time.UTC, Location("Not/AZone"))
	assert.Equal(t, "America/Sao_Paulo", Location("America/Sao_Paulo").String())
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), StartOfDay(ts, time.UTC))

	sp := Location("America/Sao_Paulo")
	// 01:00Z on the 10th is still the 9th in Sao Paulo
	early := time.Date(2024, 6, 10, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 9, StartOfDay(early, sp).Day())
}

func TestAtClock(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	got, err := AtClock(day, "09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC), got)

	_, err = AtClock(day, "9h30")
	assert.Error(t, err)
}

func TestNextDay(t *testing.T) {
	day := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), NextDay(day))
}
