package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

func TestTransition(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPaid, false},
		{StatusConfirmed, StatusPaid, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusPaid, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			b := &models.Booking{Status: string(tt.from)}
			err := Transition(b, tt.to, now)
			if !tt.ok {
				assert.True(t, httperr.IsBusiness(err, "invalid_state"))
				assert.Equal(t, string(tt.from), b.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, string(tt.to), b.Status)
			if tt.to == StatusCancelled {
				require.NotNil(t, b.CancelledAt)
				assert.Equal(t, now, *b.CancelledAt)
			}
		})
	}
}

func TestReschedule(t *testing.T) {
	start := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	b := &models.Booking{Status: string(StatusConfirmed)}
	require.NoError(t, Reschedule(b, start, end))
	assert.Equal(t, start, b.Start)

	assert.True(t, httperr.IsBusiness(Reschedule(b, end, start), "invalid_booking_range"))

	paid := &models.Booking{Status: string(StatusPaid)}
	assert.True(t, httperr.IsBusiness(Reschedule(paid, start, end), "invalid_state"))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus(models.RoleUser))
	assert.Equal(t, StatusConfirmed, InitialStatus(models.RoleStaff))
	assert.Equal(t, StatusConfirmed, InitialStatus(models.RoleAdmin))
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, st)

	_, err = ParseStatus("done")
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}
