package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingState(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want BookingState
	}{
		{"", StateAll},
		{"ALL", StateAll},
		{"all", StateAll},
		{"Current", StateCurrent},
		{"past", StatePast},
		{"FUTURE", StateFuture},
		{"waiting", StateWaiting},
		{"rejected", StateRejected},
		{"  current  ", StateCurrent},
	} {
		got, err := ParseBookingState(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseBookingState_Unknown(t *testing.T) {
	for _, in := range []string{"bogus", "CANCELED", "approved", "cur rent"} {
		_, err := ParseBookingState(in)
		assert.ErrorIs(t, err, ErrUnknownState, "input %q", in)
	}
}

func TestBookingState_Matches_StatusBuckets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	waiting := &Booking{Status: BookingStatusWaiting, Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)}
	rejected := &Booking{Status: BookingStatusRejected, Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)}

	assert.True(t, StateWaiting.Matches(waiting, now))
	assert.False(t, StateWaiting.Matches(rejected, now))
	assert.True(t, StateRejected.Matches(rejected, now))
	assert.False(t, StateRejected.Matches(waiting, now))

	// Time buckets require APPROVED, whatever the window says.
	assert.False(t, StateFuture.Matches(waiting, now))
	assert.False(t, StateFuture.Matches(rejected, now))
}

func TestBookingState_Matches_TimeBuckets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	past := &Booking{Status: BookingStatusApproved, Start: now.Add(-2 * time.Hour), End: now.Add(-time.Hour)}
	current := &Booking{Status: BookingStatusApproved, Start: now.Add(-time.Hour), End: now.Add(time.Hour)}
	future := &Booking{Status: BookingStatusApproved, Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)}

	assert.True(t, StatePast.Matches(past, now))
	assert.True(t, StateCurrent.Matches(current, now))
	assert.True(t, StateFuture.Matches(future, now))

	assert.False(t, StateCurrent.Matches(past, now))
	assert.False(t, StateCurrent.Matches(future, now))
	assert.False(t, StatePast.Matches(current, now))
	assert.False(t, StateFuture.Matches(current, now))
}

// Every APPROVED booking lands in exactly one of PAST, CURRENT, FUTURE,
// including on bucket boundaries.
func TestBookingState_TimeBucketsPartitionApproved(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	windows := []struct {
		name       string
		start, end time.Time
	}{
		{"fully past", now.Add(-3 * time.Hour), now.Add(-time.Hour)},
		{"ends exactly now", now.Add(-time.Hour), now},
		{"spans now", now.Add(-time.Hour), now.Add(time.Hour)},
		{"starts exactly now", now, now.Add(time.Hour)},
		{"fully future", now.Add(time.Hour), now.Add(2 * time.Hour)},
	}

	for _, w := range windows {
		b := &Booking{Status: BookingStatusApproved, Start: w.start, End: w.end}

		matched := 0
		for _, st := range []BookingState{StatePast, StateCurrent, StateFuture} {
			if st.Matches(b, now) {
				matched++
			}
		}
		assert.Equal(t, 1, matched, "window %q must match exactly one bucket", w.name)
		assert.True(t, StateAll.Matches(b, now))
	}
}
