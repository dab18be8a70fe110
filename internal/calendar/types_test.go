package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeSlot_MarshalJSON(t *testing.T) {
	loc := newYork(t)

	tests := []struct {
		name     string
		slot     FreeSlot
		expected string
	}{
		{
			name: "whole seconds",
			slot: FreeSlot{
				Start:           time.Date(2026, 2, 19, 10, 0, 0, 0, loc),
				End:             time.Date(2026, 2, 19, 12, 0, 0, 0, loc),
				DurationMinutes: 120,
			},
			expected: `{"start":"2026-02-19T10:00:00-05:00","end":"2026-02-19T12:00:00-05:00","duration_minutes":120}`,
		},
		{
			name: "fractional seconds are kept",
			slot: FreeSlot{
				Start:           time.Date(2026, 2, 19, 10, 45, 30, 500_000_000, loc),
				End:             time.Date(2026, 2, 19, 17, 0, 0, 0, loc),
				DurationMinutes: 374,
			},
			expected: `{"start":"2026-02-19T10:45:30.5-05:00","end":"2026-02-19T17:00:00-05:00","duration_minutes":374}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.slot)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestFindFreeSlots_SubSecondBusyEnd(t *testing.T) {
	loc := newYork(t)
	window := WorkWindow(testDay, 10, 17, loc)
	busy := []BusyInterval{{
		Start: time.Date(2026, 2, 19, 10, 0, 0, 0, loc),
		End:   time.Date(2026, 2, 19, 10, 45, 30, 500_000_000, loc),
	}}

	slots := FindFreeSlots(window, busy, 30*time.Minute)
	require.Len(t, slots, 1)

	data, err := json.Marshal(slots[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"start":"2026-02-19T10:45:30.5-05:00"`)
}
