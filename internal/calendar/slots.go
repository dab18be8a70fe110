package calendar

import (
	"slices"
	"time"
)

// FindFreeSlots returns the gaps of window not covered by busy that last at
// least minDuration, in chronological order.
//
// busy is swept in start order (stable for equal starts) with a cursor that
// only moves forward, so overlapping and back-to-back intervals merge.
// Intervals entirely outside the window are ignored. An empty window has no
// free slots. The input slice is not modified.
func FindFreeSlots(window Window, busy []BusyInterval, minDuration time.Duration) []FreeSlot {
	slots := []FreeSlot{}
	if window.Empty() {
		return slots
	}

	sorted := slices.Clone(busy)
	slices.SortStableFunc(sorted, func(a, b BusyInterval) int {
		return a.Start.Compare(b.Start)
	})

	cursor := window.Start
	for _, b := range sorted {
		if !b.End.After(window.Start) || !b.Start.Before(window.End) {
			continue
		}

		gapEnd := b.Start
		if window.End.Before(gapEnd) {
			gapEnd = window.End
		}
		if slot, ok := gap(cursor, gapEnd, minDuration); ok {
			slots = append(slots, slot)
		}

		if b.End.After(cursor) {
			cursor = b.End
		}
		if !cursor.Before(window.End) {
			break
		}
	}

	if slot, ok := gap(cursor, window.End, minDuration); ok {
		slots = append(slots, slot)
	}

	return slots
}

// gap returns [from, to) as a slot if it is non-empty and lasts at least
// minDuration. The comparison uses the exact length; the reported minutes
// are floored.
func gap(from, to time.Time, minDuration time.Duration) (FreeSlot, bool) {
	if !from.Before(to) {
		return FreeSlot{}, false
	}
	length := to.Sub(from)
	if length < minDuration {
		return FreeSlot{}, false
	}
	return FreeSlot{
		Start:           from,
		End:             to,
		DurationMinutes: int(length / time.Minute),
	}, true
}
