package calendar

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = Date{Year: 2026, Month: time.February, Day: 19}

type slotCase struct {
	start, end string
	minutes    int
}

func clock(t *testing.T, loc *time.Location, hhmm string) time.Time {
	t.Helper()
	tm, err := time.ParseInLocation("2006-01-02 15:04:05", testDay.String()+" "+hhmm, loc)
	if err != nil {
		tm, err = time.ParseInLocation("2006-01-02 15:04", testDay.String()+" "+hhmm, loc)
	}
	require.NoError(t, err)
	return tm
}

func busyAt(t *testing.T, loc *time.Location, id, start, end string) BusyInterval {
	return BusyInterval{ID: id, Start: clock(t, loc, start), End: clock(t, loc, end)}
}

func assertSlots(t *testing.T, loc *time.Location, expected []slotCase, got []FreeSlot) {
	t.Helper()
	require.Len(t, got, len(expected))
	for i, want := range expected {
		assert.True(t, clock(t, loc, want.start).Equal(got[i].Start), "slot %d start: want %s got %s", i, want.start, got[i].Start)
		assert.True(t, clock(t, loc, want.end).Equal(got[i].End), "slot %d end: want %s got %s", i, want.end, got[i].End)
		assert.Equal(t, want.minutes, got[i].DurationMinutes, "slot %d minutes", i)
	}
}

func TestFindFreeSlots(t *testing.T) {
	loc := newYork(t)

	tests := []struct {
		name      string
		startHour int
		endHour   int
		duration  time.Duration
		busy      [][2]string
		expected  []slotCase
	}{
		{
			name:      "single meeting splits the window",
			startHour: 10, endHour: 17, duration: 30 * time.Minute,
			busy:     [][2]string{{"12:00", "13:00"}},
			expected: []slotCase{{"10:00", "12:00", 120}, {"13:00", "17:00", 240}},
		},
		{
			name:      "free all day",
			startHour: 12, endHour: 17, duration: 30 * time.Minute,
			expected: []slotCase{{"12:00", "17:00", 300}},
		},
		{
			name:      "busy for the whole window",
			startHour: 12, endHour: 17, duration: 30 * time.Minute,
			busy:     [][2]string{{"12:00", "17:00"}},
			expected: []slotCase{},
		},
		{
			name:      "overlapping meetings merge",
			startHour: 10, endHour: 17, duration: 30 * time.Minute,
			busy:     [][2]string{{"12:00", "13:00"}, {"12:30", "13:30"}},
			expected: []slotCase{{"10:00", "12:00", 120}, {"13:30", "17:00", 210}},
		},
		{
			name:      "contained meeting adds nothing",
			startHour: 10, endHour: 17, duration: 30 * time.Minute,
			busy:     [][2]string{{"11:00", "15:00"}, {"12:00", "13:00"}},
			expected: []slotCase{{"10:00", "11:00", 60}, {"15:00", "17:00", 120}},
		},
		{
			name:      "back to back meetings",
			startHour: 10, endHour: 17, duration: 0,
			busy:     [][2]string{{"10:00", "11:00"}, {"11:00", "12:00"}},
			expected: []slotCase{{"12:00", "17:00", 300}},
		},
		{
			name:      "unsorted input",
			startHour: 10, endHour: 17, duration: 30 * time.Minute,
			busy:     [][2]string{{"15:00", "16:00"}, {"11:00", "12:00"}},
			expected: []slotCase{{"10:00", "11:00", 60}, {"12:00", "15:00", 180}, {"16:00", "17:00", 60}},
		},
		{
			name:      "short gaps are dropped",
			startHour: 10, endHour: 17, duration: 60 * time.Minute,
			busy:     [][2]string{{"10:30", "12:00"}, {"12:45", "16:30"}},
			expected: []slotCase{},
		},
		{
			name:      "gap exactly the requested duration",
			startHour: 10, endHour: 17, duration: 90 * time.Minute,
			busy:     [][2]string{{"11:30", "17:00"}},
			expected: []slotCase{{"10:00", "11:30", 90}},
		},
		{
			name:      "gap just under the requested duration",
			startHour: 10, endHour: 17, duration: 90 * time.Minute,
			busy:     [][2]string{{"11:29:59", "17:00"}},
			expected: []slotCase{},
		},
		{
			name:      "minutes are floored",
			startHour: 10, endHour: 17, duration: 30 * time.Minute,
			busy:     [][2]string{{"10:45:30", "17:00"}},
			expected: []slotCase{{"10:00", "10:45:30", 45}},
		},
		{
			name:      "meetings outside the window are ignored",
			startHour: 12, endHour: 17, duration: 30 * time.Minute,
			busy:     [][2]string{{"08:00", "09:00"}, {"11:00", "12:00"}, {"17:00", "18:00"}, {"19:00", "20:00"}},
			expected: []slotCase{{"12:00", "17:00", 300}},
		},
		{
			name:      "meeting straddling the window start",
			startHour: 12, endHour: 17, duration: 30 * time.Minute,
			busy:     [][2]string{{"11:00", "12:30"}},
			expected: []slotCase{{"12:30", "17:00", 270}},
		},
		{
			name:      "meeting running past the window end",
			startHour: 12, endHour: 17, duration: 30 * time.Minute,
			busy:     [][2]string{{"16:00", "18:00"}, {"16:30", "16:45"}},
			expected: []slotCase{{"12:00", "16:00", 240}},
		},
		{
			name:      "empty window",
			startHour: 17, endHour: 12, duration: 0,
			expected: []slotCase{},
		},
		{
			name:      "zero length window",
			startHour: 12, endHour: 12, duration: 0,
			busy:     [][2]string{{"11:00", "13:00"}},
			expected: []slotCase{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := WorkWindow(testDay, tt.startHour, tt.endHour, loc)
			var busy []BusyInterval
			for i, b := range tt.busy {
				busy = append(busy, busyAt(t, loc, string(rune('a'+i)), b[0], b[1]))
			}

			got := FindFreeSlots(window, busy, tt.duration)
			assert.NotNil(t, got)
			assertSlots(t, loc, tt.expected, got)
		})
	}
}

func TestFindFreeSlots_DoesNotMutateInput(t *testing.T) {
	loc := newYork(t)
	busy := []BusyInterval{
		busyAt(t, loc, "late", "15:00", "16:00"),
		busyAt(t, loc, "early", "11:00", "12:00"),
	}
	window := WorkWindow(testDay, 10, 17, loc)

	first := FindFreeSlots(window, busy, 30*time.Minute)
	assert.Equal(t, "late", busy[0].ID)
	assert.Equal(t, "early", busy[1].ID)

	second := FindFreeSlots(window, busy, 30*time.Minute)
	assert.Equal(t, first, second)
}

// For random non-overlapping meetings inside the window, the free slots plus
// the meetings plus the sub-duration remainders cover the window exactly.
func TestFindFreeSlots_CoversWindow(t *testing.T) {
	loc := newYork(t)
	window := WorkWindow(testDay, 9, 18, loc)
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		minDuration := time.Duration(rng.Intn(90)) * time.Minute

		var busy []BusyInterval
		cursor := window.Start
		for cursor.Before(window.End) {
			start := cursor.Add(time.Duration(rng.Intn(120)) * time.Minute)
			end := start.Add(time.Duration(1+rng.Intn(90)) * time.Minute)
			if end.After(window.End) {
				break
			}
			busy = append(busy, BusyInterval{Start: start, End: end})
			cursor = end
		}

		// Gaps between meetings, computed independently of FindFreeSlots.
		var gaps [][2]time.Time
		prev := window.Start
		for _, b := range busy {
			if prev.Before(b.Start) {
				gaps = append(gaps, [2]time.Time{prev, b.Start})
			}
			prev = b.End
		}
		if prev.Before(window.End) {
			gaps = append(gaps, [2]time.Time{prev, window.End})
		}

		rng.Shuffle(len(busy), func(i, j int) { busy[i], busy[j] = busy[j], busy[i] })
		slots := FindFreeSlots(window, busy, minDuration)

		var covered time.Duration
		for _, b := range busy {
			covered += b.End.Sub(b.Start)
		}
		si := 0
		for _, g := range gaps {
			length := g[1].Sub(g[0])
			if length >= minDuration {
				require.Less(t, si, len(slots), "iteration %d: missing slot", iter)
				assert.True(t, g[0].Equal(slots[si].Start), "iteration %d: slot start", iter)
				assert.True(t, g[1].Equal(slots[si].End), "iteration %d: slot end", iter)
				si++
			}
			covered += length
		}
		assert.Equal(t, len(slots), si, "iteration %d: unexpected extra slots", iter)
		assert.Equal(t, window.End.Sub(window.Start), covered, "iteration %d: coverage", iter)
	}
}

func TestWorkWindow(t *testing.T) {
	loc := newYork(t)

	w := WorkWindow(testDay, 9, 17, loc)
	assert.Equal(t, "09:00–17:00", w.Label())
	assert.False(t, w.Empty())
	assert.True(t, time.Date(2026, 2, 19, 9, 0, 0, 0, loc).Equal(w.Start))
	assert.True(t, time.Date(2026, 2, 19, 17, 0, 0, 0, loc).Equal(w.End))

	assert.True(t, WorkWindow(testDay, 17, 17, loc).Empty())
	assert.True(t, WorkWindow(testDay, 18, 9, loc).Empty())
}
