package calendar

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// At returns the instant at hour:00 on d in loc.
func (d Date) At(hour int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, 0, 0, 0, loc)
}

// RawEvent is one row reported by the calendar query tool, before any
// timestamp parsing.
type RawEvent struct {
	ID      string
	Start   string
	End     string
	Summary string
}

// BusyInterval is a normalized busy period. Start is never after End.
type BusyInterval struct {
	Start time.Time
	End   time.Time
	Label string
	ID    string

	// Source is the row the interval was parsed from.
	Source RawEvent
}

// FreeSlot is a free range of the work window at least as long as the
// requested duration.
type FreeSlot struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
}

type freeSlotJSON struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"duration_minutes"`
}

// MarshalJSON renders the slot with RFC 3339 timestamps in the slot's zone,
// keeping any fractional seconds.
func (s FreeSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal(freeSlotJSON{
		Start:           s.Start.Format(time.RFC3339Nano),
		End:             s.End.Format(time.RFC3339Nano),
		DurationMinutes: s.DurationMinutes,
	})
}

// EventView is the echo of a busy event in the availability result.
// Start and End are the strings the calendar tool reported.
type EventView struct {
	Summary string `json:"summary"`
	Start   string `json:"start"`
	End     string `json:"end"`
	ID      string `json:"id"`
}

// AvailabilityResult is the output of one availability check.
type AvailabilityResult struct {
	Date      string      `json:"date"`
	Window    string      `json:"window"`
	Timezone  string      `json:"timezone"`
	Events    []EventView `json:"events"`
	FreeSlots []FreeSlot  `json:"free_slots"`
}

// Window is the part of a day considered for availability.
type Window struct {
	Start time.Time
	End   time.Time

	startHour int
	endHour   int
}

// WorkWindow returns [day@startHour:00, day@endHour:00] in loc.
func WorkWindow(day Date, startHour, endHour int, loc *time.Location) Window {
	return Window{
		Start:     day.At(startHour, loc),
		End:       day.At(endHour, loc),
		startHour: startHour,
		endHour:   endHour,
	}
}

// Empty reports whether the window holds no time at all.
func (w Window) Empty() bool {
	return !w.End.After(w.Start)
}

// Label formats the window as "HH:00–HH:00".
func (w Window) Label() string {
	return fmt.Sprintf("%02d:00–%02d:00", w.startHour, w.endHour)
}
