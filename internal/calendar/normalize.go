package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/teemow/rendezvous/internal/logging"
)

// Layouts tried, in order, for timestamps without a UTC offset.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	dateLayout,
}

var errEndBeforeStart = errors.New("event ends before it starts")

// ParseTimestamp parses an ISO 8601 timestamp. A "Z" suffix or numeric
// offset is honored; a timestamp without one is taken as wall-clock time in
// loc. The result is always expressed in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// Normalize converts raw rows to busy intervals in loc. A row whose start
// or end cannot be parsed, or that ends before it starts, is logged and
// dropped. The remaining intervals keep their input order.
func Normalize(raw []RawEvent, loc *time.Location, logger logging.Logger) []BusyInterval {
	busy := make([]BusyInterval, 0, len(raw))
	for _, ev := range raw {
		interval, err := normalizeEvent(ev, loc)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping event", "event_id", ev.ID, logging.Err(err))
			}
			continue
		}
		busy = append(busy, interval)
	}
	return busy
}

func normalizeEvent(ev RawEvent, loc *time.Location) (BusyInterval, error) {
	start, err := ParseTimestamp(ev.Start, loc)
	if err != nil {
		return BusyInterval{}, fmt.Errorf("start: %w", err)
	}
	end, err := ParseTimestamp(ev.End, loc)
	if err != nil {
		return BusyInterval{}, fmt.Errorf("end: %w", err)
	}
	if end.Before(start) {
		return BusyInterval{}, errEndBeforeStart
	}

	return BusyInterval{
		Start:  start,
		End:    end,
		Label:  ev.Summary,
		ID:     ev.ID,
		Source: ev,
	}, nil
}
