package calendar

import (
	"strings"
)

// ParseEventRows parses the calendar tool's table output. Each row is
// "id start end summary...", separated by whitespace. Blank lines, the
// header row (starting with "ID") and rows with fewer than four fields are
// skipped.
func ParseEventRows(text string) []RawEvent {
	events := []RawEvent{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "ID") {
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) < 4 {
			continue
		}

		events = append(events, RawEvent{
			ID:      fields[0],
			Start:   fields[1],
			End:     fields[2],
			Summary: strings.Join(fields[3:], " "),
		})
	}
	return events
}
