package calendar

import (
	"context"

	"github.com/teemow/rendezvous/internal/external"
)

// EventSource fetches the raw busy events of one calendar day.
type EventSource interface {
	FetchEvents(ctx context.Context, calendarID string, day Date) external.Outcome[RawEvent]
}

// GogSource reads events with the gog calendar CLI.
type GogSource struct {
	runner external.Runner
	binary string
}

// NewGogSource returns an EventSource invoking binary through runner.
func NewGogSource(runner external.Runner, binary string) *GogSource {
	return &GogSource{runner: runner, binary: binary}
}

// Args returns the command line arguments for the whole of day, as local
// wall-clock bounds.
func (s *GogSource) Args(calendarID string, day Date) []string {
	return []string{
		"calendar", "events", calendarID,
		"--from", day.String() + "T00:00:00",
		"--to", day.String() + "T23:59:59",
	}
}

// FetchEvents runs the query and parses its rows.
func (s *GogSource) FetchEvents(ctx context.Context, calendarID string, day Date) external.Outcome[RawEvent] {
	out, err := s.runner.Run(ctx, s.binary, s.Args(calendarID, day)...)
	if err != nil {
		return external.Failure[RawEvent](err)
	}
	return external.Success(ParseEventRows(string(out)))
}
