package calendar

import (
	"context"
	"time"

	"github.com/teemow/rendezvous/internal/external"
	"github.com/teemow/rendezvous/internal/instrumentation"
	"github.com/teemow/rendezvous/internal/logging"
)

// Query describes one availability check.
type Query struct {
	CalendarID  string
	Day         Date
	MinDuration time.Duration
	StartHour   int
	EndHour     int
	Location    *time.Location
}

// Checker runs the availability pipeline against an EventSource.
type Checker struct {
	Source EventSource
	// Policy decides what a failed fetch means (default: FailOpen).
	Policy  external.Policy
	Logger  logging.Logger
	Metrics *instrumentation.Metrics
}

// Check fetches the day's events, drops malformed ones and computes the free
// slots of the query's work window. It only fails when the fetch fails under
// the Strict policy.
func (c *Checker) Check(ctx context.Context, q Query) (*AvailabilityResult, error) {
	ctx, span := instrumentation.StartSpan(ctx, "availability.check",
		instrumentation.NewSpanAttributeBuilder().
			WithPipeline(instrumentation.PipelineAvailability).
			WithPolicy(c.Policy.String()).
			Build()...)
	defer span.End()

	logger := c.logger()
	loc := q.Location
	if loc == nil {
		loc = time.UTC
	}

	logger.Debug("fetching events",
		logging.CalendarHash(q.CalendarID),
		"date", q.Day.String())

	raw, err := c.Source.FetchEvents(ctx, q.CalendarID, q.Day).Resolve(c.Policy, logger)
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return nil, err
	}

	busy := Normalize(raw, loc, logger)
	dropped := len(raw) - len(busy)
	c.Metrics.RecordDropped(ctx, instrumentation.PipelineAvailability, instrumentation.DropReasonMalformed, dropped)

	window := WorkWindow(q.Day, q.StartHour, q.EndHour, loc)
	if window.Empty() {
		logger.Info("work window is empty", "window", window.Label())
	}
	slots := FindFreeSlots(window, busy, q.MinDuration)
	c.Metrics.RecordResults(ctx, instrumentation.PipelineAvailability, len(slots))

	events := make([]EventView, 0, len(busy))
	for _, b := range busy {
		events = append(events, EventView{
			Summary: b.Source.Summary,
			Start:   b.Source.Start,
			End:     b.Source.End,
			ID:      b.Source.ID,
		})
	}

	span.SetAttributes(instrumentation.NewSpanAttributeBuilder().
		WithCounts(len(raw), dropped, len(slots)).
		Build()...)
	instrumentation.SetSpanSuccess(span)

	return &AvailabilityResult{
		Date:      q.Day.String(),
		Window:    window.Label(),
		Timezone:  loc.String(),
		Events:    events,
		FreeSlots: slots,
	}, nil
}

func (c *Checker) logger() logging.Logger {
	if c.Logger == nil {
		return logging.DefaultLogger()
	}
	return c.Logger
}
