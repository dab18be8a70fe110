package places

import (
	"context"

	"github.com/teemow/rendezvous/internal/external"
)

// VenueSource runs a free-text venue search.
type VenueSource interface {
	SearchVenues(ctx context.Context, term string) external.Outcome[Venue]
}

// GoplacesSource searches with the goplaces CLI.
type GoplacesSource struct {
	runner external.Runner
	binary string
}

// NewGoplacesSource returns a VenueSource invoking binary through runner.
func NewGoplacesSource(runner external.Runner, binary string) *GoplacesSource {
	return &GoplacesSource{runner: runner, binary: binary}
}

// SearchVenues runs "<binary> search <term>" and parses the result blocks.
func (s *GoplacesSource) SearchVenues(ctx context.Context, term string) external.Outcome[Venue] {
	out, err := s.runner.Run(ctx, s.binary, "search", term)
	if err != nil {
		return external.Failure[Venue](err)
	}
	return external.Success(ParseVenues(string(out)))
}
