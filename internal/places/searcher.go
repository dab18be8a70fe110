package places

import (
	"context"

	"github.com/teemow/rendezvous/internal/external"
	"github.com/teemow/rendezvous/internal/instrumentation"
	"github.com/teemow/rendezvous/internal/logging"
)

// Searcher runs the venue pipeline against a VenueSource.
type Searcher struct {
	Source  VenueSource
	Policy  external.Policy
	Logger  logging.Logger
	Metrics *instrumentation.Metrics
}

// Search fetches, filters and ranks venues for q. The returned slice is never
// nil. It only fails when the fetch fails under the Strict policy.
func (s *Searcher) Search(ctx context.Context, q Query) ([]Venue, error) {
	ctx, span := instrumentation.StartSpan(ctx, "places.search",
		instrumentation.NewSpanAttributeBuilder().
			WithPipeline(instrumentation.PipelineVenues).
			WithPolicy(s.Policy.String()).
			Build()...)
	defer span.End()

	logger := s.Logger
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	term := SearchTerm(q.Type, q.Location)
	logger.Debug("searching venues", "term", term)

	found, err := s.Source.SearchVenues(ctx, term).Resolve(s.Policy, logger)
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return nil, err
	}

	ranked := FilterAndRank(found, q.MinRating)
	filtered := len(found) - len(ranked)
	if filtered > 0 {
		logger.Debug("venues below minimum rating dropped", "count", filtered, "min_rating", q.MinRating)
	}
	s.Metrics.RecordDropped(ctx, instrumentation.PipelineVenues, instrumentation.DropReasonFiltered, filtered)

	venues := Limit(ranked, q.Limit)
	s.Metrics.RecordResults(ctx, instrumentation.PipelineVenues, len(venues))

	span.SetAttributes(instrumentation.NewSpanAttributeBuilder().
		WithCounts(len(found), filtered, len(venues)).
		Build()...)
	instrumentation.SetSpanSuccess(span)

	return venues, nil
}
