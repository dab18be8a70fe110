package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/rendezvous/internal/config"
	"github.com/teemow/rendezvous/internal/external"
	"github.com/teemow/rendezvous/internal/instrumentation"
	"github.com/teemow/rendezvous/internal/logging"
	"github.com/teemow/rendezvous/internal/places"
)

type venuesFlags struct {
	location  string
	venueType string
	minRating float64
	limit     int
	strict    bool
}

func newVenuesCmd(s *session) *cobra.Command {
	var f venuesFlags

	cmd := &cobra.Command{
		Use:   "venues",
		Short: "Search and rank meeting venues",
		Long: `Search for venues near a location with the goplaces CLI and print them as a
JSON array, highest rated first.`,
		Example: `  rendezvous venues --location "Union Square, NYC" --type coffee
  rendezvous venues --location "Penn Station, NYC" --type lunch --min-rating 4.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVenues(cmd, s, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.location, "location", "", `Area to search, e.g. "SoHo, NYC" (required)`)
	fl.StringVar(&f.venueType, "type", "", "Venue type: "+strings.Join(config.VenueTypes, ", ")+" (required)")
	fl.Float64Var(&f.minRating, "min-rating", 0, "Minimum rating; unrated venues are dropped when set")
	fl.IntVar(&f.limit, "limit", 0, "Maximum number of venues (0 for all)")
	fl.BoolVar(&f.strict, "strict", false, "Exit nonzero when the places search fails")

	return cmd
}

// resolveVenues merges config values with the flags the user set.
func resolveVenues(cmd *cobra.Command, cfg *config.Config, f venuesFlags) (config.VenueOptions, bool) {
	opts := config.VenueOptions{
		Location:  f.location,
		Type:      f.venueType,
		MinRating: cfg.Places.MinRating,
		Limit:     cfg.Places.Limit,
	}
	strict := cfg.Strict

	changed := cmd.Flags().Changed
	if changed("min-rating") {
		opts.MinRating = f.minRating
	}
	if changed("limit") {
		opts.Limit = f.limit
	}
	if changed("strict") {
		strict = f.strict
	}
	return opts, strict
}

func runVenues(cmd *cobra.Command, s *session, f venuesFlags) error {
	if err := s.start(cmd); err != nil {
		return err
	}
	defer s.stop()

	opts, strict := resolveVenues(cmd, s.config, f)
	if err := config.Validate(opts); err != nil {
		return err
	}
	cmd.SilenceUsage = true

	ctx, cancel, err := s.commandContext(cmd.Context())
	if err != nil {
		return err
	}
	defer cancel()

	searcher := &places.Searcher{
		Source:  places.NewGoplacesSource(s.runner, s.config.Places.Binary),
		Policy:  external.PolicyFor(strict),
		Logger:  logging.NewSlogAdapter(logging.WithPipeline(s.logger.Logger(), instrumentation.PipelineVenues)),
		Metrics: s.provider.Metrics(),
	}

	venues, err := searcher.Search(ctx, places.Query{
		Location:  opts.Location,
		Type:      opts.Type,
		MinRating: opts.MinRating,
		Limit:     opts.Limit,
	})
	if err != nil {
		return fmt.Errorf("venue search failed: %w", err)
	}

	return writeJSON(cmd.OutOrStdout(), venues)
}
