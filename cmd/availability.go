package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/rendezvous/internal/calendar"
	"github.com/teemow/rendezvous/internal/config"
	"github.com/teemow/rendezvous/internal/external"
	"github.com/teemow/rendezvous/internal/instrumentation"
	"github.com/teemow/rendezvous/internal/logging"
)

type availabilityFlags struct {
	calendarID string
	date       string
	duration   int
	startHour  int
	endHour    int
	timezone   string
	strict     bool
}

func newAvailabilityCmd(s *session) *cobra.Command {
	var f availabilityFlags

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "List free calendar slots for a day",
		Long: `Fetch the busy events of one day with the gog calendar CLI and print the
free slots of the work window that are at least --duration minutes long.

Output:
  {"date", "window", "timezone", "events": [...], "free_slots": [...]}`,
		Example: `  rendezvous availability --calendar me@example.com --date 2026-02-19
  rendezvous availability --calendar me@example.com --date 2026-02-19 --duration 90 --start-hour 9`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAvailability(cmd, s, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.calendarID, "calendar", "", "Calendar ID (required)")
	fl.StringVar(&f.date, "date", "", "Day to check, YYYY-MM-DD (required)")
	fl.IntVar(&f.duration, "duration", config.DefaultDuration, "Minimum free slot length in minutes")
	fl.IntVar(&f.startHour, "start-hour", config.DefaultStartHour, "Work window start hour (0-23)")
	fl.IntVar(&f.endHour, "end-hour", config.DefaultEndHour, "Work window end hour (0-23)")
	fl.StringVar(&f.timezone, "tz", config.DefaultTimezone, "IANA time zone of the work window")
	fl.BoolVar(&f.strict, "strict", false, "Exit nonzero when the calendar query fails")

	return cmd
}

// resolveAvailability merges config values with the flags the user set.
func resolveAvailability(cmd *cobra.Command, cfg *config.Config, f availabilityFlags) (config.AvailabilityOptions, bool) {
	opts := config.AvailabilityOptions{
		CalendarID: f.calendarID,
		Date:       f.date,
		Duration:   *cfg.Calendar.Duration,
		StartHour:  *cfg.Calendar.StartHour,
		EndHour:    *cfg.Calendar.EndHour,
		Timezone:   cfg.Calendar.Timezone,
	}
	strict := cfg.Strict

	changed := cmd.Flags().Changed
	if changed("duration") {
		opts.Duration = f.duration
	}
	if changed("start-hour") {
		opts.StartHour = f.startHour
	}
	if changed("end-hour") {
		opts.EndHour = f.endHour
	}
	if changed("tz") {
		opts.Timezone = f.timezone
	}
	if changed("strict") {
		strict = f.strict
	}
	return opts, strict
}

func runAvailability(cmd *cobra.Command, s *session, f availabilityFlags) error {
	if err := s.start(cmd); err != nil {
		return err
	}
	defer s.stop()

	opts, strict := resolveAvailability(cmd, s.config, f)
	if err := config.Validate(opts); err != nil {
		return err
	}
	day, err := calendar.ParseDate(opts.Date)
	if err != nil {
		return err
	}
	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		return fmt.Errorf("invalid time zone: %w", err)
	}
	cmd.SilenceUsage = true

	ctx, cancel, err := s.commandContext(cmd.Context())
	if err != nil {
		return err
	}
	defer cancel()

	checker := &calendar.Checker{
		Source:  calendar.NewGogSource(s.runner, s.config.Calendar.Binary),
		Policy:  external.PolicyFor(strict),
		Logger:  logging.NewSlogAdapter(logging.WithPipeline(s.logger.Logger(), instrumentation.PipelineAvailability)),
		Metrics: s.provider.Metrics(),
	}

	result, err := checker.Check(ctx, calendar.Query{
		CalendarID:  opts.CalendarID,
		Day:         day,
		MinDuration: time.Duration(opts.Duration) * time.Minute,
		StartHour:   opts.StartHour,
		EndHour:     opts.EndHour,
		Location:    loc,
	})
	if err != nil {
		return fmt.Errorf("availability check failed: %w", err)
	}

	return writeJSON(cmd.OutOrStdout(), result)
}
