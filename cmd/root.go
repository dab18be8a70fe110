package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teemow/rendezvous/internal/external"
)

// version will be set by main
var version = "dev"

// SetVersion sets the version reported by the CLI
func SetVersion(v string) {
	version = v
}

// runnerFactory builds the runner used for external commands.
type runnerFactory func() external.Runner

func defaultRunner() external.Runner {
	return external.NewExecRunner()
}

// newRootCmd builds the command tree. Usage is printed for argument errors
// only: each command silences it once its options have validated.
func newRootCmd(newRunner runnerFactory) *cobra.Command {
	s := &session{newRunner: newRunner}

	rootCmd := &cobra.Command{
		Use:   "rendezvous",
		Short: "Finds free calendar slots and meeting venues",
		Long: `rendezvous helps schedule a meeting.

  availability  lists the free slots of a day, read from the gog calendar CLI
  venues        ranks nearby venues, read from the goplaces CLI

Both commands print JSON to stdout. If the external tool fails the result is
empty and the failure is logged to stderr; pass --strict to exit nonzero
instead.`,
		Version: version,
	}
	rootCmd.SetVersionTemplate(`{{printf "rendezvous version %s\n" .Version}}`)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&s.configPath, "config", "", "Config file (default: $RENDEZVOUS_CONFIG or <user config dir>/rendezvous/config.yaml)")
	pf.StringVar(&s.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&s.logFormat, "log-format", "text", "Log format: text, json")

	rootCmd.AddCommand(newAvailabilityCmd(s))
	rootCmd.AddCommand(newVenuesCmd(s))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())

	return rootCmd
}

// Execute is the main entry point for the CLI application
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := newRootCmd(defaultRunner).ExecuteContext(ctx)
	if err != nil {
		cancel()
		os.Exit(1)
	}
}
