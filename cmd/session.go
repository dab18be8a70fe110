package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/teemow/rendezvous/internal/config"
	"github.com/teemow/rendezvous/internal/external"
	"github.com/teemow/rendezvous/internal/instrumentation"
	"github.com/teemow/rendezvous/internal/logging"
)

// session holds what one command invocation shares: the logger, the loaded
// configuration, the telemetry provider and the external command runner.
type session struct {
	configPath string
	logLevel   string
	logFormat  string

	newRunner runnerFactory

	runID    string
	logger   *logging.SlogAdapter
	config   *config.Config
	provider *instrumentation.Provider
	runner   external.Runner
}

// start sets up logging, configuration and instrumentation for cmd.
// Callers must defer stop once start succeeds.
func (s *session) start(cmd *cobra.Command) error {
	s.runID = uuid.NewString()

	base, err := logging.New(cmd.ErrOrStderr(), s.logLevel, s.logFormat)
	if err != nil {
		return err
	}
	base = logging.WithOperation(logging.WithRunID(base, s.runID), cmd.Name())
	s.logger = logging.NewSlogAdapter(base)

	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}
	s.config = cfg

	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version
	if instrConfig.ServiceInstanceID == "" {
		instrConfig.ServiceInstanceID = s.runID
	}
	instrConfig.Output = cmd.ErrOrStderr()

	provider, err := instrumentation.NewProvider(cmd.Context(), instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	s.provider = provider

	newRunner := s.newRunner
	if newRunner == nil {
		newRunner = defaultRunner
	}
	s.runner = external.Instrument(newRunner(), provider.Metrics(), s.logger)

	s.logger.Debug("session started",
		"config", s.configPath,
		"instrumentation", provider.Enabled(),
		"version", version)
	return nil
}

// stop flushes telemetry. Shutdown errors are logged, never returned, so
// they cannot mask the command's own result.
func (s *session) stop() {
	if s.provider == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.provider.Shutdown(ctx); err != nil {
		s.logger.Warn("instrumentation shutdown failed", logging.Err(err))
	}
}

// commandContext applies the configured command timeout to ctx.
func (s *session) commandContext(ctx context.Context) (context.Context, context.CancelFunc, error) {
	timeout, err := s.config.Timeout()
	if err != nil {
		return nil, nil, err
	}
	if timeout <= 0 {
		ctx, cancel := context.WithCancel(ctx)
		return ctx, cancel, nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, cancel, nil
}
