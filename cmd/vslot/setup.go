package main

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/slot/internal/config"
	"github.com/vango-dev/slot/pkg/metrics"
	"github.com/vango-dev/slot/pkg/slot"
)

// session is the state one command invocation works with.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	observer []slot.Observer
}

// newSession loads configuration, applies flag overrides and builds the
// logger and, when enabled, a metrics collector on a private registry.
func newSession(cmd *cobra.Command, opts *rootOptions, forceMetrics bool) (*session, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		var wd string
		if wd, err = os.Getwd(); err == nil {
			cfg, err = config.LoadDir(wd)
		}
	}
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("dev") {
		cfg.DevMode = opts.dev
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if forceMetrics {
		cfg.Metrics.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &session{
		cfg: cfg,
		logger: slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: cfg.Level(),
		})),
	}

	if cfg.Metrics.Enabled {
		s.registry = prometheus.NewRegistry()
		s.observer = append(s.observer, metrics.New(
			metrics.WithRegistry(s.registry),
			metrics.WithNamespace(cfg.Metrics.Namespace),
			metrics.WithSubsystem(cfg.Metrics.Subsystem),
		))
	}
	return s, nil
}

// composer returns a Composer reporting to the session's observers and to
// extra.
func (s *session) composer(extra ...slot.Observer) *slot.Composer {
	observers := append(append([]slot.Observer{}, s.observer...), extra...)
	return slot.New(
		slot.WithDevMode(s.cfg.DevMode),
		slot.WithLogger(s.logger),
		slot.WithObserver(slot.ObserverFunc(func(o slot.Outcome) {
			for _, obs := range observers {
				obs.ObserveComposition(o)
			}
		})),
	)
}
