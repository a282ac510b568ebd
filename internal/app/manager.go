package app

import (
	"context"
	"log/slog"

	"github.com/andyballingall/srcfmt/internal/config"
	"github.com/andyballingall/srcfmt/internal/sweep"
)

// Manager defines the business logic behind the srcfmt command.
type Manager interface {
	// FormatAll sweeps every configured root in order.
	FormatAll(ctx context.Context) error
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation, allowing
// for deferred initialization of dependencies.
type LazyManager struct {
	inner Manager
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) FormatAll(ctx context.Context) error {
	return l.check().FormatAll(ctx)
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger  *slog.Logger
	cfg     *config.Config
	sweeper *sweep.Sweeper
}

func NewCLIManager(l *slog.Logger, cfg *config.Config, s *sweep.Sweeper) *CLIManager {
	return &CLIManager{
		logger:  l,
		cfg:     cfg,
		sweeper: s,
	}
}

func (m *CLIManager) FormatAll(ctx context.Context) error {
	source := m.cfg.Source
	if source == "" {
		source = "defaults"
	}
	m.logger.Debug("Starting sweep",
		"config", source,
		"tool", m.cfg.Tool,
		"roots", m.cfg.Roots,
		"extensions", m.cfg.Extensions,
	)

	if err := m.sweeper.Run(ctx, m.cfg.Roots, m.cfg.Extensions); err != nil {
		return err
	}

	m.logger.Debug("Sweep complete")
	return nil
}
