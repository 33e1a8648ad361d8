package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until the user quits or ctx is
// canceled. Mouse cell-motion reporting is always on; hover is the whole
// point of the map.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := newModel(ctx, cfg)
	slog.Debug("starting dashboard",
		"records", cfg.Dataset.Len(),
		"fiscal_year", m.fiscalYear,
		"source", cfg.Source)

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		// Context cancellation (Ctrl+C at the command layer) is a normal
		// way out, not a dashboard failure.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
