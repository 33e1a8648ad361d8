package tui

import (
	"context"

	"github.com/kauntidev/kaunti/internal/match"
	"github.com/kauntidev/kaunti/internal/model"
	"github.com/kauntidev/kaunti/internal/tui/themes"
)

// RefreshFunc fetches a replacement dataset when the user asks for one.
type RefreshFunc func(context.Context) (model.Dataset, error)

// Config holds dashboard configuration.
type Config struct {
	Theme      themes.Theme
	Dataset    model.Dataset
	Aliases    match.Aliases
	Refresh    RefreshFunc
	FiscalYear string
	Source     string
	Width      int
	Height     int
	ShowDetail bool
}

// Option is a functional option for configuring the dashboard.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:      themes.Default,
		Source:     "live",
		ShowDetail: true,
	}
}

// WithDataset sets the dataset the dashboard opens on.
func WithDataset(ds model.Dataset) Option {
	return func(c *Config) {
		c.Dataset = ds
	}
}

// WithAliases sets the alias table for boundary matching. Nil keeps the
// compiled-in defaults.
func WithAliases(aliases match.Aliases) Option {
	return func(c *Config) {
		c.Aliases = aliases
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithRefresh wires the refresh key to a dataset fetcher.
func WithRefresh(fn RefreshFunc) Option {
	return func(c *Config) {
		c.Refresh = fn
	}
}

// WithFiscalYear sets the fiscal year shown in the header. Defaults to the
// fiscal year on the first record.
func WithFiscalYear(fy string) Option {
	return func(c *Config) {
		c.FiscalYear = fy
	}
}

// WithSource names the data source in the header, e.g. "sample" or "db".
func WithSource(source string) Option {
	return func(c *Config) {
		c.Source = source
	}
}

// WithSize sets the initial terminal size, mainly for tests; at runtime the
// first WindowSizeMsg overwrites it.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
