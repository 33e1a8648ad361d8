package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/kauntidev/kaunti/internal/common"
	"github.com/kauntidev/kaunti/internal/config"
	"github.com/kauntidev/kaunti/internal/match"
	"github.com/kauntidev/kaunti/internal/model"
	"github.com/kauntidev/kaunti/internal/storage"
	"github.com/kauntidev/kaunti/internal/tui"
)

// initStorage initializes the database with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadAliases builds the effective alias table: compiled-in defaults, then
// the optional aliases file from config, then database overrides. Later
// layers win.
func loadAliases(ctx context.Context, store *storage.SQLiteStorage) (match.Aliases, error) {
	aliases := match.DefaultAliases()

	if path := viper.GetString("aliases.file"); path != "" {
		fileAliases, err := match.LoadAliasFile(config.ExpandPath(path))
		if err != nil {
			return nil, fmt.Errorf("failed to load aliases file: %w", err)
		}
		aliases = aliases.Merge(fileAliases)
	}

	if store != nil {
		overrides, err := store.AliasOverrideMap(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load alias overrides: %w", err)
		}
		aliases = aliases.Merge(overrides)
	}

	return aliases, nil
}

// resolveFiscalYear picks the fiscal year to operate on: the explicit flag,
// then the configured default, then the newest year with stored records,
// finally the current fiscal year.
func resolveFiscalYear(ctx context.Context, store *storage.SQLiteStorage, flagFY string) (string, error) {
	if flagFY != "" {
		return flagFY, nil
	}
	if fy := viper.GetString("fiscal_year"); fy != "" {
		return fy, nil
	}

	if store != nil {
		years, err := store.ListFiscalYears(ctx)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			return "", fmt.Errorf("failed to list fiscal years: %w", err)
		}
		if len(years) > 0 {
			return years[0], nil
		}
	}

	return currentFiscalYear(time.Now()), nil
}

// currentFiscalYear returns the Kenyan government fiscal year containing t.
// The fiscal year runs July through June, so 2024-08-01 falls in "2024/25"
// and 2024-03-01 in "2023/24".
func currentFiscalYear(t time.Time) string {
	year := t.Year()
	if t.Month() < time.July {
		year--
	}
	return fmt.Sprintf("%d/%02d", year, (year+1)%100)
}

// unmatchedBoundaries lists the map boundaries that resolve to no record in
// the dataset, in map order.
func unmatchedBoundaries(ds model.Dataset, aliases match.Aliases) []string {
	resolver := match.NewResolver(aliases)
	var missing []string
	for _, t := range tui.Boundaries() {
		if _, ok := resolver.Resolve(t.Name, ds); !ok {
			missing = append(missing, t.Name)
		}
	}
	return missing
}
