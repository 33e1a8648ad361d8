package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kauntidev/kaunti/internal/common"
	"github.com/kauntidev/kaunti/internal/match"
	"github.com/kauntidev/kaunti/internal/model"
	"github.com/kauntidev/kaunti/internal/provider"
	"github.com/kauntidev/kaunti/internal/storage"
	"github.com/kauntidev/kaunti/internal/tui"
	"github.com/kauntidev/kaunti/internal/tui/themes"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the county finance dashboard",
		Long: `Open the interactive cartogram dashboard.

Counties are painted by audit opinion, with hover tooltips, click-to-pin,
and an auto-rotating emphasis cycle. Needs records in the database unless
--demo is given.`,
		RunE: runDashboard,
	}

	cmd.Flags().String("fy", "", "Fiscal year to display (format: 2023/24)")
	cmd.Flags().Bool("demo", false, "Use the built-in sample dataset instead of the database")
	cmd.Flags().String("theme", "", "Color theme (default, catppuccin-mocha)")

	_ = viper.BindPFlag("theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	theme := themes.GetTheme(viper.GetString("theme"))

	demo, _ := cmd.Flags().GetBool("demo")
	if demo {
		return tui.Run(ctx,
			tui.WithDataset(provider.SampleDataset()),
			tui.WithAliases(match.DefaultAliases()),
			tui.WithTheme(theme),
			tui.WithSource("sample"),
		)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	flagFY, _ := cmd.Flags().GetString("fy")
	fy, err := resolveFiscalYear(ctx, store, flagFY)
	if err != nil {
		return err
	}

	ds, err := store.GetDataset(ctx, fy)
	if err != nil {
		if errors.Is(err, common.ErrNoRecords) {
			return common.NewUserError(
				fmt.Sprintf("no records stored for FY %s; run 'kaunti fetch' or 'kaunti import <csv>' first", fy),
				err)
		}
		return err
	}

	aliases, err := loadAliases(ctx, store)
	if err != nil {
		return err
	}

	return tui.Run(ctx,
		tui.WithDataset(ds),
		tui.WithAliases(aliases),
		tui.WithTheme(theme),
		tui.WithFiscalYear(fy),
		tui.WithSource("db"),
		tui.WithRefresh(refreshFunc(store, fy)),
	)
}

// refreshFunc wires the dashboard's refresh key. With a feed configured it
// refetches and persists; otherwise it just rereads the database, which
// picks up imports done from another terminal.
func refreshFunc(store *storage.SQLiteStorage, fy string) tui.RefreshFunc {
	feedURL := viper.GetString("feed.url")

	return func(ctx context.Context) (model.Dataset, error) {
		if feedURL == "" {
			return store.GetDataset(ctx, fy)
		}
		return fetchAndStore(ctx, store, feedURL, fy)
	}
}
