package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kauntidev/kaunti/internal/cli"
	"github.com/kauntidev/kaunti/internal/common"
	"github.com/kauntidev/kaunti/internal/match"
	"github.com/kauntidev/kaunti/internal/model"
	"github.com/kauntidev/kaunti/internal/provider"
	"github.com/kauntidev/kaunti/internal/storage"
)

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch county records from the open-data feed",
		Long: `Fetch county finance records for one fiscal year from the configured
open-data feed and store them, replacing any previous records for that year.

The feed URL comes from feed.url in the config file or the --feed-url flag.`,
		RunE: runFetch,
	}

	cmd.Flags().String("fy", "", "Fiscal year to fetch (default: current fiscal year)")
	cmd.Flags().String("feed-url", "", "Open-data feed base URL")

	_ = viper.BindPFlag("feed.url", cmd.Flags().Lookup("feed-url"))

	return cmd
}

func runFetch(cmd *cobra.Command, _ []string) error {
	flagFY, _ := cmd.Flags().GetString("fy")

	feedURL := viper.GetString("feed.url")
	if feedURL == "" {
		return common.NewUserError(
			"no feed configured; set feed.url in the config file or pass --feed-url",
			common.ErrMissingConfig)
	}

	store, err := initStorage(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	fy, err := resolveFiscalYear(cmd.Context(), store, flagFY)
	if err != nil {
		return err
	}

	handler := cli.NewInterruptHandler(os.Stdout)
	ctx := handler.HandleInterrupts(cmd.Context(), fmt.Sprintf("kaunti fetch --fy %s", fy))

	slog.Info(cli.FormatTitle("Fetching county finance records"))
	slog.Info("Fetch starting", "fiscal_year", fy, "feed", feedURL)

	ds, err := fetchAndStore(ctx, store, feedURL, fy)
	if err != nil {
		if handler.WasInterrupted() {
			return nil
		}
		return err
	}

	aliases, err := loadAliases(ctx, store)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Stored %d county records for FY %s", ds.Len(), fy)))
	printCoverage(ds, aliases)

	return nil
}

// fetchAndStore pulls one fiscal year from the feed and replaces the stored
// records for that year. Retries cover transient feed failures; the replace
// is a single transaction, so an interrupt mid-fetch leaves the previous
// records untouched.
func fetchAndStore(ctx context.Context, store *storage.SQLiteStorage, feedURL, fy string) (model.Dataset, error) {
	client, err := provider.NewClient(feedURL)
	if err != nil {
		return model.Dataset{}, err
	}

	var ds model.Dataset
	err = common.WithRetry(ctx, func() error {
		var fetchErr error
		ds, fetchErr = client.FetchRecords(ctx, fy)
		return fetchErr
	}, common.RetryOptions{MaxAttempts: 3})
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to fetch records: %w", err)
	}

	if ds.Empty() {
		return model.Dataset{}, common.NewUserError(
			fmt.Sprintf("the feed has no counties for FY %s", fy),
			common.ErrNoRecords)
	}

	stored, err := store.ReplaceRecords(ctx, fy, ds.Records, "feed")
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to store records: %w", err)
	}

	return stored, nil
}

// printCoverage reports which map boundaries the new dataset leaves unmatched
// so naming drift shows up at fetch time, not as gray tiles later.
func printCoverage(ds model.Dataset, aliases match.Aliases) {
	missing := unmatchedBoundaries(ds, aliases)
	if len(missing) == 0 {
		fmt.Println(cli.FormatInfo("All 47 boundaries matched a record"))
		return
	}

	fmt.Println(cli.FormatWarning(fmt.Sprintf("%d boundaries have no record:", len(missing))))
	fmt.Println(cli.SubtleStyle.Render("  " + strings.Join(missing, "\n  ")))
	fmt.Println(cli.FormatInfo("Map them with: kaunti aliases add <boundary> <county>"))
}
