package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kauntidev/kaunti/internal/cli"
	"github.com/kauntidev/kaunti/internal/model"
	"github.com/kauntidev/kaunti/internal/provider"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import county records from CSV exports",
		Long: `Import county finance records from Controller of Budget CSV exports.

Columns are located by header name, so reordered exports work. Rows are
grouped by fiscal year and each year's records replace whatever was stored
for that year before.

Examples:
  # Import a single export
  kaunti import ~/Downloads/county_budget_2324.csv

  # Import every export in a directory
  kaunti import ~/Downloads/cob/*.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("fy", "", "Fiscal year for files without a fiscal_year column (default: current fiscal year)")
	cmd.Flags().Bool("dry-run", false, "Parse and summarize without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	fallbackFY, _ := cmd.Flags().GetString("fy")
	if fallbackFY == "" {
		fallbackFY = currentFiscalYear(time.Now())
	}

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("Importing CSV exports",
		"file_count", len(allFiles),
		"dry_run", dryRun)

	bar := progressbar.NewOptions(len(allFiles),
		progressbar.OptionSetDescription("Parsing exports"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	// Collect records per fiscal year across all files. Within a year the
	// first occurrence of a county code wins and later ones are counted as
	// duplicates.
	byYear := make(map[string][]model.Record)
	seen := make(map[string]bool)
	duplicates := 0

	for _, filePath := range allFiles {
		bar.Describe(filepath.Base(filePath))

		f, err := os.Open(filePath)
		if err != nil {
			slog.Error("Failed to open file",
				"file", filePath,
				"error", err)
			_ = bar.Add(1)
			continue
		}

		records, err := provider.ParseCSV(f, fallbackFY)
		_ = f.Close()

		if err != nil {
			slog.Error("Failed to parse CSV file",
				"file", filePath,
				"error", err)
			_ = bar.Add(1)
			continue
		}

		if len(records) == 0 {
			slog.Warn("No county rows found in file",
				"file", filepath.Base(filePath))
			_ = bar.Add(1)
			continue
		}

		for _, rec := range records {
			key := rec.FiscalYear + "|" + rec.ID
			if seen[key] {
				duplicates++
				continue
			}
			seen[key] = true
			byYear[rec.FiscalYear] = append(byYear[rec.FiscalYear], rec)
		}

		_ = bar.Add(1)
	}
	_ = bar.Finish()

	if len(byYear) == 0 {
		slog.Warn("No county records found in any file")
		return nil
	}

	years := make([]string, 0, len(byYear))
	for fy := range byYear {
		years = append(years, fy)
	}
	sort.Strings(years)

	if dryRun {
		fmt.Println(cli.FormatWarning("Dry run - nothing was saved"))
		printImportSummary(years, byYear, duplicates)
		return nil
	}

	store, err := initStorage(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	handler := cli.NewInterruptHandler(os.Stdout)
	ctx := handler.HandleInterrupts(cmd.Context(), "kaunti import "+strings.Join(args, " "))

	for _, fy := range years {
		if _, err := store.ReplaceRecords(ctx, fy, byYear[fy], "import"); err != nil {
			if handler.WasInterrupted() {
				return nil
			}
			return fmt.Errorf("failed to store FY %s records: %w", fy, err)
		}
	}

	fmt.Println(cli.FormatSuccess("Import complete"))
	printImportSummary(years, byYear, duplicates)

	aliases, err := loadAliases(ctx, store)
	if err != nil {
		return err
	}
	for _, fy := range years {
		missing := unmatchedBoundaries(model.NewDataset(byYear[fy]), aliases)
		if len(missing) > 0 {
			fmt.Println(cli.FormatWarning(fmt.Sprintf("FY %s leaves %d boundaries unmatched: %s",
				fy, len(missing), strings.Join(missing, ", "))))
		}
	}

	return nil
}

func printImportSummary(years []string, byYear map[string][]model.Record, duplicates int) {
	var b strings.Builder
	for _, fy := range years {
		fmt.Fprintf(&b, "FY %s: %d counties\n", fy, len(byYear[fy]))
	}
	if duplicates > 0 {
		fmt.Fprintf(&b, "\nDuplicate rows skipped: %d\n", duplicates)
	}
	fmt.Println(cli.RenderBox("Import Summary", strings.TrimRight(b.String(), "\n")))
}
