package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kauntidev/kaunti/internal/cli"
	"github.com/kauntidev/kaunti/internal/common"
	"github.com/kauntidev/kaunti/internal/match"
	"github.com/kauntidev/kaunti/internal/model"
	"github.com/kauntidev/kaunti/internal/tui/themes"
)

// printer renders amounts with thousands separators ("KSh 42,000M").
var printer = message.NewPrinter(language.English)

func recordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Inspect stored county records",
		Long:  `List and show the county finance records stored for a fiscal year.`,
	}

	cmd.AddCommand(listRecordsCmd())
	cmd.AddCommand(showRecordCmd())
	cmd.AddCommand(rmRecordsCmd())

	return cmd
}

func listRecordsCmd() *cobra.Command {
	var flagFY string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records for a fiscal year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			fy, err := resolveFiscalYear(ctx, store, flagFY)
			if err != nil {
				return err
			}

			ds, err := store.GetDataset(ctx, fy)
			if err != nil {
				if errors.Is(err, common.ErrNoRecords) {
					fmt.Println(cli.InfoStyle.Render(fmt.Sprintf(
						"No records stored for FY %s. Use 'kaunti fetch' or 'kaunti import' to load some.", fy)))
					return nil
				}
				return err
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("County records, FY %s", fy)))

			// Create table writer
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			// Header
			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("Code"),
				headerStyle.Render("County"),
				headerStyle.Render("Allocated"),
				headerStyle.Render("Spent"),
				headerStyle.Render("Absorbed"),
				headerStyle.Render("Audit"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 5),
				strings.Repeat("-", 16),
				strings.Repeat("-", 11),
				strings.Repeat("-", 11),
				strings.Repeat("-", 8),
				strings.Repeat("-", 12))

			var totalAllocated, totalSpent float64
			for _, rec := range ds.Records {
				totalAllocated += rec.Budget.Allocated
				totalSpent += rec.Budget.Spent
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f%%\t%s\n",
					rec.ID,
					rec.Name,
					money(rec.Budget.Allocated),
					money(rec.Budget.Spent),
					rec.Budget.Utilization()*100,
					auditCell(rec.Audit.Status))
			}

			fmt.Fprintf(w, "\t\t%s\t%s\t\t%d counties\n",
				money(totalAllocated),
				money(totalSpent),
				ds.Len())
			if err := w.Flush(); err != nil {
				return err
			}

			// Provenance footer. Purely informational, so a missing or
			// unreadable fetch log just drops the line.
			if info, err := store.LastFetch(ctx, fy); err == nil {
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf(
					"source %s, fetched %s", info.Source, info.FetchedAt.Format("2006-01-02 15:04"))))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flagFY, "fy", "", "Fiscal year (default: newest stored)")

	return cmd
}

func rmRecordsCmd() *cobra.Command {
	var flagFY string

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete all records for a fiscal year",
		Long: `Delete every stored record for one fiscal year. The year must be
named explicitly; rm never guesses. Alias overrides are kept.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteRecords(ctx, flagFY); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(
						fmt.Sprintf("no records stored for FY %s", flagFY), err)
				}
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted all records for FY %s", flagFY)))
			return nil
		},
	}

	cmd.Flags().StringVar(&flagFY, "fy", "", "Fiscal year to delete (required)")
	_ = cmd.MarkFlagRequired("fy")

	return cmd
}

func showRecordCmd() *cobra.Command {
	var flagFY string

	cmd := &cobra.Command{
		Use:   "show <county>",
		Short: "Show one county in detail",
		Long: `Show one county's full record. The county may be given by code
("KE-47"), by name ("Nairobi"), or by any boundary label that resolves to
it ("Keiyo-Marakwet").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			fy, err := resolveFiscalYear(ctx, store, flagFY)
			if err != nil {
				return err
			}

			ds, err := store.GetDataset(ctx, fy)
			if err != nil {
				return err
			}

			aliases, err := loadAliases(ctx, store)
			if err != nil {
				return err
			}

			rec, ok := findRecord(args[0], ds, aliases)
			if !ok {
				return fmt.Errorf("no county matching %q in FY %s", args[0], fy)
			}

			fmt.Println(renderRecord(rec))
			return nil
		},
	}

	cmd.Flags().StringVar(&flagFY, "fy", "", "Fiscal year (default: newest stored)")

	return cmd
}

// findRecord locates a record by county code or by resolving the argument as
// a region name, with the same normalization and aliasing the map uses.
func findRecord(arg string, ds model.Dataset, aliases match.Aliases) (model.Record, bool) {
	if i, ok := ds.IndexByID(strings.ToUpper(strings.TrimSpace(arg))); ok {
		return ds.Records[i], true
	}

	resolver := match.NewResolver(aliases)
	if i, ok := resolver.Resolve(arg, ds); ok {
		return ds.Records[i], true
	}

	return model.Record{}, false
}

func renderRecord(rec model.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Population:          %s\n", printer.Sprintf("%d", rec.Population))
	fmt.Fprintf(&b, "Allocated:           %s\n", money(rec.Budget.Allocated))
	fmt.Fprintf(&b, "Spent:               %s  (%.1f%% absorbed)\n", money(rec.Budget.Spent), rec.Budget.Utilization()*100)
	fmt.Fprintf(&b, "Own-source revenue:  %s\n", money(rec.Budget.OwnSourceRevenue))
	fmt.Fprintf(&b, "Funding gap:         %s\n", money(rec.FundingGap()))
	fmt.Fprintf(&b, "Debt outstanding:    %s\n", money(rec.Debt.Outstanding))
	fmt.Fprintf(&b, "Pending bills:       %s\n", money(rec.Debt.PendingBills))
	fmt.Fprintf(&b, "Debt per capita:     %s\n", printer.Sprintf("KSh %.0f", rec.DebtPerCapita()))
	fmt.Fprintf(&b, "\nAudit: %s", auditCell(rec.Audit.Status))
	if rec.Audit.Note != "" {
		fmt.Fprintf(&b, "\n%s", cli.SubtleStyle.Render(rec.Audit.Note))
	}

	title := fmt.Sprintf("%s (%s), FY %s", rec.Name, rec.ID, rec.FiscalYear)
	return cli.RenderBox(title, b.String())
}

// money formats a KSh-millions amount for display.
func money(v float64) string {
	return printer.Sprintf("KSh %.0fM", v)
}

// auditCell renders an audit status as a colored icon plus label.
func auditCell(status model.AuditStatus) string {
	text := themes.GetStatusIcon(string(status)) + " " + status.Label()
	return auditStyle(status).Render(text)
}

func auditStyle(status model.AuditStatus) lipgloss.Style {
	switch status {
	case model.AuditClean:
		return cli.SuccessStyle
	case model.AuditQualified:
		return cli.WarningStyle
	case model.AuditAdverse, model.AuditDisclaimer:
		return cli.ErrorStyle
	default:
		return cli.SubtleStyle
	}
}
