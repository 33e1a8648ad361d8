package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kauntidev/kaunti/internal/cli"
	"github.com/kauntidev/kaunti/internal/common"
	"github.com/kauntidev/kaunti/internal/match"
	"github.com/kauntidev/kaunti/internal/storage"
)

func aliasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "Manage boundary-to-county aliases",
		Long: `Manage the alias table that maps boundary labels onto county records.

A curated set ships with the binary; overrides added here are stored in the
database and win over the built-ins. Keys are normalized on entry, so
"Keiyo-Marakwet" and "keiyomarakwet" are the same key.`,
	}

	cmd.AddCommand(listAliasesCmd())
	cmd.AddCommand(addAliasCmd())
	cmd.AddCommand(rmAliasCmd())

	return cmd
}

func listAliasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List alias entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			overrides, err := store.ListAliasOverrides(ctx)
			if err != nil {
				return fmt.Errorf("failed to list alias overrides: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("Boundary key"),
				headerStyle.Render("County key"),
				headerStyle.Render("Source"),
				headerStyle.Render("Note"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 16),
				strings.Repeat("-", 16),
				strings.Repeat("-", 8),
				strings.Repeat("-", 24))

			overridden := make(map[string]bool, len(overrides))
			for _, o := range overrides {
				overridden[o.BoundaryKey] = true
			}

			defaults := match.DefaultAliases()
			for _, key := range sortedKeys(defaults) {
				if overridden[key] {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\tbuilt-in\t\n", key, defaults[key])
			}

			for _, o := range overrides {
				fmt.Fprintf(w, "%s\t%s\toverride\t%s\n", o.BoundaryKey, o.RecordKey, o.Note)
			}

			return nil
		},
	}
}

func addAliasCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "add <boundary> <county>",
		Short: "Add or update an alias override",
		Long: `Map a boundary label onto a county name.

Both sides may be written as raw display names; they are normalized before
storage. Example:

  kaunti aliases add "Thika Town" Kiambu --note "tile labeled by town"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			boundaryKey := match.Normalize(args[0])
			recordKey := match.Normalize(args[1])
			if boundaryKey == "" || recordKey == "" {
				return fmt.Errorf("alias keys must contain letters: %q -> %q", args[0], args[1])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			override := storage.AliasOverride{
				BoundaryKey: boundaryKey,
				RecordKey:   recordKey,
				Note:        note,
			}
			if err := store.SaveAliasOverride(ctx, override); err != nil {
				return fmt.Errorf("failed to save alias: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Mapped %q to %q", boundaryKey, recordKey)))
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Why this alias exists")

	return cmd
}

func rmAliasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <boundary>",
		Short: "Remove an alias override",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			boundaryKey := match.Normalize(args[0])

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteAliasOverride(ctx, boundaryKey); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return fmt.Errorf("no override stored for %q (built-ins cannot be removed)", boundaryKey)
				}
				return fmt.Errorf("failed to remove alias: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed override for %q", boundaryKey)))
			return nil
		},
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
