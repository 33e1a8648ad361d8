package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kauntidev/kaunti/internal/common"
	"github.com/kauntidev/kaunti/internal/interaction"
	"github.com/kauntidev/kaunti/internal/match"
	"github.com/kauntidev/kaunti/internal/model"
	"github.com/kauntidev/kaunti/internal/provider"
	"github.com/kauntidev/kaunti/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard state over HTTP",
		Long: `Expose the records, the resolved map, and the emphasized county as a
read-only JSON API.

The server runs its own rotation timer, so the emphasis cycle advances for
API consumers exactly as it would on screen.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8787", "Listen address")
	cmd.Flags().String("fy", "", "Fiscal year to serve (default: newest stored)")
	cmd.Flags().Bool("demo", false, "Serve the built-in sample dataset")
	cmd.Flags().Bool("allow-all", false, "Allow any CORS origin")

	_ = viper.BindPFlag("serve.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("serve.allow_all", cmd.Flags().Lookup("allow-all"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var (
		ds      model.Dataset
		aliases match.Aliases
		fy      string
		source  string
	)

	demo, _ := cmd.Flags().GetBool("demo")
	if demo {
		ds = provider.SampleDataset()
		aliases = match.DefaultAliases()
		fy = ds.Records[0].FiscalYear
		source = "sample"
	} else {
		store, err := initStorage(ctx)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		flagFY, _ := cmd.Flags().GetString("fy")
		fy, err = resolveFiscalYear(ctx, store, flagFY)
		if err != nil {
			_ = store.Close()
			return err
		}

		ds, err = store.GetDataset(ctx, fy)
		if err != nil {
			_ = store.Close()
			if errors.Is(err, common.ErrNoRecords) {
				return common.NewUserError(
					fmt.Sprintf("no records stored for FY %s; run 'kaunti fetch' or 'kaunti import <csv>' first", fy),
					err)
			}
			return err
		}

		aliases, err = loadAliases(ctx, store)
		_ = store.Close()
		if err != nil {
			return err
		}
		source = "db"
	}

	coordinator := interaction.New(ds)
	srv := server.New(server.Config{
		Addr:       viper.GetString("serve.addr"),
		FiscalYear: fy,
		Source:     source,
		AllowAll:   viper.GetBool("serve.allow_all"),
	}, coordinator, match.NewResolver(aliases))

	// Keep the emphasis cycle turning with nobody at a keyboard.
	rotator := interaction.NewRotator(coordinator, 0)
	go func() { _ = rotator.Run(ctx) }()

	// Graceful shutdown.
	go func() {
		<-ctx.Done()
		slog.Info("Shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	}()

	return srv.Start()
}
