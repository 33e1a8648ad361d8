// Package main provides a demo program for the dashboard TUI
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kauntidev/kaunti/internal/provider"
	"github.com/kauntidev/kaunti/internal/tui"
)

func main() {
	// Run the dashboard on the canned sample data; no database, no feed.
	ctx := context.Background()

	err := tui.Run(ctx,
		tui.WithDataset(provider.SampleDataset()),
		tui.WithSource("sample"),
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running dashboard: %v\n", err)
		os.Exit(1)
	}
}
