/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/suparena/ddbcompat"
	"github.com/suparena/ddbcompat/client"
	"github.com/suparena/ddbcompat/logger"
	"github.com/suparena/ddbcompat/registry"
	"github.com/suparena/ddbcompat/runner"

	// Populate the check catalog.
	_ "github.com/suparena/ddbcompat/checks"
)

var runCmd = &cobra.Command{
	Use:   "run [check ...]",
	Short: "Run compatibility checks against the target endpoint",
	Long: `Run executes the check catalog against the configured endpoint and
prints a JSON report. With check names as arguments only those checks
run; otherwise the whole catalog does.

The command exits non-zero when any check fails.

Example:
  ddbcompat run
  ddbcompat run scan_full query_partition --url http://localhost:8000`,
	RunE: runChecks,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runChecks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(logLevel, logFormat)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	selected, err := selectChecks(args)
	if err != nil {
		return err
	}

	ddb, err := client.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build client: %w", err)
	}

	tables := ddbcompat.NewSharedTables(ddb)
	defer func() {
		if err := tables.Cleanup(ctx); err != nil {
			log.Warnw("fixture cleanup incomplete", "error", err)
		}
	}()

	r := runner.New(cfg, ddb, tables, log, runner.WithVerySlow(runVerySlow))
	report := r.Run(ctx, selected)

	if err := writeReport(cmd, report); err != nil {
		return err
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d of %d checks failed", report.Failed, len(report.Results))
	}
	return nil
}

// selectChecks resolves check name arguments against the catalog; with
// no arguments the full catalog runs.
func selectChecks(names []string) ([]registry.Check, error) {
	if len(names) == 0 {
		return registry.List(), nil
	}
	out := make([]registry.Check, 0, len(names))
	for _, name := range names {
		c, err := registry.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func writeReport(cmd *cobra.Command, report *runner.Report) error {
	if reportPath == "" {
		return report.WriteJSON(cmd.OutOrStdout())
	}
	f, err := os.Create(reportPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()
	return report.WriteJSON(f)
}
