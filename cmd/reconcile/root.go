package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"calendar-status-sync/config"
	"calendar-status-sync/internal/app"
	"calendar-status-sync/internal/reconcile"
	"calendar-status-sync/pkg/log"
)

var (
	// reconciler is set by PersistentPreRunE unless already injected.
	reconciler reconcile.UseCase
	closeApp   = func() {}
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:           "reconcile",
	Short:         "Run one calendar to chat status reconciliation pass",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if reconciler != nil {
			return nil
		}
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		l := log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
		a, err := app.New(cmd.Context(), cfg, l)
		if err != nil {
			return err
		}
		reconciler = a.Reconcile
		closeApp = a.Close
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print the batch result as JSON")
}

func printResult(cmd *cobra.Command, res reconcile.BatchResult) error {
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	for _, o := range res.Outcomes {
		line := fmt.Sprintf("%-32s %-12s", o.Email, o.Status)
		switch {
		case o.Reason != "":
			line += " " + o.Reason
		case o.Error != "":
			line += " " + o.Error
		case o.CurrentEventID != "":
			line += " event=" + o.CurrentEventID
		}
		cmd.Println(line)
	}
	cmd.Printf("run %s: %d ok, %d skipped, %d auth expired, %d failed in %s\n",
		res.RunID, res.OK, res.Skipped, res.AuthExpired, res.Failed, res.Duration)

	if res.Failed > 0 {
		return fmt.Errorf("%d user(s) failed", res.Failed)
	}
	return nil
}
