package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users <email>...",
	Short: "Reconcile the given users only",
	Long: `Reconciles the listed users. Emails without stored settings are
reported as skipped with reason settings_not_found.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := reconciler.ReconcileUsers(cmd.Context(), args)
		if err != nil {
			return fmt.Errorf("reconcile users: %w", err)
		}
		return printResult(cmd, res)
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
