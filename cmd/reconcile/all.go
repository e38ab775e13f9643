package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Reconcile every stored user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := reconciler.ReconcileAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("reconcile all: %w", err)
		}
		return printResult(cmd, res)
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
}
