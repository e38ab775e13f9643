// Command reconcile runs a single reconciliation pass and exits.
//
// Usage:
//
//	reconcile all
//	reconcile users ada@example.com grace@example.com
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	closeApp()
	stop()
	if err != nil {
		os.Exit(1)
	}
}
