package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Conversion can take a while on large books; make Ctrl-C interrupt it.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
