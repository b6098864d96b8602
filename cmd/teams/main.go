package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

const appVersion = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(defaultDeps())
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
