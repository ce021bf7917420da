package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"litedata/cmd/litedata/cli"
	"litedata/internal/api"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	api.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
