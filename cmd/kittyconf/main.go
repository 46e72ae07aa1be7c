// Package main is the entry point for kittyconf.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/kittyconf/internal/cli"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cli.BuildInfo{Version: version, Commit: commit, Date: date})
	return app.Execute(ctx, os.Args[1:])
}
