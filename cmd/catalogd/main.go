// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command catalogd serves the read-only data catalog API and carries its
// operational subcommands.
//
//	catalogd serve     run the HTTP API
//	catalogd migrate   apply pending schema migrations
//	catalogd token     mint an access token for local testing
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("command_failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
