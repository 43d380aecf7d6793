// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"

	"github.com/taibuivan/catalog/internal/platform/constants"
)

// newLogger builds the process logger. Text output goes through charm's
// slog handler for local work; everything else is JSON for log shippers.
func newLogger(writer io.Writer, text, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if text {
		charm := charmlog.NewWithOptions(writer, charmlog.Options{ReportTimestamp: true})
		if debug {
			charm.SetLevel(charmlog.DebugLevel)
		}
		handler = charm
	} else {
		handler = slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler).With(slog.String("app", constants.AppName))
}
