// Package main provides the shapes CLI for measuring and comparing
// circles, rectangles and regular polygons.
package main

import (
	"context"
	"log/slog"
	"os"
)

func main() {
	// Setup structured logging
	setupLogging(os.Stderr, false)

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
