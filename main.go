package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/telton/asciimock/cmds"
	"github.com/telton/asciimock/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmds.Execute(ctx, os.Args); err != nil {
		logger.Error("asciimock failed", "error", err)
		stop()
		os.Exit(1)
	}
}
