package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/kanengo/coinflip/userx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := newApp(userx.NewGetter())
	if err := app.RunContext(ctx, os.Args); err != nil {
		slog.Error("coinflip failed", "err", err)
		os.Exit(1)
	}
}
