package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"weather-watchlist/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand(os.Stdout, os.Stdin).ExecuteContext(ctx)
	stop()
	log.Sync()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
