package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gh-notifier/gh-notifier/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()
	os.Exit(cli.ExitCode(err))
}
