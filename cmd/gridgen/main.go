package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/gridgen/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stderr, cli.LogInfo)
	err := c.RootCommand().ExecuteContext(ctx)
	code := cli.ExitCode(err)
	if err != nil && code != cli.ExitInterrupted {
		cli.ReportError(os.Stderr, err)
	}
	cancel()
	os.Exit(code)
}
