// Command fieldcarbon estimates greenhouse-gas emissions for agricultural
// field records.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rshade/fieldcarbon/internal/cli"
	"github.com/rshade/fieldcarbon/pkg/version"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(ctx)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
