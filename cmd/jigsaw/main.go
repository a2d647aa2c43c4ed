// Command jigsaw plays picture puzzles in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jigsaw/internal/cli"
	jerrors "github.com/matzehuels/jigsaw/pkg/errors"
)

// Exit codes.
const (
	exitFailure  = 1
	exitRejected = 2   // bad image, grid, language or flag combination
	exitSignal   = 130 // interrupted
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()

	switch {
	case err == nil:
		return
	case errors.Is(err, context.Canceled):
		os.Exit(exitSignal)
	case jerrors.Rejected(err):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitRejected)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// The level is set before the root hook loads the config, which logs.
	loadConfig := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if loadConfig == nil {
			return nil
		}
		return loadConfig(cmd, args)
	}

	return root.ExecuteContext(ctx)
}
