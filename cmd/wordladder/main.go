package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordladder/internal/cli"
	"github.com/matzehuels/wordladder/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	var verbose bool

	c := cli.New(stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// The log level must be set before the root's own pre-run loads the config.
	loadConfig := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if loadConfig != nil {
			return loadConfig(cmd, args)
		}
		return nil
	}

	err := root.ExecuteContext(ctx)
	code := cli.ExitCode(err)
	if code != cli.ExitError {
		return code
	}
	// Verbose runs keep the error code and cause chain.
	if verbose {
		fmt.Fprintln(stderr, "Error:", err)
	} else {
		fmt.Fprintln(stderr, "Error:", errors.UserMessage(err))
	}
	return code
}
