// Package cli is the command surface: it dispatches one subcommand per
// process invocation and turns domain failures into exit codes.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"lodge/shared/failure"
	"lodge/transport/cli/router"
)

type CLI struct {
	Router router.Router
	Out    io.Writer
	Err    io.Writer
}

func New(r router.Router) *CLI {
	return &CLI{
		Router: r,
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
}

// Run executes one command and returns the process exit code. Every
// domain failure surfaces here as a one-line message; nothing below this
// boundary writes to the error stream directly.
func (c *CLI) Run(ctx context.Context, args []string) int {
	err := c.Router.Dispatch(ctx, args, c.Out)
	if err == nil {
		return 0
	}

	log.Debug().Err(err).Msg("command failed")

	fmt.Fprintf(c.Err, "Error: %s\n", err.Error())

	return failure.ExitCode(err)
}
