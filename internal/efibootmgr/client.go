package efibootmgr

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/bootsync/internal/state"
)

// ExecError reports a failed efibootmgr invocation. Message is the utility's
// diagnostic output verbatim, with the trailing newline stripped.
type ExecError struct {
	Stderr string
	Err    error
}

// Error returns the utility's own diagnostic when it produced one.
func (e *ExecError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("efibootmgr failed: %v", e.Err)
}

// Unwrap returns the underlying process error.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// Client invokes efibootmgr, scoping every call to one disk and partition.
type Client struct {
	runner Runner
	disk   string
	part   string
	log    zerolog.Logger
}

// NewClient creates a Client. disk and part are appended to every argument
// vector so no invocation can target the wrong partition.
func NewClient(runner Runner, disk, part string, log zerolog.Logger) *Client {
	return &Client{
		runner: runner,
		disk:   disk,
		part:   part,
		log:    log,
	}
}

// Invoke runs one efibootmgr operation and returns the boot-entry state the
// utility printed. The argument vector must start with the utility name;
// anything else is a bug in the caller, not a runtime condition, and panics.
func (c *Client) Invoke(ctx context.Context, args []string) (*state.State, error) {
	if len(args) == 0 || args[0] != Command {
		panic(fmt.Sprintf("efibootmgr: argument vector must start with %q, got %v", Command, args))
	}

	full := append(append([]string{}, args[1:]...), "--disk", c.disk, "--part", c.part)
	c.log.Debug().Strs("args", full).Msg("invoking efibootmgr")

	stdout, stderr, err := c.runner.Run(ctx, Command, full)
	if err != nil {
		return nil, &ExecError{
			Stderr: strings.TrimRight(stderr, "\n"),
			Err:    err,
		}
	}
	return state.Parse(stdout), nil
}
