// Package efibootmgr wraps invocation of the efibootmgr utility.
//
// efibootmgr is the sole mutation surface for firmware boot entries; bootsync
// never touches NVRAM variables itself. Every invocation is scoped to one
// disk and partition, and every successful invocation returns the freshly
// parsed boot-entry state printed by the utility.
package efibootmgr

import (
	"bytes"
	"context"
	"os/exec"
)

// Command is the fixed name of the external utility.
const Command = "efibootmgr"

// Runner provides an abstraction for running the external utility.
// It exists so the engine can be tested against a fake without a real
// firmware environment.
type Runner interface {
	// Run executes name with args, returning captured stdout and stderr.
	// A non-zero exit is reported through err.
	Run(ctx context.Context, name string, args []string) (stdout, stderr string, err error)
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command and captures both output streams.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
