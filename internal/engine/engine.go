// Package engine implements boot-entry reconciliation.
//
// The engine diffs the desired configuration against the boot-entry state
// reported by efibootmgr and issues the operation sequence that converges
// the two: unmanaged entries are deactivated (or deleted), every desired
// entry is created or updated in place, and a single reorder runs last.
// Firmware state mutates on every issued command, so the engine re-reads
// the reported state after each one and never trusts a stale copy.
//
// Reconciliation is not transactional: a failed operation aborts the run
// immediately and whatever prefix already succeeded stays applied. Nothing
// is retried and nothing is rolled back.
package engine

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/bootsync/internal/efibootmgr"
	"github.com/danieljhkim/bootsync/internal/state"
)

// Invoker runs one efibootmgr operation and returns the resulting state.
// *efibootmgr.Client is the real implementation.
type Invoker interface {
	Invoke(ctx context.Context, args []string) (*state.State, error)
}

// Engine reconciles desired boot-entry configuration against live state.
type Engine struct {
	exec Invoker
	log  zerolog.Logger
}

// New creates an Engine issuing operations through exec.
func New(exec Invoker, log zerolog.Logger) *Engine {
	return &Engine{
		exec: exec,
		log:  log,
	}
}

// Observe reads the current boot-entry state without mutating anything.
func (e *Engine) Observe(ctx context.Context) (*state.State, error) {
	return e.exec.Invoke(ctx, []string{efibootmgr.Command})
}
