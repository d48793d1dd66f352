package engine

import (
	"github.com/danieljhkim/bootsync/internal/config"
	"github.com/danieljhkim/bootsync/internal/planner"
	"github.com/danieljhkim/bootsync/internal/state"
)

// SyncRequest represents a request to reconcile boot entries.
type SyncRequest struct {
	// Config is the desired configuration.
	Config *config.Config

	// FullDelete removes unmanaged entries instead of deactivating them.
	FullDelete bool

	// DryRun computes the plan without issuing any mutating operation.
	DryRun bool
}

// SyncResult represents the outcome of a reconciliation run.
type SyncResult struct {
	// Plan is the operation sequence computed from the initial observation.
	Plan *planner.Plan

	// Applied is the list of operations actually issued, with create/update
	// resolved against the state observed at issue time (empty if DryRun).
	Applied []planner.Operation

	// State is the most recently observed boot-entry state: the initial
	// observation for a dry run, the post-reorder state after a full run.
	State *state.State
}
