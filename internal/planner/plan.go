// Package planner computes the operation sequence that converges observed
// boot-entry state onto the desired configuration.
package planner

import (
	"strings"

	"github.com/danieljhkim/bootsync/internal/state"
)

// Operation type constants
const (
	OpCreate     = "create"
	OpUpdate     = "update"
	OpDeactivate = "deactivate"
	OpDelete     = "delete"
	OpReorder    = "reorder"
)

// Operation represents a single efibootmgr mutation to execute.
type Operation struct {
	// Type is the operation type: one of the Op* constants.
	Type string

	// Label is the boot entry this operation targets (empty for reorder).
	Label string

	// ID is the boot number observed at planning time. Empty for create
	// (the firmware assigns one) and reorder. Execution re-reads the live
	// id before issuing the command; this one is for display.
	ID string

	// Order is the label sequence a reorder establishes (reorder only).
	Order []string
}

// Plan is the ordered operation sequence for one reconciliation run.
// Unmanaged entries are removed or deactivated first, then every desired
// entry is upserted, and a single reorder always comes last — boot numbers
// for created entries are only known after the upserts have run.
type Plan struct {
	Operations []Operation
}

// Build computes the plan for the given desired labels and observed state.
// fullDelete selects destructive removal of unmanaged entries instead of the
// default deactivation.
func Build(desired []string, observed *state.State, fullDelete bool) *Plan {
	plan := &Plan{}

	managed := make(map[string]bool, len(desired))
	for _, label := range desired {
		managed[label] = true
	}

	removal := OpDeactivate
	if fullDelete {
		removal = OpDelete
	}
	for _, label := range observed.Labels() {
		if managed[label] {
			continue
		}
		id, _ := observed.ID(label)
		plan.add(Operation{Type: removal, Label: label, ID: id})
	}

	for _, label := range desired {
		if id, ok := observed.ID(label); ok {
			plan.add(Operation{Type: OpUpdate, Label: label, ID: id})
		} else {
			plan.add(Operation{Type: OpCreate, Label: label})
		}
	}

	if len(desired) > 0 {
		plan.add(Operation{Type: OpReorder, Order: desired})
	}
	return plan
}

// Mutations returns the number of efibootmgr invocations the plan will issue.
func (p *Plan) Mutations() int {
	return len(p.Operations)
}

func (p *Plan) add(op Operation) {
	p.Operations = append(p.Operations, op)
}

// Describe renders an operation for human-readable plan output.
func Describe(op Operation) string {
	switch op.Type {
	case OpReorder:
		return "reorder: " + strings.Join(op.Order, ",")
	case OpCreate:
		return "create: " + op.Label
	default:
		return op.Type + ": " + op.Label + " (" + op.ID + ")"
	}
}
