package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/bootsync/internal/planner"
	"github.com/danieljhkim/bootsync/internal/state"
)

// Sync reconciles live boot-entry state onto the desired configuration.
//
// Operations run strictly one at a time: each efibootmgr invocation both
// depends on and changes the firmware's boot-entry table, so the observed
// state is replaced with the utility's output after every mutating call.
// The first failure aborts the run (see the package comment on the
// non-transactional limitation).
func (e *Engine) Sync(ctx context.Context, req *SyncRequest) (*SyncResult, error) {
	if req.Config == nil {
		return nil, ErrNoConfig
	}

	observed, err := e.Observe(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to observe boot state: %w", err)
	}

	plan := planner.Build(req.Config.Labels(), observed, req.FullDelete)
	result := &SyncResult{
		Plan:  plan,
		State: observed,
	}
	if req.DryRun {
		return result, nil
	}

	for _, op := range plan.Operations {
		args, applied, skip, err := e.prepare(op, req, observed)
		if err != nil {
			return result, err
		}
		if skip {
			continue
		}

		e.log.Debug().Str("op", applied.Type).Str("label", applied.Label).Msg("applying operation")
		observed, err = e.exec.Invoke(ctx, args)
		if err != nil {
			desc := applied.Type
			if applied.Label != "" {
				desc += " " + applied.Label
			}
			return result, fmt.Errorf("%s: %w", desc, err)
		}
		result.Applied = append(result.Applied, applied)
		result.State = observed
	}

	e.log.Info().Int("operations", len(result.Applied)).Msg("boot entries converged")
	return result, nil
}

// prepare builds the argument vector for one planned operation against the
// current observed state. Planned ids may be stale by execution time, so the
// live id is always re-read; create-vs-update is likewise re-decided here.
func (e *Engine) prepare(op planner.Operation, req *SyncRequest, observed *state.State) (args []string, applied planner.Operation, skip bool, err error) {
	switch op.Type {
	case planner.OpDeactivate, planner.OpDelete:
		id, ok := observed.ID(op.Label)
		if !ok {
			// Entry vanished between observation and execution.
			return nil, op, true, nil
		}
		applied = planner.Operation{Type: op.Type, Label: op.Label, ID: id}
		return removalArgs(op.Type, id), applied, false, nil

	case planner.OpCreate, planner.OpUpdate:
		entry, ok := req.Config.Entry(op.Label)
		if !ok {
			return nil, op, false, fmt.Errorf("planned entry %q is not in the configuration", op.Label)
		}
		args, applied = upsertArgs(entry, observed)
		return args, applied, false, nil

	case planner.OpReorder:
		args, err = reorderArgs(op.Order, observed)
		if err != nil {
			return nil, op, false, err
		}
		return args, op, false, nil

	default:
		return nil, op, false, fmt.Errorf("unknown operation type: %s", op.Type)
	}
}
