package engine

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/bootsync/internal/config"
	"github.com/danieljhkim/bootsync/internal/efibootmgr"
	"github.com/danieljhkim/bootsync/internal/params"
	"github.com/danieljhkim/bootsync/internal/planner"
	"github.com/danieljhkim/bootsync/internal/state"
)

// upsertArgs builds the argument vector that makes the firmware entry for
// entry.Label match the configuration. An entry present in the observed
// state is updated in place through its boot number and marked active; an
// unknown label becomes a create, with the firmware assigning the number.
func upsertArgs(entry config.Entry, observed *state.State) ([]string, planner.Operation) {
	args := []string{
		efibootmgr.Command,
		"--label", entry.Label,
		"--loader", entry.Loader,
		"--unicode", params.Serialize(entry.Params),
	}
	if id, ok := observed.ID(entry.Label); ok {
		args = append(args, "--bootnum", id, "--active")
		return args, planner.Operation{Type: planner.OpUpdate, Label: entry.Label, ID: id}
	}
	args = append(args, "--create")
	return args, planner.Operation{Type: planner.OpCreate, Label: entry.Label}
}

// removalArgs builds the argument vector removing or deactivating the entry
// with the given boot number.
func removalArgs(opType, id string) []string {
	if opType == planner.OpDelete {
		return []string{efibootmgr.Command, "--bootnum", id, "--delete-bootnum"}
	}
	return []string{efibootmgr.Command, "--bootnum", id, "--inactive"}
}

// reorderArgs builds the argument vector setting the boot order to the
// desired label sequence, using the boot numbers observed after the last
// upsert. A desired label with no observed number means an earlier create
// or update never registered, which is an error rather than a silent skip.
func reorderArgs(desired []string, observed *state.State) ([]string, error) {
	ids := make([]string, 0, len(desired))
	for _, label := range desired {
		id, ok := observed.ID(label)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingBootNum, label)
		}
		ids = append(ids, id)
	}
	return []string{efibootmgr.Command, "--bootorder", strings.Join(ids, ",")}, nil
}
