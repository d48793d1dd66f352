package engine

import "errors"

var (
	// ErrNoConfig indicates Sync was called without a desired configuration.
	ErrNoConfig = errors.New("no configuration provided")

	// ErrMissingBootNum indicates a desired entry has no boot number in the
	// observed state when the reorder is built, i.e. its create or update
	// did not register with the firmware.
	ErrMissingBootNum = errors.New("boot entry has no assigned boot number")
)
