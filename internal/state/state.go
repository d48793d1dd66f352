// Package state models the live boot-entry state reported by efibootmgr.
//
// A State is an ordered mapping from entry label to the firmware-assigned
// boot number (a 4-hex-digit id). Order matches the firmware's reported
// BootOrder when one is present, otherwise report order. State is always
// produced fresh from utility output; nothing is persisted across runs.
package state

import "github.com/danieljhkim/bootsync/internal/ordered"

// State is the observed boot-entry table: label -> boot number, ordered.
type State struct {
	entries *ordered.Map[string]
}

// New creates an empty State.
func New() *State {
	return &State{entries: ordered.New[string]()}
}

// Add records an entry. A label seen for the first time is appended; an
// existing label keeps its position and takes the new id.
func (s *State) Add(label, id string) {
	s.entries.Set(label, id)
}

// ID returns the boot number assigned to label.
func (s *State) ID(label string) (string, bool) {
	return s.entries.Get(label)
}

// Has reports whether an entry with the given label exists.
func (s *State) Has(label string) bool {
	return s.entries.Has(label)
}

// Labels returns the entry labels in boot order.
func (s *State) Labels() []string {
	return s.entries.Keys()
}

// Len returns the number of entries.
func (s *State) Len() int {
	return s.entries.Len()
}
