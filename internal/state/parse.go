package state

import (
	"regexp"
	"strings"
)

var (
	// Boot0001* Linux  (the asterisk marks an active entry; inactive
	// entries render a space in the marker column, so two spaces precede
	// the label)
	entryPattern = regexp.MustCompile(`^Boot([0-9a-fA-F]{4})\*?\s+(.+)$`)

	// BootOrder: 0001,0003,0002
	orderPattern = regexp.MustCompile(`^BootOrder: ([0-9a-fA-F]{4}(?:,[0-9a-fA-F]{4})*)$`)
)

// Parse interprets efibootmgr's textual report.
//
// Two line shapes are recognized: per-entry lines ("Boot0001* Linux") and an
// optional order line ("BootOrder: 0001,0003"). When an order line is
// present, entries are reordered to follow it; entries whose id does not
// appear in the order line keep their original relative position at the end.
// Anything else is skipped — efibootmgr's verbosity varies between versions,
// so unrecognized lines are not an error.
func Parse(report string) *State {
	entries := New()
	var order []string

	for _, line := range strings.Split(report, "\n") {
		if m := entryPattern.FindStringSubmatch(line); m != nil {
			entries.Add(m[2], strings.ToUpper(m[1]))
			continue
		}
		if m := orderPattern.FindStringSubmatch(line); m != nil {
			order = strings.Split(strings.ToUpper(m[1]), ",")
		}
	}

	if order == nil {
		return entries
	}
	return reorder(entries, order)
}

// reorder rebuilds entries so labels follow the given id order. Ids with no
// matching entry are ignored; entries absent from the order go last, keeping
// their report order.
func reorder(entries *State, order []string) *State {
	byID := make(map[string]string, entries.Len())
	for _, label := range entries.Labels() {
		id, _ := entries.ID(label)
		byID[id] = label
	}

	sorted := New()
	for _, id := range order {
		if label, ok := byID[id]; ok {
			sorted.Add(label, id)
		}
	}
	for _, label := range entries.Labels() {
		if !sorted.Has(label) {
			id, _ := entries.ID(label)
			sorted.Add(label, id)
		}
	}
	return sorted
}
