package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFollowsBootOrder(t *testing.T) {
	report := `BootOrder: 0001,0003,0002
Boot0001* Linux
Boot0002 Windows
Boot0003* Recovery
`
	st := Parse(report)

	want := []string{"Linux", "Recovery", "Windows"}
	if diff := cmp.Diff(want, st.Labels()); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	id, ok := st.ID("Recovery")
	if !ok || id != "0003" {
		t.Errorf("ID(Recovery) = %q, %v; want 0003, true", id, ok)
	}
}

func TestParseWithoutOrderLineKeepsReportOrder(t *testing.T) {
	report := `Boot0002 Windows
Boot0001* Linux
`
	st := Parse(report)

	want := []string{"Windows", "Linux"}
	if diff := cmp.Diff(want, st.Labels()); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEntryMissingFromOrderGoesLast(t *testing.T) {
	report := `BootOrder: 0002
Boot0001* Linux
Boot0002 Windows
Boot0003 Recovery
`
	st := Parse(report)

	want := []string{"Windows", "Linux", "Recovery"}
	if diff := cmp.Diff(want, st.Labels()); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSkipsMalformedLines(t *testing.T) {
	report := `BootCurrent: 0001
Timeout: 1 seconds
BootOrder: 0001
Boot0001* Linux
BootZZZZ* NotHex
Boot001 TooShort
some stray diagnostic text
`
	st := Parse(report)

	if st.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", st.Len())
	}
	if !st.Has("Linux") {
		t.Error("expected Linux entry to survive malformed neighbors")
	}
}

func TestParseOrderWithUnknownIDs(t *testing.T) {
	report := `BootOrder: 0009,0001
Boot0001* Linux
`
	st := Parse(report)

	want := []string{"Linux"}
	if diff := cmp.Diff(want, st.Labels()); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInactiveEntryKeepsCleanLabel(t *testing.T) {
	// Inactive entries carry a space in the marker column, putting two
	// spaces before the label. The label must come out without leading
	// whitespace or it stops matching the configured name.
	report := `Boot0001* Linux
Boot0002  Windows
`
	st := Parse(report)

	want := []string{"Linux", "Windows"}
	if diff := cmp.Diff(want, st.Labels()); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	id, ok := st.ID("Windows")
	if !ok || id != "0002" {
		t.Errorf("ID(Windows) = %q, %v; want 0002, true", id, ok)
	}
}

func TestParseNormalizesIDCase(t *testing.T) {
	report := `Boot00ab* Linux
`
	st := Parse(report)

	id, ok := st.ID("Linux")
	if !ok || id != "00AB" {
		t.Errorf("ID(Linux) = %q, %v; want 00AB, true", id, ok)
	}
}

func TestParseEmptyReport(t *testing.T) {
	st := Parse("")
	if st.Len() != 0 {
		t.Errorf("Len() = %d, want 0", st.Len())
	}
}
