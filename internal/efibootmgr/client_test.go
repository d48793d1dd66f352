package efibootmgr

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

// fakeRunner records invocations and replays canned results.
type fakeRunner struct {
	name   string
	args   []string
	stdout string
	stderr string
	err    error
}

func (r *fakeRunner) Run(_ context.Context, name string, args []string) (string, string, error) {
	r.name = name
	r.args = args
	return r.stdout, r.stderr, r.err
}

func TestInvokeScopesDiskAndPartition(t *testing.T) {
	runner := &fakeRunner{stdout: "Boot0001* Linux\n"}
	client := NewClient(runner, "/dev/sda", "1", zerolog.Nop())

	st, err := client.Invoke(context.Background(), []string{Command, "--label", "Linux"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if runner.name != Command {
		t.Errorf("ran %q, want %q", runner.name, Command)
	}

	got := runner.args
	want := []string{"--label", "Linux", "--disk", "/dev/sda", "--part", "1"}
	if len(got) != len(want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("args = %v, want %v", got, want)
		}
	}

	if !st.Has("Linux") {
		t.Error("expected parsed state to contain Linux")
	}
}

func TestInvokeWrapsNonZeroExit(t *testing.T) {
	procErr := errors.New("exit status 2")
	runner := &fakeRunner{stderr: "Could not set variable: No space left on device\n", err: procErr}
	client := NewClient(runner, "/dev/sda", "1", zerolog.Nop())

	_, err := client.Invoke(context.Background(), []string{Command})

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected *ExecError, got %T: %v", err, err)
	}
	if execErr.Error() != "Could not set variable: No space left on device" {
		t.Errorf("message = %q, want utility diagnostic with trailing newline stripped", execErr.Error())
	}
	if !errors.Is(err, procErr) {
		t.Error("expected ExecError to unwrap to the process error")
	}
}

func TestInvokeErrorWithoutStderr(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exec: not found")}
	client := NewClient(runner, "/dev/sda", "1", zerolog.Nop())

	_, err := client.Invoke(context.Background(), []string{Command})
	if err == nil || err.Error() == "" {
		t.Fatal("expected a non-empty error message")
	}
}

func TestInvokeRejectsForeignCommand(t *testing.T) {
	client := NewClient(&fakeRunner{}, "/dev/sda", "1", zerolog.Nop())

	defer func() {
		if recover() == nil {
			t.Error("expected panic for argument vector not starting with efibootmgr")
		}
	}()
	_, _ = client.Invoke(context.Background(), []string{"rm", "-rf", "/"})
}
