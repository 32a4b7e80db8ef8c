package process

// Notes:
// - Real kill behavior is covered by the browser renderer integration test,
//   which closes a live Chrome. Unit tests cannot safely target real PIDs.
// These are acceptable gaps: we test observable behavior, not syscall internals.

import "testing"

func TestKillProcessGroup_NonPositivePIDIgnored(t *testing.T) {
	t.Parallel()

	// PID 0 would target the current process group without the guard.
	KillProcessGroup(0)
	KillProcessGroup(-1)
}

func TestKillProcessGroup_InvalidPID(t *testing.T) {
	t.Parallel()

	KillProcessGroup(999999999)
}
