//go:build !windows

// Package process terminates renderer child processes.
package process

import "syscall"

// KillProcessGroup kills a browser and all its helper processes by sending
// SIGKILL to the process group (negative PID). Non-positive PIDs are ignored.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Best-effort cleanup; error ignored as launcher.Kill() provides fallback
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
