package main

import (
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRun - Command dispatch
// ---------------------------------------------------------------------------

func TestRun(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "version command",
			args:       []string{"version"},
			wantCode:   ExitSuccess,
			wantStdout: "svg2png dev",
		},
		{
			name:       "version flag",
			args:       []string{"--version"},
			wantCode:   ExitSuccess,
			wantStdout: "svg2png dev",
		},
		{
			name:       "help command",
			args:       []string{"help"},
			wantCode:   ExitSuccess,
			wantStdout: "Usage: svg2png <command>",
		},
		{
			name:       "help flag",
			args:       []string{"-h"},
			wantCode:   ExitSuccess,
			wantStdout: "Commands:",
		},
		{
			name:       "help for convert",
			args:       []string{"help", "convert"},
			wantCode:   ExitSuccess,
			wantStdout: "--renderer <name>",
		},
		{
			name:       "help for init",
			args:       []string{"help", "init"},
			wantCode:   ExitSuccess,
			wantStdout: "svg2png init [path]",
		},
		{
			name:       "help for doctor",
			args:       []string{"help", "doctor"},
			wantCode:   ExitSuccess,
			wantStdout: "svg2png doctor [--json]",
		},
		{
			name:       "help for completion",
			args:       []string{"help", "completion"},
			wantCode:   ExitSuccess,
			wantStdout: "Supported shells:",
		},
		{
			name:       "help for unknown command",
			args:       []string{"help", "paint"},
			wantCode:   ExitUsage,
			wantStderr: "Unknown command: paint",
		},
		{
			name:       "unknown command",
			args:       []string{"icons"},
			wantCode:   ExitUsage,
			wantStderr: "svg2png convert icons",
		},
		{
			name:       "leading flag defaults to convert",
			args:       []string{"--quiet", missing},
			wantCode:   ExitIO,
			wantStderr: "asset directory not found",
		},
		{
			name:       "missing directory hint",
			args:       []string{"convert", missing},
			wantCode:   ExitIO,
			wantStderr: "hint:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			code := run(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("run(%v) = %d, want %d (stderr: %s)", tt.args, code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want containing %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want containing %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRun_DefaultDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	env, _, stderr := testEnv()
	if code := run(nil, env); code != ExitIO {
		t.Errorf("exit code = %d, want %d", code, ExitIO)
	}
	if !strings.Contains(stderr.String(), "assets/images") {
		t.Errorf("stderr = %q, want default directory named", stderr.String())
	}
}

func TestIsHelpFlag(t *testing.T) {
	t.Parallel()

	for arg, want := range map[string]bool{"-h": true, "--help": true, "help": false, "-v": false} {
		if got := isHelpFlag(arg); got != want {
			t.Errorf("isHelpFlag(%q) = %v, want %v", arg, got, want)
		}
	}
}
