package deps

import (
	"context"
	"log/slog"
	"testing"

	"github.com/AnarQorp/anarqq-installer/internal/exec"
	"github.com/AnarQorp/anarqq-installer/internal/logging"
)

func nopLogger() *slog.Logger {
	return slog.New(logging.NopHandler{})
}

func TestInstall_RunsInstallThenBuild(t *testing.T) {
	runner := &exec.MockRunner{
		Results: map[string]exec.Result{
			"npm install":   {},
			"npm run build": {},
		},
	}

	i := New(runner, nopLogger())
	if err := i.Install(context.Background(), "/tmp/demo", "Demo"); err != nil {
		t.Fatalf("Install: %v", err)
	}

	want := []string{"npm install", "npm run build"}
	if len(runner.Calls) != 2 || runner.Calls[0] != want[0] || runner.Calls[1] != want[1] {
		t.Errorf("calls = %v, want %v", runner.Calls, want)
	}
}

func TestInstall_InstallFailureIsFatal(t *testing.T) {
	runner := &exec.MockRunner{
		Results: map[string]exec.Result{
			"npm install": {ExitCode: 1},
		},
	}

	i := New(runner, nopLogger())
	if err := i.Install(context.Background(), "/tmp/demo", "Demo"); err == nil {
		t.Fatal("expected error when npm install fails")
	}

	for _, call := range runner.Calls {
		if call == "npm run build" {
			t.Error("build must not run after a failed install")
		}
	}
}

func TestInstall_BuildFailureIsNotFatal(t *testing.T) {
	runner := &exec.MockRunner{
		Results: map[string]exec.Result{
			"npm install":   {},
			"npm run build": {ExitCode: 1},
		},
	}

	i := New(runner, nopLogger())
	if err := i.Install(context.Background(), "/tmp/demo", "Demo"); err != nil {
		t.Errorf("build failure should not abort the run: %v", err)
	}
}
