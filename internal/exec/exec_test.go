package exec

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestRun_SimpleCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses unix commands")
	}

	runner := &DefaultRunner{}
	result, err := runner.Run(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", result.ExitCode)
	}
	if result.Stdout != "hello\n" {
		t.Errorf("stdout = %q, want %q", result.Stdout, "hello\n")
	}
}

func TestRun_FailingCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses unix commands")
	}

	runner := &DefaultRunner{}
	_, err := runner.Run(context.Background(), "false")
	if err == nil {
		t.Error("expected error for failing command")
	}
}

func TestRun_CommandNotFound(t *testing.T) {
	runner := &DefaultRunner{}
	_, err := runner.Run(context.Background(), "nonexistent_command_12345")
	if err == nil {
		t.Error("expected error for missing command")
	}
}

func TestRunIn_SetsWorkingDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses unix commands")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	runner := &DefaultRunner{}
	result, err := runner.RunIn(context.Background(), dir, "ls")
	if err != nil {
		t.Fatalf("RunIn: %v", err)
	}
	if !strings.Contains(result.Stdout, "marker.txt") {
		t.Errorf("stdout = %q, want marker.txt listed", result.Stdout)
	}
}

func TestCommandExists(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses unix commands")
	}

	if !CommandExists("echo") {
		t.Error("echo should exist")
	}
	if CommandExists("nonexistent_command_12345") {
		t.Error("nonexistent command should not exist")
	}
}

func TestMockRunner(t *testing.T) {
	mock := &MockRunner{
		Results: map[string]Result{
			"git --version": {Stdout: "git version 2.43.0\n", ExitCode: 0},
		},
	}

	result, err := mock.Run(context.Background(), "git", "--version")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Stdout != "git version 2.43.0\n" {
		t.Errorf("stdout = %q", result.Stdout)
	}
}

func TestMockRunner_RunInIgnoresDir(t *testing.T) {
	mock := &MockRunner{
		Results: map[string]Result{
			"npm install": {ExitCode: 0},
		},
	}

	if _, err := mock.RunIn(context.Background(), "/some/dir", "npm", "install"); err != nil {
		t.Fatalf("RunIn: %v", err)
	}
	if len(mock.Calls) != 1 || mock.Calls[0] != "npm install" {
		t.Errorf("calls = %v", mock.Calls)
	}
}
