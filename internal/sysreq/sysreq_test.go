package sysreq

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/AnarQorp/anarqq-installer/internal/exec"
	"github.com/AnarQorp/anarqq-installer/internal/logging"
)

const gib = 1024 * 1024 * 1024

func nopLogger() *slog.Logger {
	return slog.New(logging.NopHandler{})
}

func allToolsPresent() *exec.MockRunner {
	return &exec.MockRunner{
		Results: map[string]exec.Result{
			"node --version":   {Stdout: "v18.19.0\n"},
			"npm --version":    {Stdout: "10.2.3\n"},
			"git --version":    {Stdout: "git version 2.43.0\n"},
			"docker --version": {Stdout: "Docker version 24.0.7\n"},
		},
	}
}

func newChecker(runner exec.Runner, free uint64) *Checker {
	c := New(runner, nopLogger(), 5*gib)
	c.SetDiskProbe(func(string) (uint64, error) { return free, nil })
	return c
}

func TestCheck_AllRequirementsMet(t *testing.T) {
	c := newChecker(allToolsPresent(), 20*gib)

	result := c.Check(context.Background())

	if !result.OK() {
		t.Fatalf("check failed with %d errors", result.Errors)
	}
	if len(result.Tools) != len(Table) {
		t.Errorf("probed %d tools, want %d", len(result.Tools), len(Table))
	}
	for _, tr := range result.Tools {
		if !tr.Available {
			t.Errorf("%s should be available", tr.Name)
		}
	}
}

func TestCheck_MissingRequiredToolFails(t *testing.T) {
	runner := allToolsPresent()
	delete(runner.Results, "node --version")

	result := newChecker(runner, 20*gib).Check(context.Background())

	if result.OK() {
		t.Error("check should fail without node")
	}
	if result.Errors != 1 {
		t.Errorf("errors = %d, want 1", result.Errors)
	}
}

func TestCheck_MissingOptionalToolsPass(t *testing.T) {
	runner := allToolsPresent()
	delete(runner.Results, "git --version")
	delete(runner.Results, "docker --version")

	result := newChecker(runner, 20*gib).Check(context.Background())

	if !result.OK() {
		t.Errorf("optional tools must not fail the check, errors = %d", result.Errors)
	}
}

func TestCheck_InsufficientDiskFails(t *testing.T) {
	result := newChecker(allToolsPresent(), 1*gib).Check(context.Background())

	if result.OK() {
		t.Error("check should fail with 1GB free")
	}
	if result.Errors != 1 {
		t.Errorf("errors = %d, want 1", result.Errors)
	}
}

func TestCheck_DiskProbeFailureIsNotFatal(t *testing.T) {
	c := New(allToolsPresent(), nopLogger(), 5*gib)
	c.SetDiskProbe(func(string) (uint64, error) {
		return 0, errors.New("statfs failed")
	})

	result := c.Check(context.Background())

	if !result.OK() {
		t.Error("an unreadable disk probe should only warn")
	}
}

func TestCheck_VersionIsFirstLine(t *testing.T) {
	runner := allToolsPresent()
	runner.Results["docker --version"] = exec.Result{
		Stdout: "Docker version 24.0.7, build afdd53b\nextra noise\n",
	}

	result := newChecker(runner, 20*gib).Check(context.Background())

	for _, tr := range result.Tools {
		if tr.Name == "docker" && tr.Version != "Docker version 24.0.7, build afdd53b" {
			t.Errorf("docker version = %q", tr.Version)
		}
	}
}

func TestTable_RequiredClasses(t *testing.T) {
	classes := map[string]Class{}
	for _, tool := range Table {
		classes[tool.Name] = tool.Class
	}

	if classes["node"] != Required || classes["npm"] != Required {
		t.Error("node and npm must be required")
	}
	if classes["git"] != Degrades {
		t.Error("git must only degrade the acquisition strategy")
	}
	if classes["docker"] != Informational {
		t.Error("docker must be informational")
	}
}
