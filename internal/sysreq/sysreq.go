// Package sysreq probes the machine for the external tools and resources the
// installation needs. All checks are read-only; the result is a precondition
// gate consulted once at the start of a run.
package sysreq

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/AnarQorp/anarqq-installer/internal/exec"
)

// probeTimeout bounds each version probe so a hung binary cannot stall the
// whole requirements check.
const probeTimeout = 10 * time.Second

// Class says how a missing tool affects the run.
type Class int

const (
	// Required tools block the run when absent.
	Required Class = iota
	// Degrades tools downgrade a strategy when absent (git falls back to
	// the zip archive) but never fail the check.
	Degrades
	// Informational tools are only reported.
	Informational
)

// Tool is one row of the static requirements table.
type Tool struct {
	Name  string
	Label string
	Class Class
	// Absent is logged when the tool is missing.
	Absent string
}

// Table is the fixed set of probed tools, in report order.
var Table = []Tool{
	{Name: "node", Label: "Node.js", Class: Required, Absent: "Node.js not found"},
	{Name: "npm", Label: "npm", Class: Required, Absent: "npm not found"},
	{Name: "git", Label: "Git", Class: Degrades, Absent: "Git not found (will use ZIP download)"},
	{Name: "docker", Label: "Docker", Class: Informational, Absent: "Docker not found (optional)"},
}

// ToolResult records one probe outcome.
type ToolResult struct {
	Name      string
	Available bool
	Version   string
	Class     Class
}

// Result aggregates all probe outcomes into a pass/fail verdict.
type Result struct {
	Tools     []ToolResult
	FreeBytes uint64
	Errors    int
}

// OK reports whether the run may proceed.
func (r Result) OK() bool { return r.Errors == 0 }

// Checker runs the requirements table against the host.
type Checker struct {
	runner   exec.Runner
	logger   *slog.Logger
	minDisk  uint64
	diskFree func(path string) (uint64, error)
}

func New(runner exec.Runner, logger *slog.Logger, minDisk uint64) *Checker {
	return &Checker{
		runner:   runner,
		logger:   logger,
		minDisk:  minDisk,
		diskFree: freeSpace,
	}
}

// SetDiskProbe replaces the free-space probe. Used in tests.
func (c *Checker) SetDiskProbe(fn func(path string) (uint64, error)) {
	c.diskFree = fn
}

// Check probes every tool in the table and the free disk space at the
// volume holding the user's home directory.
func (c *Checker) Check(ctx context.Context) Result {
	c.logger.Info("Checking system requirements...")

	var result Result
	for _, tool := range Table {
		tr := c.probe(ctx, tool)
		result.Tools = append(result.Tools, tr)

		if tr.Available {
			c.logger.Info(fmt.Sprintf("%s found: %s", tool.Label, tr.Version))
			continue
		}

		switch tool.Class {
		case Required:
			c.logger.Error(tool.Absent)
			result.Errors++
		case Degrades:
			c.logger.Warn(tool.Absent)
		default:
			c.logger.Info(tool.Absent)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	free, err := c.diskFree(home)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("Could not check disk space: %v", err))
	} else {
		result.FreeBytes = free
		if free >= c.minDisk {
			c.logger.Info(fmt.Sprintf("Disk space: %.1fGB available", gb(free)))
		} else {
			c.logger.Error(fmt.Sprintf("Insufficient disk space: %.1fGB (required: %.1fGB)", gb(free), gb(c.minDisk)))
			result.Errors++
		}
	}

	return result
}

func (c *Checker) probe(ctx context.Context, tool Tool) ToolResult {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	result, err := c.runner.Run(probeCtx, tool.Name, "--version")
	if err != nil {
		return ToolResult{Name: tool.Name, Class: tool.Class}
	}

	return ToolResult{
		Name:      tool.Name,
		Available: true,
		Version:   firstLine(result.Stdout),
		Class:     tool.Class,
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func freeSpace(path string) (uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, err
	}
	return usage.Free, nil
}

func gb(b uint64) float64 {
	return float64(b) / (1024 * 1024 * 1024)
}
