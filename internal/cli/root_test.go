package cli

import "testing"

func TestRootCmd_PrintsNothingBeyondTheFlows(t *testing.T) {
	cmd := newRootCmd("test")

	// Both front ends report failures themselves; cobra adding its own
	// usage dump or "Error:" line would double-print every verdict.
	if !cmd.SilenceUsage {
		t.Error("usage must not be dumped on a failed run")
	}
	if !cmd.SilenceErrors {
		t.Error("errors must not be printed twice")
	}
}

func TestRootCmd_HasConsoleFlag(t *testing.T) {
	cmd := newRootCmd("test")
	if cmd.PersistentFlags().Lookup("console") == nil {
		t.Error("--console flag missing")
	}
}
