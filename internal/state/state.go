// Package state remembers the last successful installation so front ends
// can pre-fill prompts on re-runs.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

type State struct {
	InstallRoot      string    `json:"install_root"`
	CoreInstalled    bool      `json:"core_installed"`
	LastInstall      time.Time `json:"last_install"`
	InstallerVersion string    `json:"installer_version"`
}

// Load reads the state file. A missing or unreadable file yields a zero
// state, never an error — the installer must work on a fresh machine.
func Load(path string) *State {
	data, err := os.ReadFile(path)
	if err != nil {
		return &State{}
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return &State{}
	}
	return &s
}

func Save(path string, s *State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
