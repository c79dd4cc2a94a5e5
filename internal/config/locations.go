package config

import (
	"os"
	"path/filepath"
)

// DefaultInstallRoot is a fixed subdirectory of the user's home directory.
func DefaultInstallRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "anarqq-ecosystem")
	}
	return filepath.Join(home, "anarqq-ecosystem")
}

func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "anarqq-installer")
	}
	return filepath.Join(home, ".config", "anarqq-installer")
}

// ConfigFilePath prefers an installer.toml next to the binary so the
// installer can ship with pinned sources, falling back to the config dir.
func ConfigFilePath() string {
	exe, err := os.Executable()
	if err == nil {
		adjacent := filepath.Join(filepath.Dir(exe), "installer.toml")
		if _, err := os.Stat(adjacent); err == nil {
			return adjacent
		}
	}
	return filepath.Join(ConfigDir(), "installer.toml")
}

func StateFilePath() string {
	return filepath.Join(ConfigDir(), "state.json")
}
