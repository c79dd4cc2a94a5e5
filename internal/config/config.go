package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config describes one installation run: where to install, where the
// repositories come from, and which optional pieces to include. Front ends
// mutate their own copy before the run starts; the orchestrator treats the
// copy it receives as immutable.
type Config struct {
	InstallRoot string        `toml:"install_root"`
	InstallCore bool          `toml:"install_core"`
	Sources     SourcesConfig `toml:"sources"`
	Checks      ChecksConfig  `toml:"checks"`
}

type SourcesConfig struct {
	Demo Source `toml:"demo"`
	Core Source `toml:"core"`
}

// Source names the two remote locations for one component: the git endpoint
// tried first, and the zip snapshot used when git is unavailable or fails.
type Source struct {
	GitURL     string `toml:"git_url"`
	ArchiveURL string `toml:"archive_url"`
}

type ChecksConfig struct {
	MinDiskGB int `toml:"min_disk_gb"`
}

func Defaults() *Config {
	return &Config{
		InstallRoot: DefaultInstallRoot(),
		Sources: SourcesConfig{
			Demo: Source{
				GitURL:     "https://github.com/AnarQorp/anarqq-ecosystem-demo.git",
				ArchiveURL: "https://github.com/AnarQorp/anarqq-ecosystem-demo/archive/refs/heads/main.zip",
			},
			Core: Source{
				GitURL:     "https://github.com/AnarQorp/anarqq-ecosystem-core.git",
				ArchiveURL: "https://github.com/AnarQorp/anarqq-ecosystem-core/archive/refs/heads/main.zip",
			},
		},
		Checks: ChecksConfig{MinDiskGB: 5},
	}
}

func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Load returns the config from ConfigFilePath, or Defaults when no config
// file exists.
func Load() (*Config, error) {
	cfg, err := LoadFromFile(ConfigFilePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// DemoDir is the directory the demo repository is acquired into.
func (c *Config) DemoDir() string {
	return filepath.Join(c.InstallRoot, "demo")
}

// CoreDir is the directory the core repository is acquired into when
// InstallCore is set.
func (c *Config) CoreDir() string {
	return filepath.Join(c.InstallRoot, "core")
}

// LogFile is the append-only run log inside the install root.
func (c *Config) LogFile() string {
	return filepath.Join(c.InstallRoot, "install.log")
}

// MinDiskBytes converts the configured minimum free space to bytes.
func (c *Config) MinDiskBytes() uint64 {
	return uint64(c.Checks.MinDiskGB) * 1024 * 1024 * 1024
}
