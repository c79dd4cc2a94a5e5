package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Sources.Demo.GitURL == "" || cfg.Sources.Demo.ArchiveURL == "" {
		t.Error("demo source URLs should have defaults")
	}
	if cfg.Sources.Core.GitURL == "" || cfg.Sources.Core.ArchiveURL == "" {
		t.Error("core source URLs should have defaults")
	}
	if cfg.Checks.MinDiskGB != 5 {
		t.Errorf("MinDiskGB = %d, want 5", cfg.Checks.MinDiskGB)
	}
	if cfg.InstallCore {
		t.Error("core install should default to off")
	}
	if !strings.HasSuffix(cfg.InstallRoot, "anarqq-ecosystem") {
		t.Errorf("InstallRoot = %q, want anarqq-ecosystem suffix", cfg.InstallRoot)
	}
}

func TestLoadFromFile_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "installer.toml")

	content := `
install_root = "/opt/anarqq"
install_core = true

[sources.demo]
git_url = "https://example.com/demo.git"

[checks]
min_disk_gb = 1
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.InstallRoot != "/opt/anarqq" {
		t.Errorf("InstallRoot = %q", cfg.InstallRoot)
	}
	if !cfg.InstallCore {
		t.Error("InstallCore should be true")
	}
	if cfg.Sources.Demo.GitURL != "https://example.com/demo.git" {
		t.Errorf("demo git URL = %q", cfg.Sources.Demo.GitURL)
	}
	// Unset fields keep their defaults.
	if cfg.Sources.Demo.ArchiveURL == "" {
		t.Error("demo archive URL should keep its default")
	}
	if cfg.Checks.MinDiskGB != 1 {
		t.Errorf("MinDiskGB = %d, want 1", cfg.Checks.MinDiskGB)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDerivedPaths(t *testing.T) {
	cfg := Defaults()
	cfg.InstallRoot = filepath.Join("some", "root")

	if got := cfg.DemoDir(); got != filepath.Join("some", "root", "demo") {
		t.Errorf("DemoDir = %q", got)
	}
	if got := cfg.CoreDir(); got != filepath.Join("some", "root", "core") {
		t.Errorf("CoreDir = %q", got)
	}
	if got := cfg.LogFile(); got != filepath.Join("some", "root", "install.log") {
		t.Errorf("LogFile = %q", got)
	}
}

func TestMinDiskBytes(t *testing.T) {
	cfg := Defaults()
	cfg.Checks.MinDiskGB = 2

	want := uint64(2) * 1024 * 1024 * 1024
	if got := cfg.MinDiskBytes(); got != want {
		t.Errorf("MinDiskBytes = %d, want %d", got, want)
	}
}
