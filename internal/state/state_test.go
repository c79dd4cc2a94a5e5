package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	s := &State{
		InstallRoot:      "/home/user/anarqq-ecosystem",
		CoreInstalled:    true,
		LastInstall:      time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		InstallerVersion: "1.2.0",
	}
	if err := Save(path, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := Load(path)
	if loaded.InstallRoot != s.InstallRoot {
		t.Errorf("InstallRoot = %q", loaded.InstallRoot)
	}
	if !loaded.CoreInstalled {
		t.Error("CoreInstalled should survive the round trip")
	}
	if !loaded.LastInstall.Equal(s.LastInstall) {
		t.Errorf("LastInstall = %v", loaded.LastInstall)
	}
	if loaded.InstallerVersion != "1.2.0" {
		t.Errorf("InstallerVersion = %q", loaded.InstallerVersion)
	}
}

func TestLoad_MissingFileIsZeroState(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope.json"))
	if s.InstallRoot != "" || s.CoreInstalled {
		t.Errorf("missing file should load as zero state, got %+v", s)
	}
}

func TestLoad_CorruptFileIsZeroState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s := Load(path)
	if s.InstallRoot != "" {
		t.Errorf("corrupt file should load as zero state, got %+v", s)
	}
}
