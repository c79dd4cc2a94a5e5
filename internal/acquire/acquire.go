// Package acquire obtains a remote repository's tree into a local
// destination, preferring git and falling back to a zip snapshot.
package acquire

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AnarQorp/anarqq-installer/internal/config"
	"github.com/AnarQorp/anarqq-installer/internal/exec"
)

// Acquirer fetches repositories. Git operations go through the command
// runner; the archive fallback downloads over HTTP and extracts locally.
type Acquirer struct {
	runner exec.Runner
	logger *slog.Logger
	client *http.Client
}

func New(runner exec.Runner, logger *slog.Logger) *Acquirer {
	return &Acquirer{
		runner: runner,
		logger: logger,
		client: http.DefaultClient,
	}
}

// SetHTTPClient replaces the download client. Used in tests.
func (a *Acquirer) SetHTTPClient(c *http.Client) { a.client = c }

// Acquire populates dest with the repository named by src. With a working
// git client it clones, or pulls when dest already holds a working copy. Any
// git failure is downgraded to a warning and the zip fallback runs instead;
// a fallback failure is fatal. Re-running against an existing dest is safe.
func (a *Acquirer) Acquire(ctx context.Context, src config.Source, dest, name string) error {
	if a.gitAvailable(ctx) {
		err := a.gitSync(ctx, src.GitURL, dest, name)
		if err == nil {
			return nil
		}
		a.logger.Warn(fmt.Sprintf("Git acquisition of %s failed: %v", name, err))
	}

	a.logger.Info(fmt.Sprintf("Downloading %s as ZIP...", name))
	if err := a.archiveFallback(ctx, src.ArchiveURL, dest, name); err != nil {
		return fmt.Errorf("acquiring %s from archive: %w", name, err)
	}
	a.logger.Info(fmt.Sprintf("Downloaded and extracted %s", name))
	return nil
}

// gitProbeTimeout bounds the availability probe so a hung git binary cannot
// stall the acquisition.
const gitProbeTimeout = 10 * time.Second

func (a *Acquirer) gitAvailable(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, gitProbeTimeout)
	defer cancel()
	_, err := a.runner.Run(probeCtx, "git", "--version")
	return err == nil
}

func (a *Acquirer) gitSync(ctx context.Context, url, dest, name string) error {
	if info, err := os.Stat(filepath.Join(dest, ".git")); err == nil && info.IsDir() {
		a.logger.Info(fmt.Sprintf("Updating %s repository...", name))
		if _, err := a.runner.RunIn(ctx, dest, "git", "pull", "origin", "main"); err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("Updated %s repository", name))
		return nil
	}

	a.logger.Info(fmt.Sprintf("Cloning %s repository...", name))
	if _, err := a.runner.Run(ctx, "git", "clone", url, dest); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("Cloned %s repository", name))
	return nil
}

// archiveFallback downloads and extracts the zip snapshot, then swaps the
// extracted tree into dest. All temporary state lives in one scratch
// directory beside dest (same volume, so the final rename does not copy)
// and is removed on every exit path.
func (a *Acquirer) archiveFallback(ctx context.Context, url, dest, name string) error {
	parent := filepath.Dir(dest)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return err
	}

	scratch, err := os.MkdirTemp(parent, ".download-")
	if err != nil {
		return fmt.Errorf("creating scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	zipPath := filepath.Join(scratch, name+".zip")
	if err := a.download(ctx, url, zipPath); err != nil {
		return err
	}

	extractDir := filepath.Join(scratch, "extracted")
	if err := extractZip(zipPath, extractDir); err != nil {
		return fmt.Errorf("extracting archive: %w", err)
	}

	top, err := singleTopLevelDir(extractDir)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("removing previous %s: %w", dest, err)
	}
	if err := os.Rename(top, dest); err != nil {
		return fmt.Errorf("moving extracted tree into place: %w", err)
	}
	return nil
}

func (a *Acquirer) download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s: unexpected status %s", url, resp.Status)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}

func extractZip(zipPath, destDir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	for _, f := range r.File {
		target := filepath.Join(destDir, f.Name)
		// Reject entries that would escape the extraction directory.
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry %q escapes extraction directory", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, f.Mode()|0700); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		if err := writeZipEntry(f, target); err != nil {
			return err
		}
	}
	return nil
}

func writeZipEntry(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, f.Mode().Perm()|0600)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}

// singleTopLevelDir returns the one directory produced by extraction.
// Anything else means the archive does not look like a repository snapshot.
func singleTopLevelDir(extractDir string) (string, error) {
	entries, err := os.ReadDir(extractDir)
	if err != nil {
		return "", err
	}
	if len(entries) != 1 {
		return "", fmt.Errorf("archive produced %d top-level entries, want exactly 1", len(entries))
	}
	if !entries[0].IsDir() {
		return "", fmt.Errorf("archive top-level entry %q is not a directory", entries[0].Name())
	}
	return filepath.Join(extractDir, entries[0].Name()), nil
}
