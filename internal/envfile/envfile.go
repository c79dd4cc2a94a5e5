// Package envfile materializes a component's runtime .env from its template.
package envfile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	templateName = ".env.example"
	liveName     = ".env"
)

// Materialize copies dir/.env.example to dir/.env when the live file does
// not exist yet, preserving the template's mode and modification time. An
// existing .env is never touched — it may hold user configuration. A missing
// template is not an error.
func Materialize(dir string, logger *slog.Logger) error {
	template := filepath.Join(dir, templateName)
	live := filepath.Join(dir, liveName)

	info, err := os.Stat(template)
	if err != nil {
		return nil
	}
	if _, err := os.Stat(live); err == nil {
		logger.Info("Environment file already exists, keeping it")
		return nil
	}

	data, err := os.ReadFile(template)
	if err != nil {
		return fmt.Errorf("reading %s: %w", templateName, err)
	}
	if err := os.WriteFile(live, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", liveName, err)
	}
	os.Chtimes(live, info.ModTime(), info.ModTime())

	if vars, err := godotenv.Read(live); err == nil {
		logger.Info(fmt.Sprintf("Environment file created (%d settings)", len(vars)))
	} else {
		logger.Info("Environment file created")
	}
	return nil
}
