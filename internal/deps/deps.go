// Package deps drives npm inside an acquired repository.
package deps

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AnarQorp/anarqq-installer/internal/exec"
)

// Installer installs a component's npm dependencies and attempts a build.
type Installer struct {
	runner exec.Runner
	logger *slog.Logger
}

func New(runner exec.Runner, logger *slog.Logger) *Installer {
	return &Installer{runner: runner, logger: logger}
}

// Install runs "npm install" in dir; a failure there is fatal. It then
// attempts "npm run build" — a build failure is only a warning, because the
// demo can still be started in dev mode from unbuilt sources.
func (i *Installer) Install(ctx context.Context, dir, name string) error {
	i.logger.Info(fmt.Sprintf("Installing %s dependencies...", name))

	if _, err := i.runner.RunIn(ctx, dir, "npm", "install"); err != nil {
		i.logger.Error(fmt.Sprintf("Failed to install %s dependencies: %v", name, err))
		return fmt.Errorf("installing %s dependencies: %w", name, err)
	}
	i.logger.Info(fmt.Sprintf("%s dependencies installed", name))

	if _, err := i.runner.RunIn(ctx, dir, "npm", "run", "build"); err != nil {
		i.logger.Warn(fmt.Sprintf("%s build failed (not critical)", name))
		return nil
	}
	i.logger.Info(fmt.Sprintf("%s built successfully", name))
	return nil
}
