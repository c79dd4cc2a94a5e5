package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnarQorp/anarqq-installer/internal/acquire"
	"github.com/AnarQorp/anarqq-installer/internal/config"
	"github.com/AnarQorp/anarqq-installer/internal/deps"
	"github.com/AnarQorp/anarqq-installer/internal/envfile"
	"github.com/AnarQorp/anarqq-installer/internal/exec"
	"github.com/AnarQorp/anarqq-installer/internal/installer"
	"github.com/AnarQorp/anarqq-installer/internal/launcher"
	"github.com/AnarQorp/anarqq-installer/internal/logging"
	"github.com/AnarQorp/anarqq-installer/internal/state"
	"github.com/AnarQorp/anarqq-installer/internal/sysreq"
	"github.com/AnarQorp/anarqq-installer/internal/tui/wizard"
)

var errInstallFailed = errors.New("installation failed")
var errCancelled = errors.New("installation cancelled")

func runInstall(version string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Pre-fill the install directory from the last successful run.
	st := state.Load(config.StateFilePath())
	if st.InstallRoot != "" {
		cfg.InstallRoot = st.InstallRoot
		cfg.InstallCore = st.CoreInstalled
	}

	if flagConsole {
		return consoleInstall(cfg, st, version)
	}

	err = wizardInstall(cfg, st, version)
	if errors.Is(err, errUIUnavailable) {
		fmt.Println("Interactive UI unavailable, falling back to console mode...")
		fmt.Println()
		return consoleInstall(cfg, st, version)
	}
	return err
}

var errUIUnavailable = errors.New("interactive UI unavailable")

func wizardInstall(cfg *config.Config, st *state.State, version string) error {
	model := wizard.New(cfg, runInstallation)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return errUIUnavailable
	}

	m, ok := final.(wizard.WizardModel)
	if !ok {
		return errInstallFailed
	}
	if m.Cancelled() {
		return errCancelled
	}

	outcome, ran := m.Outcome()
	if !ran {
		// Quit from the form without starting a run.
		return errCancelled
	}
	if !outcome.Success {
		return errInstallFailed
	}

	saveInstallState(st, m.Config(), version)
	return nil
}

// runInstallation builds the real component stack and executes one run.
// Both front ends share this wiring.
func runInstallation(ctx context.Context, cfg *config.Config, progress installer.ProgressSink, log func(line string)) installer.Outcome {
	logger := logging.Setup(cfg.LogFile(), logging.LineSink(log))
	runner := &exec.DefaultRunner{}

	inst := installer.New(cfg, logger, progress, installer.Dependencies{
		Checker:        sysreq.New(runner, logger, cfg.MinDiskBytes()),
		Acquirer:       acquire.New(runner, logger),
		Deps:           deps.New(runner, logger),
		ConfigureEnv:   envfile.Materialize,
		WriteLaunchers: launcher.Write,
	})

	return inst.Run(ctx)
}

func saveInstallState(st *state.State, cfg *config.Config, version string) {
	st.InstallRoot = cfg.InstallRoot
	st.CoreInstalled = cfg.InstallCore
	st.LastInstall = time.Now()
	st.InstallerVersion = version

	// State is a convenience, not part of the install; losing it only
	// costs a pre-filled prompt next time.
	state.Save(config.StateFilePath(), st)
}
