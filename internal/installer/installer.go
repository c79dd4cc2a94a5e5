// Package installer sequences one installation run: requirements gate,
// directory setup, repository acquisition, dependency install, environment
// configuration, and launcher emission. Each step either succeeds and
// advances the state machine or moves the run to Failed.
package installer

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/AnarQorp/anarqq-installer/internal/config"
	"github.com/AnarQorp/anarqq-installer/internal/sysreq"
)

// State is the orchestrator's position in the installation sequence.
type State int

const (
	StateNotStarted State = iota
	StateRequirementsChecked
	StateDirectoriesReady
	StateDemoAcquired
	StateCoreAcquired
	StateDependenciesInstalled
	StateEnvironmentConfigured
	StateLaunchersCreated
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateRequirementsChecked:
		return "RequirementsChecked"
	case StateDirectoriesReady:
		return "DirectoriesReady"
	case StateDemoAcquired:
		return "DemoAcquired"
	case StateCoreAcquired:
		return "CoreAcquired"
	case StateDependenciesInstalled:
		return "DependenciesInstalled"
	case StateEnvironmentConfigured:
		return "EnvironmentConfigured"
	case StateLaunchersCreated:
		return "LaunchersCreated"
	case StateCompleted:
		return "Completed"
	case StateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ProgressSink receives one event per state transition. Percentages follow a
// fixed non-decreasing sequence of checkpoints and end at 100 on success.
type ProgressSink func(percent int, message string)

// RequirementChecker gates the run before any mutation happens.
type RequirementChecker interface {
	Check(ctx context.Context) sysreq.Result
}

// RepoAcquirer populates dest with the repository named by src.
type RepoAcquirer interface {
	Acquire(ctx context.Context, src config.Source, dest, name string) error
}

// DependencyInstaller installs a component's dependencies.
type DependencyInstaller interface {
	Install(ctx context.Context, dir, name string) error
}

// Dependencies holds the orchestrator's collaborators. The CLI wires the
// real implementations; tests substitute fakes.
type Dependencies struct {
	Checker  RequirementChecker
	Acquirer RepoAcquirer
	Deps     DependencyInstaller

	// ConfigureEnv materializes the demo's runtime environment file.
	ConfigureEnv func(dir string, logger *slog.Logger) error

	// WriteLaunchers emits the start/stop scripts.
	WriteLaunchers func(installRoot, demoDir string) error
}

// Outcome is the terminal result handed back to the front end.
type Outcome struct {
	Success     bool
	InstallRoot string
	LogPath     string
}

// Installer runs one installation. Not safe for concurrent runs against the
// same install root; the config snapshot is immutable once Run starts.
type Installer struct {
	cfg      *config.Config
	logger   *slog.Logger
	progress ProgressSink
	deps     Dependencies

	state       State
	lastPercent int
}

func New(cfg *config.Config, logger *slog.Logger, progress ProgressSink, deps Dependencies) *Installer {
	return &Installer{
		cfg:      cfg,
		logger:   logger,
		progress: progress,
		deps:     deps,
		state:    StateNotStarted,
	}
}

// State returns the current state machine position.
func (in *Installer) State() State { return in.state }

// Run executes the installation sequence. It never panics out: anything a
// step throws is logged as an error and reported as a failed outcome, so
// front ends can always render a verdict.
func (in *Installer) Run(ctx context.Context) (outcome Outcome) {
	outcome = Outcome{
		InstallRoot: in.cfg.InstallRoot,
		LogPath:     in.cfg.LogFile(),
	}

	defer func() {
		if r := recover(); r != nil {
			in.fail(fmt.Sprintf("Installation failed: %v", r))
			outcome.Success = false
		}
	}()

	in.emit(0, "Starting installation...")

	// Requirements gate — nothing on disk changes before this passes.
	req := in.deps.Checker.Check(ctx)
	if !req.OK() {
		in.fail("System requirements not met")
		return outcome
	}
	in.transition(StateRequirementsChecked, 10, "System requirements checked")

	if err := in.setupDirectories(); err != nil {
		in.fail(fmt.Sprintf("Installation failed: %v", err))
		return outcome
	}
	in.transition(StateDirectoriesReady, 20, "Directories created")

	if err := in.deps.Acquirer.Acquire(ctx, in.cfg.Sources.Demo, in.cfg.DemoDir(), "Demo"); err != nil {
		in.fail(fmt.Sprintf("Installation failed: %v", err))
		return outcome
	}
	in.transition(StateDemoAcquired, 40, "Demo repository downloaded")

	if in.cfg.InstallCore {
		if err := in.deps.Acquirer.Acquire(ctx, in.cfg.Sources.Core, in.cfg.CoreDir(), "Core"); err != nil {
			in.fail(fmt.Sprintf("Installation failed: %v", err))
			return outcome
		}
		in.transition(StateCoreAcquired, 60, "Core repository downloaded")
	} else {
		in.emit(60, "Skipping core repository")
	}

	if err := in.deps.Deps.Install(ctx, in.cfg.DemoDir(), "Demo"); err != nil {
		in.fail(fmt.Sprintf("Installation failed: %v", err))
		return outcome
	}
	in.transition(StateDependenciesInstalled, 80, "Dependencies installed")

	in.logger.Info("Setting up environment...")
	if err := in.deps.ConfigureEnv(in.cfg.DemoDir(), in.logger); err != nil {
		in.fail(fmt.Sprintf("Installation failed: %v", err))
		return outcome
	}
	in.transition(StateEnvironmentConfigured, 90, "Environment configured")

	in.logger.Info("Creating launcher scripts...")
	if err := in.deps.WriteLaunchers(in.cfg.InstallRoot, in.cfg.DemoDir()); err != nil {
		in.fail(fmt.Sprintf("Installation failed: %v", err))
		return outcome
	}
	in.state = StateLaunchersCreated
	in.logger.Info("Launcher scripts created")

	in.transition(StateCompleted, 100, "Installation completed")
	in.logger.Info("Installation completed successfully!")
	outcome.Success = true
	return outcome
}

func (in *Installer) setupDirectories() error {
	in.logger.Info("Setting up directories...")

	dirs := []string{in.cfg.InstallRoot, in.cfg.DemoDir()}
	if in.cfg.InstallCore {
		dirs = append(dirs, in.cfg.CoreDir())
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	// Touch the run log so every later record lands in the file.
	f, err := os.OpenFile(in.cfg.LogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	f.Close()

	in.logger.Info(fmt.Sprintf("Directories created at: %s", in.cfg.InstallRoot))
	return nil
}

func (in *Installer) transition(next State, percent int, message string) {
	in.state = next
	in.emit(percent, message)
}

// emit reports progress, clamped so a sink never observes a decrease.
func (in *Installer) emit(percent int, message string) {
	if percent < in.lastPercent {
		percent = in.lastPercent
	}
	in.lastPercent = percent
	if in.progress != nil {
		in.progress(percent, message)
	}
}

func (in *Installer) fail(message string) {
	in.state = StateFailed
	in.logger.Error(message)
}
