// Package wizard is the installer's interactive front end: a setup form, a
// live progress screen fed by the orchestrator's callbacks, and a summary.
package wizard

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnarQorp/anarqq-installer/internal/config"
	"github.com/AnarQorp/anarqq-installer/internal/installer"
	"github.com/AnarQorp/anarqq-installer/internal/tui/components"
)

type screen int

const (
	screenForm screen = iota
	screenProgress
	screenSummary
)

// StartFunc builds and runs one installation for the confirmed config,
// reporting through the sinks. Supplied by the CLI so the wizard stays free
// of wiring concerns.
type StartFunc func(ctx context.Context, cfg *config.Config, progress installer.ProgressSink, log func(line string)) installer.Outcome

// WizardModel is the top-level tea.Model coordinating form → progress → summary.
type WizardModel struct {
	styles   components.Styles
	screen   screen
	form     FormModel
	progress ProgressModel
	summary  SummaryModel

	cfg    *config.Config
	start  StartFunc
	bridge *Bridge

	width     int
	height    int
	quitting  bool
	cancelled bool
}

// New creates a WizardModel ready to display the setup form. The config is
// the wizard's own mutable copy; the form's answers are applied to it before
// the run starts.
func New(cfg *config.Config, start StartFunc) WizardModel {
	styles := components.DefaultStyles()
	return WizardModel{
		styles:   styles,
		screen:   screenForm,
		form:     NewFormModel(styles, cfg.InstallRoot, cfg.InstallCore),
		progress: NewProgressModel(styles),
		summary:  NewSummaryModel(styles),
		cfg:      cfg,
		start:    start,
	}
}

// Init satisfies tea.Model.
func (m WizardModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages and delegates to the active screen.
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form, _ = m.form.Update(msg)
		m.progress, _ = m.progress.Update(msg)
		m.summary, _ = m.summary.Update(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.bridge != nil {
				m.bridge.Cancel()
			}
			m.quitting = true
			if m.screen != screenSummary {
				m.cancelled = true
			}
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(msg)
	case screenProgress:
		return m.updateProgress(msg)
	case screenSummary:
		var cmd tea.Cmd
		m.summary, cmd = m.summary.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the active screen.
func (m WizardModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenForm:
		return m.form.View()
	case screenProgress:
		return m.progress.View()
	case screenSummary:
		return m.summary.View()
	}
	return ""
}

func (m WizardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FormConfirmMsg:
		// Apply the form's answers to our config copy, then hand the
		// orchestrator its immutable snapshot via the bridge.
		m.cfg.InstallRoot = msg.InstallRoot
		m.cfg.InstallCore = msg.InstallCore
		m.screen = screenProgress

		cfg := m.cfg
		m.bridge = NewBridge(func(ctx context.Context, progress installer.ProgressSink, log func(string)) installer.Outcome {
			return m.start(ctx, cfg, progress, log)
		})

		return m, tea.Batch(m.bridge.Start(), m.progress.Init())

	default:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
}

func (m WizardModel) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case DoneMsg:
		m.screen = screenSummary
		m.summary = m.summary.SetOutcome(msg.Outcome)
		return m, nil

	case ProgressMsg, LogMsg:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		cmds = append(cmds, cmd)
		if m.bridge != nil {
			cmds = append(cmds, m.bridge.NextMsg())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		cmds = append(cmds, cmd)

	default:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// Outcome returns the run's terminal outcome and whether one was produced.
func (m WizardModel) Outcome() (installer.Outcome, bool) {
	return m.summary.outcome, m.summary.done
}

// Cancelled reports whether the user aborted before a verdict was reached.
func (m WizardModel) Cancelled() bool {
	return m.cancelled
}

// Screen returns the current screen (for testing).
func (m WizardModel) Screen() screen {
	return m.screen
}

// Config returns the wizard's config copy (for testing).
func (m WizardModel) Config() *config.Config {
	return m.cfg
}
