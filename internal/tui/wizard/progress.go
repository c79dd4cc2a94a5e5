package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnarQorp/anarqq-installer/internal/tui/components"
)

// logTail is how many recent log lines the progress screen keeps visible.
const logTail = 12

// ProgressModel shows the installation's checkpoint progress and a tail of
// the log stream.
type ProgressModel struct {
	styles  components.Styles
	spinner spinner.Model

	percent int
	stage   string
	lines   []string
	width   int
	height  int
}

// NewProgressModel creates a progress view.
func NewProgressModel(styles components.Styles) ProgressModel {
	return ProgressModel{
		styles:  styles,
		spinner: components.NewSpinner(styles),
		stage:   "Starting...",
	}
}

// Init starts the spinner.
func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m ProgressModel) Update(msg tea.Msg) (ProgressModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressMsg:
		m.percent = msg.Percent
		if msg.Message != "" {
			m.stage = msg.Message
		}

	case LogMsg:
		m.lines = append(m.lines, msg.Line)
		if len(m.lines) > logTail {
			m.lines = m.lines[len(m.lines)-logTail:]
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the progress screen.
func (m ProgressModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderBanner(m.styles))
	b.WriteString("\n\n")

	barWidth := 30
	filled := m.percent * barWidth / 100
	if filled > barWidth {
		filled = barWidth
	}
	bar := m.styles.ProgressFull.Render(strings.Repeat("█", filled)) +
		m.styles.ProgressEmpty.Render(strings.Repeat("░", barWidth-filled))

	b.WriteString(fmt.Sprintf("  %s %s  %3d%%\n", m.spinner.View(), bar, m.percent))
	b.WriteString("  ")
	b.WriteString(m.styles.Body.Render(m.stage))
	b.WriteString("\n\n")

	if len(m.lines) > 0 {
		b.WriteString(m.styles.Subtitle.Render("  Installation log"))
		b.WriteString("\n")
		for _, line := range m.lines {
			style := m.styles.Muted
			switch {
			case strings.HasPrefix(line, "[ERROR]"):
				style = m.styles.Error
			case strings.HasPrefix(line, "[WARNING]"):
				style = m.styles.Warning
			}
			b.WriteString(style.Render("  " + line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("  ctrl+c: cancel"))

	return b.String()
}
