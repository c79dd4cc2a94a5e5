package wizard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnarQorp/anarqq-installer/internal/installer"
	"github.com/AnarQorp/anarqq-installer/internal/launcher"
	"github.com/AnarQorp/anarqq-installer/internal/tui/components"
)

// SummaryModel shows the final results screen.
type SummaryModel struct {
	styles  components.Styles
	outcome installer.Outcome
	done    bool
	width   int
	height  int
}

// NewSummaryModel creates a summary view.
func NewSummaryModel(styles components.Styles) SummaryModel {
	return SummaryModel{styles: styles}
}

// SetOutcome records the terminal outcome to display.
func (m SummaryModel) SetOutcome(o installer.Outcome) SummaryModel {
	m.outcome = o
	m.done = true
	return m
}

// Init satisfies tea.Model.
func (m SummaryModel) Init() tea.Cmd {
	return nil
}

// Update handles key events.
func (m SummaryModel) Update(msg tea.Msg) (SummaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "q":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the summary screen.
func (m SummaryModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderBanner(m.styles))
	b.WriteString("\n\n")

	if m.outcome.Success {
		b.WriteString(m.styles.Success.Render("Installation Complete!"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Installation directory: %s\n", m.outcome.InstallRoot))
		b.WriteString(fmt.Sprintf("  Log file:               %s\n", m.outcome.LogPath))
		b.WriteString("\n")
		b.WriteString("  To start the demo:\n")
		b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("    %s", launcher.StartScriptPath(m.outcome.InstallRoot))))
		b.WriteString("\n")
	} else {
		b.WriteString(m.styles.Error.Render("Installation Failed"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf("  Check the log for details: %s", m.outcome.LogPath)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("  Press enter or q to exit"))

	return b.String()
}
