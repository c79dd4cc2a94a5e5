package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnarQorp/anarqq-installer/internal/tui/components"
)

// form focus positions, top to bottom.
const (
	focusDir = iota
	focusCore
	focusInstall
)

// FormModel collects the two installation choices: where to install and
// whether to include the core repository.
type FormModel struct {
	styles components.Styles
	dir    textinput.Model
	core   bool
	focus  int
	width  int
	height int
}

// NewFormModel creates the setup form pre-filled with defaultDir.
func NewFormModel(styles components.Styles, defaultDir string, defaultCore bool) FormModel {
	ti := textinput.New()
	ti.SetValue(defaultDir)
	ti.CharLimit = 512
	ti.Width = 50
	ti.Focus()

	return FormModel{
		styles: styles,
		dir:    ti,
		core:   defaultCore,
		focus:  focusDir,
	}
}

// Init satisfies tea.Model.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key events for the form.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % 3)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + 2) % 3)
			return m, nil
		case " ":
			if m.focus == focusCore {
				m.core = !m.core
				return m, nil
			}
		case "enter":
			if m.focus == focusCore {
				m.core = !m.core
				return m, nil
			}
			root := strings.TrimSpace(m.dir.Value())
			if root != "" {
				return m, func() tea.Msg {
					return FormConfirmMsg{InstallRoot: root, InstallCore: m.core}
				}
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	if m.focus == focusDir {
		m.dir, cmd = m.dir.Update(msg)
	}
	return m, cmd
}

func (m *FormModel) setFocus(f int) {
	m.focus = f
	if f == focusDir {
		m.dir.Focus()
	} else {
		m.dir.Blur()
	}
}

// View renders the form.
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderBanner(m.styles))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Subtitle.Render("Installation options"))
	b.WriteString("\n\n")

	dirLabel := "  Installation directory"
	if m.focus == focusDir {
		dirLabel = m.styles.SelectedItem.Render("> Installation directory")
	}
	b.WriteString(dirLabel)
	b.WriteString("\n  ")
	b.WriteString(m.dir.View())
	b.WriteString("\n\n")

	checkbox := m.styles.CheckboxOff
	if m.core {
		checkbox = m.styles.CheckboxOn
	}
	coreLine := fmt.Sprintf("  %s Install complete ecosystem (core repository)", checkbox)
	if m.focus == focusCore {
		coreLine = m.styles.SelectedItem.Render("> " + coreLine[2:])
	}
	b.WriteString(coreLine)
	b.WriteString("\n\n")

	installLine := "  Install"
	if m.focus == focusInstall {
		installLine = m.styles.SelectedItem.Render("> Install")
	}
	b.WriteString(installLine)
	b.WriteString("\n\n")

	b.WriteString(m.styles.Footer.Render("  tab: next field  space: toggle  enter: confirm  ctrl+c: quit"))

	return b.String()
}
