package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/trellis/internal/ui/components"
)

// copiedMsg reports the outcome of a clipboard copy.
type copiedMsg struct {
	story string
	err   error
}

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, m.broadcast(tea.WindowSizeMsg{Width: m.storyWidth(), Height: m.storyHeight()})

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case copiedMsg:
		if msg.err != nil {
			m.log.Error(msg.err, "copy to clipboard failed")
			m.status = "copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("copied %s to clipboard", msg.story)
		return m, nil

	case components.PageChangedMsg:
		m.record(msg.ID, fmt.Sprintf("page %d", msg.Page))
	case components.DropdownToggledMsg:
		m.record(msg.ID, openState(msg.Open))
	case components.OptionSelectedMsg:
		m.record(msg.ID, fmt.Sprintf("selected %q", msg.Value))
	case components.TabChangedMsg:
		m.record(msg.ID, fmt.Sprintf("tab %d", msg.Index))
	case components.ToggledMsg:
		m.record(msg.ID, onOff(msg.On))
	case components.RatedMsg:
		m.record(msg.ID, fmt.Sprintf("rated %.1f", msg.Value))
	case components.SlideChangedMsg:
		m.record(msg.ID, fmt.Sprintf("slide %d", msg.Index+1))
	case components.ModalToggledMsg:
		m.record(msg.ID, openState(msg.Open))
	case components.DialogSubmittedMsg:
		m.record(msg.ID, "submitted")

	default:
		// Spinner ticks and autoplay timers carry their own target.
		return m, m.broadcast(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.focused {
		if msg.Type == tea.KeyTab {
			m.focused = false
			return m, nil
		}
		return m, m.widgets[m.cursor].Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Focus):
		m.focused = true
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyFrame()
	case key.Matches(msg, m.keys.ASCII):
		m.ascii = !m.ascii
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
	return m, nil
}

// broadcast forwards msg to every widget.
func (m Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.widgets))
	for _, w := range m.widgets {
		cmds = append(cmds, w.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (m Model) copyFrame() tea.Cmd {
	story := m.Current().Name
	frame := ansi.Strip(m.widgets[m.cursor].ViewWithContext(m.context()))
	write := m.clipboard
	return func() tea.Msg {
		return copiedMsg{story: story, err: write(frame)}
	}
}

func (m *Model) toggleTheme() {
	if m.theme.Name == "dark" {
		m.theme = components.LightTheme()
	} else {
		m.theme = components.DarkTheme()
	}
	m.status = "theme: " + m.theme.Name
}

func (m *Model) record(id, event string) {
	m.status = fmt.Sprintf("%s: %s", id, event)
	m.log.WithFields(map[string]any{"widget": id}).Debug(event)
}

func openState(open bool) string {
	if open {
		return "opened"
	}
	return "closed"
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
