package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rows used by the title, status line and footer.
const chromeHeight = 6

// View renders the current state of the model.
func (m Model) View() string {
	title := titleStyle.Render("trellis • component explorer")

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.renderStory())

	status := m.status
	if status == "" {
		status = " "
	}
	footer := footerStyle.Width(max(m.width, 1)).Render(m.help.View(m.keys.forStory(m.focused)))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, statusStyle.Render(status), footer)
}

func (m Model) renderSidebar() string {
	items := make([]string, len(m.stories))
	for i, story := range m.stories {
		if i == m.cursor {
			items[i] = selectedItemStyle.Render(story.Title)
			continue
		}
		items[i] = itemStyle.Render(story.Title)
	}
	return sidebarStyle.Height(m.storyHeight()).Render(strings.Join(items, "\n"))
}

func (m Model) renderStory() string {
	story := m.Current()
	heading := titleStyle.Render(story.Title)
	if m.focused {
		heading += focusedStyle.Render("(focused)")
	}
	frame := m.widgets[m.cursor].ViewWithContext(m.context())
	return storyStyle.MaxWidth(m.storyWidth() + 2).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		heading,
		descriptionStyle.Render(story.Description),
		frame,
	))
}

// storyWidth is the width available to a story frame.
func (m Model) storyWidth() int {
	return max(m.width-sidebarWidth-4, 20)
}

// storyHeight is the height available to a story frame.
func (m Model) storyHeight() int {
	return max(m.height-chromeHeight, 8)
}
