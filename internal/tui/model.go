package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/trellis/internal/logger"
	"github.com/alexisbeaulieu97/trellis/internal/ui/components"
)

// Options configure a new explorer model.
type Options struct {
	Settings Settings
	Theme    components.Theme
	ASCII    bool
	// Start selects the initially highlighted story by name.
	Start string
	// Clipboard receives copied frames; defaults to the system clipboard.
	Clipboard func(string) error
}

// Model is the Bubbletea state of the component explorer.
type Model struct {
	stories []Story
	widgets []Widget
	cursor  int
	focused bool

	theme components.Theme
	ascii bool

	keys     KeyMap
	help     help.Model
	status   string
	showHelp bool

	width  int
	height int

	clipboard func(string) error
	log       *logger.Logger
}

// NewModel builds every story widget up front so state survives switching
// between stories.
func NewModel(opts Options) Model {
	stories := Stories()
	widgets := make([]Widget, len(stories))
	for i, story := range stories {
		widgets[i] = story.New(opts.Settings)
	}

	theme := opts.Theme
	if theme.Variants == nil {
		theme = components.DefaultTheme()
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	m := Model{
		stories:   stories,
		widgets:   widgets,
		theme:     theme,
		ascii:     opts.ASCII,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		width:     80,
		height:    24,
		clipboard: copyFn,
		log:       opts.Settings.Log.WithComponent("explorer"),
	}
	for i, story := range stories {
		if story.Name == opts.Start {
			m.cursor = i
		}
	}
	return m
}

// Init starts widget timers such as spinners and autoplay.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, w := range m.widgets {
		if initer, ok := w.(interface{ Init() tea.Cmd }); ok {
			cmds = append(cmds, initer.Init())
		}
	}
	return tea.Batch(cmds...)
}

// Current returns the highlighted story.
func (m Model) Current() Story {
	return m.stories[m.cursor]
}

// Focused reports whether key presses go to the story widget.
func (m Model) Focused() bool {
	return m.focused
}

// Status returns the last event shown in the status line.
func (m Model) Status() string {
	return m.status
}

func (m Model) context() components.RenderContext {
	return components.DefaultContext().
		WithTheme(m.theme).
		WithASCII(m.ascii).
		WithConstraints(components.Bounded(m.storyWidth(), m.storyHeight()))
}

func (m *Model) moveCursor(delta int) {
	n := len(m.stories)
	m.cursor = ((m.cursor+delta)%n + n) % n
}
