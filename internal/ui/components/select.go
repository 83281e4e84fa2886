package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/trellis/internal/overlay"
)

// Option is one choice in a Select.
type Option struct {
	Label string
	Value string
}

// Select is a dropdown-backed picker. Disabled or loading selects never open.
type Select struct {
	BaseComponent
	id          string
	options     []Option
	value       Value[string]
	placeholder string
	cursor      int
	disabled    bool
	loading     bool
	spinner     spinner.Model
	dropdown    *Dropdown
	keys        KeyMap
}

// NewSelect creates an uncontrolled select with no value.
func NewSelect(options ...Option) *Select {
	s := &Select{
		BaseComponent: NewBaseComponent(),
		options:       options,
		value:         Uncontrolled(""),
		keys:          DefaultKeyMap(),
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	s.dropdown = NewDropdown(ContextFunc(s.trigger), ContextFunc(s.menu)).
		WithPlacement(overlay.PlacementBottomLeft.String())
	return s
}

// WithID tags emitted messages.
func (s *Select) WithID(id string) *Select {
	s.id = id
	s.dropdown.WithID(id)
	return s
}

// WithDefaultValue sets the initial value of an uncontrolled select.
func (s *Select) WithDefaultValue(value string) *Select {
	onChange := s.value.onChange
	s.value = Uncontrolled(value)
	s.value.OnChange(onChange)
	s.cursor = s.indexOf(value)
	return s
}

// WithValue makes the select controlled by its owner.
func (s *Select) WithValue(value string) *Select {
	onChange := s.value.onChange
	s.value = Controlled(value)
	s.value.OnChange(onChange)
	s.cursor = s.indexOf(value)
	return s
}

// OnSelect registers the selection handler.
func (s *Select) OnSelect(fn func(value string)) *Select {
	s.value.OnChange(fn)
	return s
}

// WithPlaceholder sets the text shown when nothing is selected.
func (s *Select) WithPlaceholder(text string) *Select {
	s.placeholder = text
	return s
}

// WithDisabled disables the select.
func (s *Select) WithDisabled(disabled bool) *Select {
	s.disabled = disabled
	if disabled {
		s.dropdown.Close()
	}
	return s
}

// WithLoading shows a spinner instead of the caret and blocks opening.
func (s *Select) WithLoading(loading bool) *Select {
	s.loading = loading
	if loading {
		s.dropdown.Close()
	}
	return s
}

// SyncValue pushes the owner's value into a controlled select.
func (s *Select) SyncValue(value string) {
	s.value.Sync(value)
	s.cursor = s.indexOf(value)
}

// Value returns the selected value.
func (s *Select) Value() string {
	return s.value.Get()
}

// Selected returns the selected option, if any.
func (s *Select) Selected() (Option, bool) {
	if i := s.indexOf(s.value.Get()); i >= 0 {
		return s.options[i], true
	}
	return Option{}, false
}

// IsOpen reports whether the option menu is shown.
func (s *Select) IsOpen() bool {
	return s.dropdown.IsOpen()
}

// Cursor returns the highlighted option index.
func (s *Select) Cursor() int {
	return s.cursor
}

// Init starts the spinner while loading.
func (s *Select) Init() tea.Cmd {
	if s.loading {
		return s.spinner.Tick
	}
	return nil
}

// Open shows the menu unless the select is disabled or loading.
func (s *Select) Open() bool {
	if s.disabled || s.loading {
		return false
	}
	return s.dropdown.Open()
}

// Close hides the menu.
func (s *Select) Close() bool {
	return s.dropdown.Close()
}

// Choose selects the option at index i and closes the menu.
func (s *Select) Choose(i int) bool {
	if i < 0 || i >= len(s.options) {
		return false
	}
	s.cursor = i
	s.value.Set(s.options[i].Value)
	s.dropdown.Close()
	return true
}

// Update drives the menu from the keyboard and emits OptionSelectedMsg.
func (s *Select) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.loading {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return nil
}

func (s *Select) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !s.IsOpen() {
		if key.Matches(msg, s.keys.Select, s.keys.Toggle, s.keys.Down) && s.Open() {
			return emit(DropdownToggledMsg{ID: s.id, Open: true})
		}
		return nil
	}

	switch {
	case key.Matches(msg, s.keys.Up):
		s.cursor = max(s.cursor-1, 0)
	case key.Matches(msg, s.keys.Down):
		s.cursor = min(s.cursor+1, len(s.options)-1)
	case key.Matches(msg, s.keys.Select):
		if s.Choose(s.cursor) {
			return emit(OptionSelectedMsg{ID: s.id, Value: s.options[s.cursor].Value})
		}
	case key.Matches(msg, s.keys.Close):
		s.Close()
		return emit(DropdownToggledMsg{ID: s.id, Open: false})
	}
	return nil
}

func (s *Select) indexOf(value string) int {
	for i, option := range s.options {
		if option.Value == value {
			return i
		}
	}
	return -1
}

func (s *Select) trigger(ctx RenderContext) string {
	glyphs := ctx.Glyphs()
	label := s.placeholder
	if option, ok := s.Selected(); ok {
		label = option.Label
	}

	indicator := glyphs.Caret
	switch {
	case s.loading:
		indicator = s.spinner.View()
	case s.IsOpen():
		indicator = glyphs.CaretOpen
	}

	style := s.ComputeStyle(ctx.Theme).
		Border(ctx.Theme.Borders.Rounded).
		BorderForeground(ctx.Theme.Palette.Neutral.Base).
		Padding(0, 1)
	if s.disabled || s.loading {
		style = style.Inherit(ctx.Theme.Typography.Muted)
	}

	width := s.labelWidth(glyphs)
	gap := max(width-lipgloss.Width(label), 0) + 1
	return style.Render(label + strings.Repeat(" ", gap) + indicator)
}

func (s *Select) labelWidth(glyphs Glyphs) int {
	width := lipgloss.Width(s.placeholder)
	for _, option := range s.options {
		width = max(width, lipgloss.Width(option.Label))
	}
	return width + lipgloss.Width(glyphs.Check) + 1
}

func (s *Select) menu(ctx RenderContext) string {
	glyphs := ctx.Glyphs()
	width := s.labelWidth(glyphs)
	selected := s.value.Get()

	rows := make([]string, 0, len(s.options))
	for i, option := range s.options {
		state := OptionIdle
		marker := strings.Repeat(" ", lipgloss.Width(glyphs.Check))
		if option.Value == selected {
			state = OptionSelected
			marker = glyphs.Check
		}
		if i == s.cursor {
			state = OptionHighlighted
		}
		text := option.Label + strings.Repeat(" ", max(width-lipgloss.Width(option.Label)-lipgloss.Width(marker)-1, 0)) + " " + marker
		rows = append(rows, ctx.Theme.Style(lipgloss.NewStyle(), state).Render(text))
	}
	return strings.Join(rows, "\n")
}

// View renders the select.
func (s *Select) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger and, when open, the option menu.
func (s *Select) ViewWithContext(ctx RenderContext) string {
	return s.dropdown.ViewWithContext(ctx)
}
