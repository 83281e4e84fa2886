package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Radio is one choice in a RadioGroup.
type Radio struct {
	Label    string
	Value    string
	Disabled bool
}

// RadioGroup picks one value from a set of radios laid out in a grid. The
// cursor moves between enabled radios and space or enter selects the one
// under it. The handler runs only when the selection changes.
type RadioGroup struct {
	BaseComponent
	id      string
	radios  []Radio
	value   Value[string]
	cursor  int
	columns int
	keys    KeyMap
}

// NewRadioGroup creates an uncontrolled group with nothing selected.
func NewRadioGroup(radios ...Radio) *RadioGroup {
	g := &RadioGroup{
		BaseComponent: NewBaseComponent(),
		radios:        radios,
		value:         Uncontrolled(""),
		columns:       1,
		keys:          DefaultKeyMap(),
	}
	g.cursor = g.firstEnabled()
	return g
}

func (g *RadioGroup) WithID(id string) *RadioGroup {
	g.id = id
	return g
}

func (g *RadioGroup) WithDefaultValue(value string) *RadioGroup {
	onChange := g.value.onChange
	g.value = Uncontrolled(value)
	g.value.OnChange(onChange)
	g.moveCursorTo(value)
	return g
}

// WithValue makes the group controlled by its owner.
func (g *RadioGroup) WithValue(value string) *RadioGroup {
	onChange := g.value.onChange
	g.value = Controlled(value)
	g.value.OnChange(onChange)
	g.moveCursorTo(value)
	return g
}

// WithColumns sets how many radios share a row.
func (g *RadioGroup) WithColumns(columns int) *RadioGroup {
	g.columns = max(columns, 1)
	return g
}

func (g *RadioGroup) OnChange(fn func(value string)) *RadioGroup {
	g.value.OnChange(fn)
	return g
}

func (g *RadioGroup) SyncValue(value string) {
	g.value.Sync(value)
	g.moveCursorTo(value)
}

func (g *RadioGroup) Value() string {
	return g.value.Get()
}

func (g *RadioGroup) Cursor() int {
	return g.cursor
}

// Select requests the value of the radio at index. Disabled and out of range
// radios are ignored.
func (g *RadioGroup) Select(index int) bool {
	if index < 0 || index >= len(g.radios) || g.radios[index].Disabled {
		return false
	}
	g.cursor = index
	return g.value.Set(g.radios[index].Value)
}

// Step returns the index of the next enabled radio in direction delta,
// wrapping at either end.
func (g *RadioGroup) Step(delta int) int {
	n := len(g.radios)
	if n == 0 || delta == 0 {
		return g.cursor
	}
	dir := 1
	if delta < 0 {
		dir = -1
	}
	i := g.cursor
	for range n {
		i = ((i+dir)%n + n) % n
		if !g.radios[i].Disabled {
			return i
		}
	}
	return g.cursor
}

func (g *RadioGroup) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(g.radios) == 0 {
		return nil
	}
	switch {
	case key.Matches(keyMsg, g.keys.Prev, g.keys.Up):
		g.cursor = g.Step(-1)
	case key.Matches(keyMsg, g.keys.Next, g.keys.Down):
		g.cursor = g.Step(1)
	case key.Matches(keyMsg, g.keys.Toggle, g.keys.Select):
		radio := g.radios[g.cursor]
		if radio.Disabled || radio.Value == g.value.Get() {
			return nil
		}
		g.Select(g.cursor)
		return emit(OptionSelectedMsg{ID: g.id, Value: radio.Value})
	}
	return nil
}

func (g *RadioGroup) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext draws the radios row by row, each cell as wide as the
// widest radio so the columns line up.
func (g *RadioGroup) ViewWithContext(ctx RenderContext) string {
	glyphs := ctx.Glyphs()
	cells := make([]string, len(g.radios))
	width := 0
	for i, radio := range g.radios {
		mark, state := glyphs.RadioOff, CheckOff
		if radio.Value == g.value.Get() {
			mark, state = glyphs.RadioOn, CheckOn
		}
		if radio.Disabled {
			state = CheckDisabled
		}
		cursor := " "
		if i == g.cursor {
			cursor = glyphs.Cursor
		}
		cells[i] = cursor + " " + ctx.Theme.Style(g.ComputeStyle(ctx.Theme), state).Render(mark+" "+radio.Label)
		width = max(width, lipgloss.Width(cells[i]))
	}

	cell := lipgloss.NewStyle().Width(width + 2)
	var rows []string
	for start := 0; start < len(cells); start += g.columns {
		end := min(start+g.columns, len(cells))
		row := make([]string, 0, end-start)
		for _, c := range cells[start:end] {
			row = append(row, cell.Render(c))
		}
		rows = append(rows, strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, row...), " "))
	}
	return strings.Join(rows, "\n")
}

func (g *RadioGroup) firstEnabled() int {
	for i, radio := range g.radios {
		if !radio.Disabled {
			return i
		}
	}
	return 0
}

func (g *RadioGroup) moveCursorTo(value string) {
	for i, radio := range g.radios {
		if radio.Value == value {
			g.cursor = i
			return
		}
	}
}
