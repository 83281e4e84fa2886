package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultRateCount is the number of stars drawn.
const DefaultRateCount = 5

// Rate is a star rating. The preview value follows the keyboard cursor and
// is what gets drawn; committing a value equal to the current rating clears
// it to zero.
type Rate struct {
	BaseComponent
	id        string
	count     int
	value     Value[float64]
	preview   float64
	allowHalf bool
	disabled  bool
	keys      KeyMap
}

// NewRate creates an unrated, uncontrolled rating.
func NewRate() *Rate {
	return &Rate{
		BaseComponent: NewBaseComponent(),
		count:         DefaultRateCount,
		value:         Uncontrolled(0.0),
		keys:          DefaultKeyMap(),
	}
}

func (r *Rate) WithID(id string) *Rate {
	r.id = id
	return r
}

// WithCount sets the number of stars.
func (r *Rate) WithCount(count int) *Rate {
	r.count = max(count, 0)
	return r
}

// WithDefaultValue sets the initial rating.
func (r *Rate) WithDefaultValue(value float64) *Rate {
	onChange := r.value.onChange
	r.value = Uncontrolled(value)
	r.value.OnChange(onChange)
	r.preview = value
	return r
}

// WithAllowHalf enables half-star steps.
func (r *Rate) WithAllowHalf(allow bool) *Rate {
	r.allowHalf = allow
	return r
}

func (r *Rate) WithDisabled(disabled bool) *Rate {
	r.disabled = disabled
	return r
}

func (r *Rate) OnChange(fn func(value float64)) *Rate {
	r.value.OnChange(fn)
	return r
}

// Value returns the committed rating.
func (r *Rate) Value() float64 {
	return r.value.Get()
}

// Preview returns the rating being drawn.
func (r *Rate) Preview() float64 {
	return r.preview
}

func (r *Rate) step() float64 {
	if r.allowHalf {
		return 0.5
	}
	return 1
}

// Hover previews value without committing it.
func (r *Rate) Hover(value float64) {
	if r.disabled {
		return
	}
	r.preview = min(max(value, 0), float64(r.count))
}

// Leave drops the preview back to the committed rating.
func (r *Rate) Leave() {
	r.preview = r.value.Get()
}

// Click commits value, or clears the rating when value is already selected.
func (r *Rate) Click(value float64) bool {
	if r.disabled {
		return false
	}
	if value == r.value.Get() {
		value = 0
	}
	changed := r.value.Set(value)
	r.preview = r.value.Get()
	return changed
}

// Update moves the preview with the arrow keys, commits it on select and
// clears on the clear key.
func (r *Rate) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || r.disabled {
		return nil
	}
	switch {
	case key.Matches(keyMsg, r.keys.Prev):
		r.Hover(r.preview - r.step())
	case key.Matches(keyMsg, r.keys.Next):
		r.Hover(r.preview + r.step())
	case key.Matches(keyMsg, r.keys.Select):
		before := r.value.Get()
		target := r.preview
		if target == before {
			target = 0
		}
		r.Click(r.preview)
		return emit(RatedMsg{ID: r.id, Value: target})
	case key.Matches(keyMsg, r.keys.Clear):
		if r.value.Get() == 0 {
			return nil
		}
		r.value.Set(0)
		r.preview = r.value.Get()
		return emit(RatedMsg{ID: r.id, Value: 0})
	}
	return nil
}

// StarState reports how star i (0-based) is drawn for the preview value.
func (r *Rate) StarState(i int) (full, half bool) {
	switch {
	case float64(i)+1 <= r.preview:
		return true, false
	case r.allowHalf && float64(i)+0.5 <= r.preview:
		return false, true
	default:
		return false, false
	}
}

func (r *Rate) View() string {
	return r.ViewWithContext(DefaultContext())
}

func (r *Rate) ViewWithContext(ctx RenderContext) string {
	glyphs := ctx.Glyphs()
	on := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Rating.Base)
	off := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Rating.Muted)
	if r.disabled {
		on = on.Faint(true)
	}

	stars := make([]string, r.count)
	for i := range stars {
		switch full, half := r.StarState(i); {
		case full:
			stars[i] = on.Render(glyphs.StarFull)
		case half:
			stars[i] = on.Render(glyphs.StarHalf)
		default:
			stars[i] = off.Render(glyphs.StarEmpty)
		}
	}
	return r.ComputeStyle(ctx.Theme).Render(strings.Join(stars, " "))
}
