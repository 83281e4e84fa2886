package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/trellis/internal/ui"
)

// DefaultAutoplayInterval is the slide duration when autoplay is enabled.
const DefaultAutoplayInterval = 3 * time.Second

type autoplayMsg struct {
	carousel *Carousel
	gen      int
}

// Carousel cycles through slides with wrap-around navigation, dot
// indicators and optional autoplay.
type Carousel struct {
	BaseComponent
	id       string
	slides   []ui.Renderable
	index    int
	dots     bool
	arrows   bool
	interval time.Duration
	gen      int
	keys     KeyMap
}

// NewCarousel creates a carousel showing the first slide.
func NewCarousel(slides ...ui.Renderable) *Carousel {
	return &Carousel{
		BaseComponent: NewBaseComponent(),
		slides:        slides,
		dots:          true,
		arrows:        true,
		keys:          DefaultKeyMap(),
	}
}

func (c *Carousel) WithID(id string) *Carousel {
	c.id = id
	return c
}

// WithDots shows or hides the indicators.
func (c *Carousel) WithDots(show bool) *Carousel {
	c.dots = show
	return c
}

// WithArrows shows or hides the prev/next controls.
func (c *Carousel) WithArrows(show bool) *Carousel {
	c.arrows = show
	return c
}

// WithAutoplay advances every interval; zero disables autoplay.
func (c *Carousel) WithAutoplay(interval time.Duration) *Carousel {
	c.interval = interval
	return c
}

// Index returns the visible slide.
func (c *Carousel) Index() int {
	return c.index
}

// Len returns the number of slides.
func (c *Carousel) Len() int {
	return len(c.slides)
}

// Prev moves back one slide, wrapping from the first to the last.
func (c *Carousel) Prev() {
	if n := len(c.slides); n > 0 {
		c.index = (c.index - 1 + n) % n
	}
}

// Next moves forward one slide, wrapping from the last to the first.
func (c *Carousel) Next() {
	if n := len(c.slides); n > 0 {
		c.index = (c.index + 1) % n
	}
}

// GoTo jumps to slide i; out-of-range indexes are ignored.
func (c *Carousel) GoTo(i int) bool {
	if i < 0 || i >= len(c.slides) || i == c.index {
		return false
	}
	c.index = i
	return true
}

// Init schedules the first autoplay tick.
func (c *Carousel) Init() tea.Cmd {
	return c.schedule()
}

func (c *Carousel) schedule() tea.Cmd {
	if c.interval <= 0 || len(c.slides) < 2 {
		return nil
	}
	gen := c.gen
	return tea.Tick(c.interval, func(time.Time) tea.Msg {
		return autoplayMsg{carousel: c, gen: gen}
	})
}

// Update advances on autoplay ticks and arrow keys. Manual navigation
// restarts the autoplay timer.
func (c *Carousel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case autoplayMsg:
		if msg.carousel != c || msg.gen != c.gen {
			return nil
		}
		c.Next()
		return tea.Batch(emit(SlideChangedMsg{ID: c.id, Index: c.index}), c.schedule())
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, c.keys.Prev):
			c.Prev()
		case key.Matches(msg, c.keys.Next):
			c.Next()
		default:
			return nil
		}
		c.gen++
		return tea.Batch(emit(SlideChangedMsg{ID: c.id, Index: c.index}), c.schedule())
	}
	return nil
}

func (c *Carousel) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *Carousel) ViewWithContext(ctx RenderContext) string {
	if len(c.slides) == 0 {
		return ""
	}
	glyphs := ctx.Glyphs()
	slide := Render(c.slides[c.index], ctx)

	if c.arrows {
		prev := ctx.Theme.Typography.Muted.Render(glyphs.Prev)
		next := ctx.Theme.Typography.Muted.Render(glyphs.Next)
		slide = lipgloss.JoinHorizontal(lipgloss.Center, prev, " ", slide, " ", next)
	}
	if !c.dots {
		return c.ComputeStyle(ctx.Theme).Render(slide)
	}

	dots := make([]string, len(c.slides))
	for i := range dots {
		dots[i] = glyphs.DotOff
		if i == c.index {
			dots[i] = glyphs.DotOn
		}
	}
	indicator := lipgloss.PlaceHorizontal(lipgloss.Width(slide), lipgloss.Center, strings.Join(dots, " "))
	return c.ComputeStyle(ctx.Theme).Render(lipgloss.JoinVertical(lipgloss.Left, slide, indicator))
}
