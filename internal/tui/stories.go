package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/trellis/internal/config"
	"github.com/alexisbeaulieu97/trellis/internal/logger"
	"github.com/alexisbeaulieu97/trellis/internal/overlay"
	"github.com/alexisbeaulieu97/trellis/internal/pagination"
	"github.com/alexisbeaulieu97/trellis/internal/ui"
	"github.com/alexisbeaulieu97/trellis/internal/ui/components"
	trelliserrors "github.com/alexisbeaulieu97/trellis/pkg/errors"
)

// Widget is the interactive surface of a story.
type Widget interface {
	Update(msg tea.Msg) tea.Cmd
	ViewWithContext(ctx components.RenderContext) string
}

// Settings seeds story widgets from the user configuration.
type Settings struct {
	Pagination config.PaginationConfig
	Overlay    config.OverlayConfig
	Log        *logger.Logger
}

// DefaultSettings mirrors config.Default.
func DefaultSettings() Settings {
	cfg := config.Default()
	return Settings{Pagination: cfg.Pagination, Overlay: cfg.Overlay}
}

// Story is one entry of the explorer's sidebar.
type Story struct {
	Name        string
	Title       string
	Description string
	New         func(Settings) Widget
}

// Stories returns every story in sidebar order.
func Stories() []Story {
	return []Story{
		{Name: "pagination", Title: "Pagination", Description: "Page buttons with ellipsis collapsing. ←/→ move, home/end jump.", New: newPaginationStory},
		{Name: "paged-list", Title: "Paged list", Description: "A controlled pager slicing a list of items.", New: newPagedListStory},
		{Name: "dropdown", Title: "Dropdown", Description: "Space toggles the menu, p cycles placements.", New: newDropdownStory},
		{Name: "tooltip", Title: "Tooltip", Description: "Space toggles the tooltip, p cycles all twelve placements.", New: newTooltipStory},
		{Name: "select", Title: "Select", Description: "Enter opens, ↑/↓ highlight, enter picks.", New: newSelectStory},
		{Name: "collapse", Title: "Collapse", Description: "Space expands and collapses the panel.", New: newCollapseStory},
		{Name: "switch", Title: "Switch", Description: "←/→ pick a switch, space flips it. The last one is disabled.", New: newSwitchStory},
		{Name: "checkbox", Title: "Checkbox", Description: "↑/↓ pick a box, space checks it. The last one is disabled.", New: newCheckboxStory},
		{Name: "radio", Title: "Radio group", Description: "Arrows move between radios, space selects. Medium is disabled.", New: newRadioStory},
		{Name: "tabs", Title: "Tabs", Description: "←/→ move between tabs, skipping disabled ones.", New: newTabsStory},
		{Name: "breadcrumbs", Title: "Breadcrumbs", Description: "Long trails collapse; enter expands.", New: newBreadcrumbsStory},
		{Name: "rate", Title: "Rate", Description: "←/→ preview, enter commits, x clears.", New: newRateStory},
		{Name: "carousel", Title: "Carousel", Description: "←/→ change slides; autoplay every three seconds.", New: newCarouselStory},
		{Name: "dialog", Title: "Dialog", Description: "o opens the dialog; ←/→ pick a button, enter presses it, esc closes.", New: newDialogStory},
		{Name: "drawer", Title: "Drawer", Description: "o opens the drawer, p cycles edges, esc closes.", New: newDrawerStory},
		{Name: "badges", Title: "Badges & buttons", Description: "Static badge and button variants.", New: newBadgeStory},
	}
}

// StoryNames lists the story names in sidebar order.
func StoryNames() []string {
	stories := Stories()
	names := make([]string, len(stories))
	for i, s := range stories {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a story by name.
func Lookup(name string) (Story, error) {
	for _, s := range Stories() {
		if s.Name == name {
			return s, nil
		}
	}
	known := StoryNames()
	sort.Strings(known)
	return Story{}, trelliserrors.NewRenderError(name, fmt.Errorf("unknown story, expected one of: %s", strings.Join(known, ", ")))
}

// RenderStory renders a story once without a terminal program.
func RenderStory(name string, settings Settings, ctx components.RenderContext) (string, error) {
	story, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return story.New(settings).ViewWithContext(ctx), nil
}

// composite builds a Widget from closures for stories that combine widgets.
type composite struct {
	update func(tea.Msg) tea.Cmd
	view   func(components.RenderContext) string
	init   func() tea.Cmd
}

func (c composite) Update(msg tea.Msg) tea.Cmd {
	if c.update == nil {
		return nil
	}
	return c.update(msg)
}

func (c composite) ViewWithContext(ctx components.RenderContext) string {
	return c.view(ctx)
}

func (c composite) Init() tea.Cmd {
	if c.init == nil {
		return nil
	}
	return c.init()
}

func newPaginationStory(s Settings) Widget {
	p := components.NewPagination(s.Pagination.TotalItems).
		WithID("pagination").
		WithPageSize(s.Pagination.PageSize).
		WithEllipsis(s.Pagination.WithEllipsis).
		WithLogger(s.Log)

	return composite{
		update: p.Update,
		view: func(ctx components.RenderContext) string {
			seq := p.Sequence()
			status := components.MutedText(fmt.Sprintf("page %d of %d", p.Page(), seq.TotalPages))
			return components.VStack(components.ContextFunc(p.ViewWithContext), status).WithGap(1).ViewWithContext(ctx)
		},
	}
}

func newPagedListStory(s Settings) Widget {
	p := components.NewPagination(s.Pagination.TotalItems).
		WithID("paged-list").
		WithPageSize(s.Pagination.PageSize).
		WithEllipsis(s.Pagination.WithEllipsis).
		WithLogger(s.Log).
		WithPage(1)
	p.OnChange(p.SyncPage)

	return composite{
		update: p.Update,
		view: func(ctx components.RenderContext) string {
			start, end := pagination.Bounds(p.Page(), s.Pagination.PageSize, s.Pagination.TotalItems)
			rows := make([]ui.Renderable, 0, end-start+2)
			for i := start; i < end; i++ {
				rows = append(rows, components.NewText(fmt.Sprintf("Item %d", i+1)))
			}
			if len(rows) == 0 {
				rows = append(rows, components.MutedText("no items"))
			}
			rows = append(rows, components.NewDivider().WithWidth(24), components.ContextFunc(p.ViewWithContext))
			return components.VStack(rows...).ViewWithContext(ctx)
		},
	}
}

// placementCycle steps through every placement starting at first.
type placementCycle struct {
	index int
}

func newPlacementCycle(first overlay.Placement) *placementCycle {
	for i, p := range overlay.Placements() {
		if p == first {
			return &placementCycle{index: i}
		}
	}
	return &placementCycle{}
}

func (c *placementCycle) current() overlay.Placement {
	return overlay.Placements()[c.index]
}

func (c *placementCycle) next() overlay.Placement {
	c.index = (c.index + 1) % len(overlay.Placements())
	return c.current()
}

func isRune(msg tea.Msg, r string) bool {
	keyMsg, ok := msg.(tea.KeyMsg)
	return ok && keyMsg.String() == r
}

func newDropdownStory(s Settings) Widget {
	menu := components.VStack(
		components.NewText("Rename"),
		components.NewText("Duplicate"),
		components.NewText("Archive"),
	)
	cycle := newPlacementCycle(s.Overlay.Dropdown())
	d := components.NewDropdown(components.SecondaryButton("Actions"), menu).
		WithID("dropdown").
		WithLogger(s.Log).
		WithGap(s.Overlay.Gap).
		WithPlacement(cycle.current().String())

	return composite{
		update: func(msg tea.Msg) tea.Cmd {
			if isRune(msg, "p") {
				d.WithPlacement(cycle.next().String())
				return nil
			}
			return d.Update(msg)
		},
		view: func(ctx components.RenderContext) string {
			label := components.MutedText("placement: " + d.Placement().String())
			return lipgloss.JoinVertical(lipgloss.Left, label.ViewWithContext(ctx), "", d.ViewWithContext(ctx))
		},
	}
}

// Tooltip story viewport before the first window size arrives.
const (
	defaultStoryWidth  = 56
	defaultStoryHeight = 14
)

func newTooltipStory(s Settings) Widget {
	cycle := newPlacementCycle(s.Overlay.Tooltip())
	anchorText := "[ hover me ]"
	tip := components.NewTooltip(components.NewText(anchorText), "Tooltips point back at the element they describe.").
		WithLogger(s.Log).
		WithWidth(18).
		WithPlacement(cycle.current().String()).
		WithVisible(true)
	width, height := defaultStoryWidth, defaultStoryHeight

	return composite{
		update: func(msg tea.Msg) tea.Cmd {
			switch {
			case isRune(msg, "p"):
				tip.WithPlacement(cycle.next().String())
			case isRune(msg, " "):
				tip.Toggle()
			}
			if size, ok := msg.(tea.WindowSizeMsg); ok {
				width, height = max(size.Width, 20), max(size.Height-2, 8)
			}
			return nil
		},
		view: func(ctx components.RenderContext) string {
			anchor := overlay.Rect{
				Top:    float64(height / 2),
				Left:   float64((width - lipgloss.Width(anchorText)) / 2),
				Width:  float64(lipgloss.Width(anchorText)),
				Height: 1,
			}
			base := ui.RenderableFunc(func() string {
				canvas := components.NewCanvas(width, height)
				canvas.Place(int(anchor.Top), int(anchor.Left), components.NewText(anchorText).ViewWithContext(ctx))
				return canvas.String()
			})
			layer := components.NewLayer(base).WithSize(width, height)
			if tip.IsVisible() {
				layer.Add(tip.Floating(anchor))
			}
			label := components.MutedText("placement: " + tip.Placement().String())
			return lipgloss.JoinVertical(lipgloss.Left, label.ViewWithContext(ctx), layer.ViewWithContext(ctx))
		},
	}
}

func newSelectStory(s Settings) Widget {
	return components.NewSelect(
		components.Option{Label: "Lucy", Value: "lucy"},
		components.Option{Label: "Jack", Value: "jack"},
		components.Option{Label: "Yiminghe", Value: "yiminghe"},
	).WithID("select").WithPlaceholder("Select a person")
}

func newCollapseStory(s Settings) Widget {
	body := components.NewText("Collapsed panels keep long content out of the way until it is needed.").WithWrap(40)
	return components.NewCollapse("What is a collapse?", body).WithID("collapse")
}

func newSwitchStory(s Settings) Widget {
	switches := []*components.Switch{
		components.NewSwitch().WithID("notifications").WithLabels("on", "off").WithDefaultChecked(true),
		components.NewSwitch().WithID("plain"),
		components.NewSwitch().WithID("disabled").WithDisabled(true),
	}
	keys := components.DefaultKeyMap()
	focus := 0

	return composite{
		update: func(msg tea.Msg) tea.Cmd {
			if keyMsg, ok := msg.(tea.KeyMsg); ok {
				switch {
				case key.Matches(keyMsg, keys.Prev):
					focus = (focus - 1 + len(switches)) % len(switches)
					return nil
				case key.Matches(keyMsg, keys.Next):
					focus = (focus + 1) % len(switches)
					return nil
				}
			}
			return switches[focus].Update(msg)
		},
		view: func(ctx components.RenderContext) string {
			cells := make([]ui.Renderable, len(switches))
			for i, sw := range switches {
				marker := " "
				if i == focus {
					marker = ctx.Glyphs().Cursor
				}
				cells[i] = components.HStack(components.NewText(marker), components.ContextFunc(sw.ViewWithContext)).WithGap(1)
			}
			return components.HStack(cells...).WithGap(2).ViewWithContext(ctx)
		},
	}
}

func newCheckboxStory(s Settings) Widget {
	boxes := []*components.Checkbox{
		components.NewCheckbox("Email me about new releases").WithID("releases").WithDefaultChecked(true),
		components.NewCheckbox("Share anonymous usage data").WithID("usage"),
		components.NewCheckbox("Managed by your organisation").WithID("managed").WithDisabled(true),
	}
	keys := components.DefaultKeyMap()
	focus := 0

	return composite{
		update: func(msg tea.Msg) tea.Cmd {
			if keyMsg, ok := msg.(tea.KeyMsg); ok {
				switch {
				case key.Matches(keyMsg, keys.Up):
					focus = (focus - 1 + len(boxes)) % len(boxes)
					return nil
				case key.Matches(keyMsg, keys.Down):
					focus = (focus + 1) % len(boxes)
					return nil
				}
			}
			return boxes[focus].Update(msg)
		},
		view: func(ctx components.RenderContext) string {
			rows := make([]ui.Renderable, len(boxes))
			for i, box := range boxes {
				marker := " "
				if i == focus {
					marker = ctx.Glyphs().Cursor
				}
				rows[i] = components.HStack(components.NewText(marker), components.ContextFunc(box.ViewWithContext)).WithGap(1)
			}
			return components.VStack(rows...).ViewWithContext(ctx)
		},
	}
}

func newRadioStory(s Settings) Widget {
	return components.NewRadioGroup(
		components.Radio{Label: "Small", Value: "small"},
		components.Radio{Label: "Medium", Value: "medium", Disabled: true},
		components.Radio{Label: "Large", Value: "large"},
		components.Radio{Label: "Extra large", Value: "extra-large"},
	).WithID("radio").WithColumns(2).WithDefaultValue("small")
}

// modalFrame bounds a modal story to a fixed viewport inside the story area.
func modalFrame(ctx components.RenderContext) components.RenderContext {
	w, h := ctx.Constraints.Constrain(64, 12)
	return ctx.WithConstraints(components.Bounded(w, h))
}

func fileList() ui.Renderable {
	return components.VStack(
		components.NewText("report-2024.csv"),
		components.NewText("notes.md"),
		components.NewText("archive.zip"),
		components.NewText("photos/"),
	)
}

func opened(id string) tea.Cmd {
	return func() tea.Msg { return components.ModalToggledMsg{ID: id, Open: true} }
}

func newDialogStory(s Settings) Widget {
	d := components.NewDialog("Delete archive.zip?",
		components.NewText("The file is removed from the workspace. This cannot be undone.")).
		WithID("dialog").
		WithBackground(fileList()).
		WithLabels("Keep", "Delete")

	return composite{
		update: func(msg tea.Msg) tea.Cmd {
			if !d.IsOpen() && isRune(msg, "o") {
				d.Open()
				return opened("dialog")
			}
			return d.Update(msg)
		},
		view: func(ctx components.RenderContext) string {
			return d.ViewWithContext(modalFrame(ctx))
		},
	}
}

func newDrawerStory(s Settings) Widget {
	edges := []string{"left", "right", "top", "bottom"}
	edge := 0
	menu := components.VStack(
		components.NewText("Home"),
		components.NewText("Projects"),
		components.NewText("Settings"),
	)
	d := components.NewDrawer(fileList(), menu).WithID("drawer").WithLogger(s.Log).WithSize(18)

	return composite{
		update: func(msg tea.Msg) tea.Cmd {
			switch {
			case isRune(msg, "p"):
				edge = (edge + 1) % len(edges)
				size := 18
				if edge >= 2 {
					size = 5
				}
				d.WithEdge(edges[edge]).WithSize(size)
				return nil
			case !d.IsOpen() && isRune(msg, "o"):
				d.Open()
				return opened("drawer")
			}
			return d.Update(msg)
		},
		view: func(ctx components.RenderContext) string {
			label := components.MutedText("edge: " + d.Edge().String())
			return lipgloss.JoinVertical(lipgloss.Left, label.ViewWithContext(ctx), "", d.ViewWithContext(modalFrame(ctx)))
		},
	}
}

func newTabsStory(s Settings) Widget {
	return components.NewTabs(
		components.Tab{Label: "Overview", Content: components.NewText("Tabs switch between views that share a space.")},
		components.Tab{Label: "Archived", Content: components.NewText("Nothing here."), Disabled: true},
		components.Tab{Label: "Settings", Content: components.NewText("Disabled tabs are skipped while moving.")},
	).WithID("tabs")
}

func newBreadcrumbsStory(s Settings) Widget {
	return components.NewBreadcrumbs("Home", "Library", "Books", "Fiction", "Classics", "Russian", "Tolstoy", "Novels", "War and Peace").
		WithMaxItems(components.DefaultBreadcrumbMaxItems)
}

func newRateStory(s Settings) Widget {
	return components.NewRate().WithID("rate").WithAllowHalf(true).WithDefaultValue(2.5)
}

func newCarouselStory(s Settings) Widget {
	slide := func(title, body string) ui.Renderable {
		return components.NewCard(components.NewText(body).WithWrap(30)).WithTitle(title)
	}
	return components.NewCarousel(
		slide("One", "Carousels cycle through slides."),
		slide("Two", "Navigation wraps at either end."),
		slide("Three", "The dots jump straight to a slide."),
		slide("Four", "Autoplay restarts after manual moves."),
	).WithID("carousel").WithAutoplay(components.DefaultAutoplayInterval)
}

func newBadgeStory(s Settings) Widget {
	return composite{
		view: func(ctx components.RenderContext) string {
			badges := components.HStack(
				components.NewBadge("default"),
				components.PrimaryBadge("primary"),
				components.SuccessBadge("success"),
				components.WarningBadge("warning"),
				components.ErrorBadge("error"),
				components.CountBadge(5),
				components.CountBadge(120),
				components.CountBadge(0).WithShowZero(true),
			).WithGap(1)
			buttons := components.HStack(
				components.PrimaryButton("Primary"),
				components.SecondaryButton("Secondary"),
				components.MutedButton("Muted"),
				components.PrimaryButton("Disabled").WithDisabled(true),
				components.PrimaryButton("Saving").WithLoading(true, ctx.Glyphs().DotOn),
			).WithGap(1)
			return components.VStack(badges, buttons).WithGap(1).ViewWithContext(ctx)
		},
	}
}
