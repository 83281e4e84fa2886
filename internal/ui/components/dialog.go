package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/trellis/internal/ui"
)

// DefaultDialogWidth is the widest a dialog panel is drawn, border included.
const DefaultDialogWidth = 52

// dialogMargin is the space kept free on either side in narrow viewports.
const dialogMargin = 2

// DialogButton identifies a footer button.
type DialogButton int

const (
	DialogCancel DialogButton = iota
	DialogConfirm
)

// Dialog is a Modal with a titled panel and a cancel/confirm footer.
// Confirming runs the submit handler and requests a close; cancelling or
// escape only requests a close.
type Dialog struct {
	BaseComponent
	id           string
	title        string
	body         ui.Renderable
	modal        *Modal
	cancelLabel  string
	confirmLabel string
	focus        DialogButton
	width        int
	onSubmit     func()
	keys         KeyMap
}

// NewDialog creates a closed, uncontrolled dialog.
func NewDialog(title string, body ui.Renderable) *Dialog {
	d := &Dialog{
		BaseComponent: NewBaseComponent(),
		title:         title,
		body:          body,
		cancelLabel:   "Cancel",
		confirmLabel:  "Confirm",
		focus:         DialogConfirm,
		width:         DefaultDialogWidth,
		keys:          DefaultKeyMap(),
	}
	d.modal = NewModal(nil, ContextFunc(d.panel))
	return d
}

func (d *Dialog) WithID(id string) *Dialog {
	d.id = id
	d.modal.WithID(id)
	return d
}

// WithBackground sets the view the dialog opens over.
func (d *Dialog) WithBackground(background ui.Renderable) *Dialog {
	d.modal.WithBackground(background)
	return d
}

func (d *Dialog) WithDefaultOpen(open bool) *Dialog {
	d.modal.WithDefaultOpen(open)
	return d
}

// WithOpen makes the dialog controlled by its owner.
func (d *Dialog) WithOpen(open bool) *Dialog {
	d.modal.WithOpen(open)
	return d
}

func (d *Dialog) WithMask(mask bool) *Dialog {
	d.modal.WithMask(mask)
	return d
}

// WithLabels sets the footer button labels.
func (d *Dialog) WithLabels(cancel, confirm string) *Dialog {
	d.cancelLabel, d.confirmLabel = cancel, confirm
	return d
}

// WithWidth sets the widest the panel may be drawn.
func (d *Dialog) WithWidth(width int) *Dialog {
	d.width = width
	return d
}

func (d *Dialog) WithAppliers(appliers ...StyleFunc) *Dialog {
	d.AddAppliers(appliers...)
	return d
}

func (d *Dialog) OnOpenChange(fn func(open bool)) *Dialog {
	d.modal.OnOpenChange(fn)
	return d
}

func (d *Dialog) OnSubmit(fn func()) *Dialog {
	d.onSubmit = fn
	return d
}

func (d *Dialog) SyncOpen(open bool) {
	d.modal.SyncOpen(open)
}

func (d *Dialog) IsOpen() bool {
	return d.modal.IsOpen()
}

// Focused returns the footer button enter would press.
func (d *Dialog) Focused() DialogButton {
	return d.focus
}

// Open requests the open state and focuses the confirm button.
func (d *Dialog) Open() bool {
	d.focus = DialogConfirm
	return d.modal.Open()
}

func (d *Dialog) Close() bool {
	return d.modal.Close()
}

// Submit runs the submit handler and requests a close. Closed dialogs ignore it.
func (d *Dialog) Submit() bool {
	if !d.modal.IsOpen() {
		return false
	}
	if d.onSubmit != nil {
		d.onSubmit()
	}
	d.modal.Close()
	return true
}

// Update handles keys while the dialog is open: left and right move between
// the footer buttons, enter presses the focused one and escape closes.
func (d *Dialog) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !d.modal.IsOpen() {
		return nil
	}

	closed := emit(ModalToggledMsg{ID: d.id, Open: false})
	switch {
	case key.Matches(keyMsg, d.keys.Prev):
		d.focus = DialogCancel
	case key.Matches(keyMsg, d.keys.Next):
		d.focus = DialogConfirm
	case key.Matches(keyMsg, d.keys.Close):
		d.Close()
		return closed
	case key.Matches(keyMsg, d.keys.Select):
		if d.focus == DialogCancel {
			d.Close()
			return closed
		}
		d.Submit()
		return tea.Batch(emit(DialogSubmittedMsg{ID: d.id}), closed)
	}
	return nil
}

func (d *Dialog) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext draws the background with the panel over it while open.
func (d *Dialog) ViewWithContext(ctx RenderContext) string {
	return d.modal.ViewWithContext(ctx)
}

// Panel renders the dialog panel on its own.
func (d *Dialog) Panel(ctx RenderContext) string {
	return d.panel(ctx)
}

func (d *Dialog) panel(ctx RenderContext) string {
	style := ctx.Theme.Style(d.ComputeStyle(ctx.Theme), PanelDialog)

	width := d.width
	if ctx.Constraints.MaxWidth >= 0 {
		width = min(width, ctx.Constraints.MaxWidth-2*dialogMargin)
	}
	inner := max(width-style.GetHorizontalFrameSize(), 1)
	style = style.Width(inner + style.GetHorizontalPadding())

	glyphs := ctx.Glyphs()
	title := ansi.Truncate(d.title, max(inner-2, 0), glyphs.Ellipsis)
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(glyphs.Close), 1)
	header := ctx.Theme.Typography.Title.Render(title) + strings.Repeat(" ", gap) + glyphs.Close

	body := Render(d.body, ctx.WithConstraints(WithMaxWidth(inner)))

	cancel := MutedButton(d.cancelLabel).WithActive(d.focus == DialogCancel)
	confirm := PrimaryButton(d.confirmLabel).WithActive(d.focus == DialogConfirm)
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		cancel.ViewWithContext(ctx), "  ", confirm.ViewWithContext(ctx))
	footer := lipgloss.PlaceHorizontal(inner, lipgloss.Right, buttons)

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		NewDivider().WithWidth(inner).ViewWithContext(ctx),
		body,
		"",
		footer,
	))
}
