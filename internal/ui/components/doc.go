// Package components provides a theme-aware widget library for terminal applications.
//
// # Overview
//
// Widgets render to strings with lipgloss. Interactive widgets also hold local
// state, expose explicit transition methods (Toggle, GoTo, Select, ...) and an
// Update(tea.Msg) tea.Cmd method so a bubbletea model can forward key events.
//
// # Architecture
//
// The package has three layers:
//
//  1. Theme layer: immutable palettes, borders, spacing and typography
//  2. Modifier layer: StyleFunc transformations that apply theme data to styles
//  3. Widget layer: composable elements that render to strings
//
// Themes are passed explicitly through RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme()).WithASCII(true)
//	output := widget.ViewWithContext(ctx)
//
// View() renders with the default context.
//
// # State
//
// Stateful widgets keep their value in a Value[T], which is either controlled
// (the owner holds the value and pushes it back with Sync) or uncontrolled (the
// widget stores it). The mode is fixed when the widget is built:
//
//	p := components.NewPagination(240).WithPageSize(20).WithPage(3).OnChange(func(page int) {
//		// controlled: store page, then p.SyncPage(page)
//	})
//
// Update emits typed messages (PageChangedMsg, DropdownToggledMsg,
// OptionSelectedMsg, ...) describing the requested change.
//
// # Floating panels
//
// Dropdown, Select and Tooltip position their panels with the overlay package
// and composite them with Layer and Canvas, which splice ANSI-styled blocks
// cell by cell and clip at the canvas edge. Modal, Dialog and Drawer draw over
// a whole frame instead, dimming the view beneath them.
//
// # Widgets
//
// Primitives: Text, Badge, Button, Divider, Card, Stack.
// Interactive: Pagination, Dropdown, Tooltip, Select, Collapse, Switch,
// Checkbox, RadioGroup, Tabs, Breadcrumbs, Rate, Carousel.
// Modal surfaces: Modal, Dialog, Drawer.
package components
