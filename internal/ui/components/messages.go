package components

import tea "github.com/charmbracelet/bubbletea"

// PageChangedMsg reports that a Pagination moved to Page.
type PageChangedMsg struct {
	ID   string
	Page int
}

// DropdownToggledMsg reports that a Dropdown opened or closed.
type DropdownToggledMsg struct {
	ID   string
	Open bool
}

// OptionSelectedMsg reports the value picked in a Select.
type OptionSelectedMsg struct {
	ID    string
	Value string
}

// TabChangedMsg reports the newly selected tab index.
type TabChangedMsg struct {
	ID    string
	Index int
}

// ToggledMsg reports a Switch or Collapse changing state.
type ToggledMsg struct {
	ID string
	On bool
}

// RatedMsg reports a Rate value change; zero means cleared.
type RatedMsg struct {
	ID    string
	Value float64
}

// SlideChangedMsg reports the Carousel's new slide index.
type SlideChangedMsg struct {
	ID    string
	Index int
}

// ModalToggledMsg reports a Modal, Dialog or Drawer opening or closing.
type ModalToggledMsg struct {
	ID   string
	Open bool
}

// DialogSubmittedMsg reports that a Dialog's confirm button was pressed.
type DialogSubmittedMsg struct {
	ID string
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
