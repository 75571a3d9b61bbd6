package models

// ModalName identifies one of the page's dialogs
type ModalName string

const (
	ModalTerms   ModalName = "terms"
	ModalSuccess ModalName = "success"
)

// ModalState is Hidden or Visible
type ModalState int

const (
	Hidden ModalState = iota
	Visible
)

func (s ModalState) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// ClickTarget says where inside a modal's container a click landed
type ClickTarget string

const (
	ClickBackground ClickTarget = "background"
	ClickContent    ClickTarget = "content"
)

// Modal is a two-state dialog. The zero value is Hidden.
type Modal struct {
	Name  ModalName
	State ModalState
}

// NewModal returns a hidden modal
func NewModal(name ModalName) Modal {
	return Modal{Name: name, State: Hidden}
}

// Open is the explicit open control
func (m *Modal) Open() {
	m.State = Visible
}

// Close is the explicit close control
func (m *Modal) Close() {
	m.State = Hidden
}

// Click hides the modal only when the click landed on its background
func (m *Modal) Click(target ClickTarget) {
	if target == ClickBackground {
		m.State = Hidden
	}
}

// Visible reports whether the modal is shown
func (m Modal) Visible() bool {
	return m.State == Visible
}
