package auth

import (
	"aqiform/models"

	"github.com/rohanthewiz/element"
)

// ModalView renders one dialog. The outer element is the background; a click
// that lands on it (and not on the content) posts a background click.
type ModalView struct {
	El    Elements
	Modal models.Modal
	Title string
	Body  []string
}

func (m ModalView) Render(b *element.Builder) (x any) {
	id := m.El.Modal(m.Modal.Name)
	base := "/modals/" + string(m.Modal.Name)

	class := "modal-backdrop"
	if !m.Modal.Visible() {
		class += " hidden"
	}

	b.Div("class", class, "id", id, "data-state", m.Modal.State.String(),
		"hx-post", base+"/click",
		"hx-trigger", "click[target.classList.contains('modal-backdrop')]",
		"hx-vals", esc(`{"target":"background"}`),
		"hx-target", "this", "hx-swap", "outerHTML").R(
		b.DivClass("modal-content").R(
			b.H2Class("modal-title").T(m.Title),
			b.Wrap(func() {
				for _, line := range m.Body {
					b.P().T(line)
				}
			}),
			b.Button("type", "button", "class", "modal-close", "id", m.El.Closer(m.Modal.Name),
				"hx-post", base+"/close",
				"hx-target", Target(id), "hx-swap", "outerHTML").T("Close"),
		),
	)
	return
}

// TermsModal is the terms and conditions dialog
func TermsModal(el Elements, m models.Modal) ModalView {
	return ModalView{
		El:    el,
		Modal: m,
		Title: "Terms and Conditions",
		Body: []string{
			"Air quality readings on this page are simulated for demonstration and must not be used for health decisions.",
			"Registration details are validated only; nothing you enter is stored.",
		},
	}
}

// SuccessModal is the confirmation shown after a valid registration
func SuccessModal(el Elements, m models.Modal) ModalView {
	return ModalView{
		El:    el,
		Modal: m,
		Title: "Registration Successful",
		Body:  []string{"Your registration details are valid."},
	}
}

// RenderModal returns the named dialog fragment for htmx swaps
func RenderModal(el Elements, m models.Modal) string {
	b := element.NewBuilder()
	switch m.Name {
	case models.ModalSuccess:
		element.RenderComponents(b, SuccessModal(el, m))
	default:
		element.RenderComponents(b, TermsModal(el, m))
	}
	return b.String()
}
