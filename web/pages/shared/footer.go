package shared

import "github.com/rohanthewiz/element"

// Footer is stateless, so it is an empty struct with a Render method
type Footer struct{}

// Render implements element.Component
func (f Footer) Render(b *element.Builder) any {
	b.Footer("class", "site-footer").R(
		b.P().T("AQI values on this page are simulated. Copyright &copy; 2025"),
	)
	return nil
}
