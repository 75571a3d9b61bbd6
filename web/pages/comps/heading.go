package comps

import "github.com/rohanthewiz/element"

// Heading is the title block at the top of an auth card
type Heading struct {
	Title    string
	Subtitle string
}

func (h Heading) Render(b *element.Builder) (x any) {
	b.DivClass("auth-heading").R(
		b.H2Class("auth-title").T(h.Title),
		b.Wrap(func() {
			if h.Subtitle != "" {
				b.PClass("auth-subtitle").T(h.Subtitle)
			}
		}),
	)
	return
}
