package shared

import "github.com/rohanthewiz/element"

// Banner is the top bar with the site name and the two page links
type Banner struct {
	Title  string
	Active string
}

// Render implements element.Component
func (bn Banner) Render(b *element.Builder) any {
	b.HeaderClass("site-banner").R(
		b.H1Class("site-title").T(bn.Title),
		b.Nav("class", "site-nav").R(
			bn.link(b, "/register", "Register", "register"),
			bn.link(b, "/login", "Sign In", "login"),
		),
	)
	return nil
}

func (bn Banner) link(b *element.Builder, href, label, key string) any {
	class := "nav-link"
	if bn.Active == key {
		class += " active"
	}
	return b.A("href", href, "class", class).T(label)
}
