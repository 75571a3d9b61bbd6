// Package shared contains components used by more than one page.
package shared

import "github.com/rohanthewiz/element"

// HtmxSrc is the htmx build every page loads
const HtmxSrc = "https://unpkg.com/htmx.org@1.9.12"

// Page is embedded by page structs (mixin pattern) to share the document
// head, the banner and the footer.
//
// Example usage:
//
//	type RegisterView struct {
//	    shared.Page
//	    ...
//	}
type Page struct {
	Title string
	// Active is the nav entry highlighted in the banner
	Active string
}

// Head renders <head>. The stylesheet is served from the embedded static FS.
func (p Page) Head(b *element.Builder) any {
	return b.Head().R(
		b.Meta("charset", "UTF-8"),
		b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
		b.Title().T(p.Title),
		b.Link("rel", "stylesheet", "href", "/static/css/app.css"),
		b.Script("src", HtmxSrc).R(),
	)
}

// Banner returns the site banner for this page
func (p Page) Banner() Banner {
	return Banner{Title: "AirCheck", Active: p.Active}
}

// Footer returns the page footer
func (p Page) Footer() Footer {
	return Footer{}
}

// Document wraps body in the html/head/body skeleton shared by every page
func (p Page) Document(body element.Component) string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		p.Head(b),
		b.Body().R(
			element.RenderComponents(b, p.Banner(), body, p.Footer()),
		),
	)

	return "<!DOCTYPE html>" + b.String()
}
