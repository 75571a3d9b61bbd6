package auth

import (
	"html"

	"aqiform/models"

	"github.com/rohanthewiz/element"
)

// esc escapes user-supplied text; the builder writes attributes and text as given
func esc(s string) string {
	return html.EscapeString(s)
}

// ErrorSlot renders the message element bound to one field. A slot with no
// message is empty and carries the hidden class.
type ErrorSlot struct {
	El     Elements
	Key    models.FieldKey
	Errors *models.ErrorPanel
}

func (s ErrorSlot) Render(b *element.Builder) (x any) {
	msg := s.Errors.Message(s.Key)
	class := "error"
	if msg == "" {
		class = "error hidden"
	}
	b.Div("class", class, "id", s.El.ErrorSlot(s.Key), "data-field", string(s.Key)).T(esc(msg))
	return
}

// TextField is a labelled input followed by its error slot
type TextField struct {
	El          Elements
	Key         models.FieldKey
	Label       string
	Type        string
	Value       string
	Placeholder string
	Hint        string
	Errors      *models.ErrorPanel
	Extra       []string
}

func (f TextField) Render(b *element.Builder) (x any) {
	attrs := []string{
		"type", f.Type, "class", "form-input", "id", f.El.Input(f.Key),
		"name", string(f.Key), "value", esc(f.Value),
	}
	if f.Placeholder != "" {
		attrs = append(attrs, "placeholder", f.Placeholder)
	}
	if f.Errors.Visible(f.Key) {
		attrs = append(attrs, "aria-invalid", "true")
	}
	attrs = append(attrs, f.Extra...)

	b.DivClass("form-group").R(
		b.LabelClass("form-label", "for", f.El.Input(f.Key)).T(f.Label),
		b.Input(attrs...),
		b.Wrap(func() {
			if f.Hint != "" {
				b.Small("class", "text-muted").T(f.Hint)
			}
		}),
		element.RenderComponents(b, ErrorSlot{El: f.El, Key: f.Key, Errors: f.Errors}),
	)
	return
}

// GenderField is the radio group; at most one option carries checked
type GenderField struct {
	El     Elements
	Value  string
	Errors *models.ErrorPanel
}

func (g GenderField) Render(b *element.Builder) (x any) {
	b.DivClass("form-group").R(
		b.SpanClass("form-label").T("Gender"),
		b.Div("class", "radio-group", "id", g.El.Input(models.FieldGender)).R(
			b.Wrap(func() {
				for _, opt := range models.GenderOptions {
					id := g.El.Input(models.FieldGender) + "-" + opt
					attrs := []string{"type", "radio", "id", id, "name", string(models.FieldGender), "value", opt}
					if g.Value == opt {
						attrs = append(attrs, "checked", "checked")
					}
					b.Label("class", "radio-option", "for", id).R(
						b.Input(attrs...),
						b.Span().T(genderLabel(opt)),
					)
				}
			}),
		),
		element.RenderComponents(b, ErrorSlot{El: g.El, Key: models.FieldGender, Errors: g.Errors}),
	)
	return
}

func genderLabel(opt string) string {
	switch opt {
	case "male":
		return "Male"
	case "female":
		return "Female"
	}
	return "Other"
}

// CountryField is the cascade's parent selector. Changing it asks the server
// to rebuild the AQI panel.
type CountryField struct {
	El        Elements
	Countries []string
	Value     string
	Errors    *models.ErrorPanel
}

func (c CountryField) Render(b *element.Builder) (x any) {
	b.DivClass("form-group").R(
		b.LabelClass("form-label", "for", c.El.Input(models.FieldCountry)).T("Country"),
		b.Select("class", "form-input", "id", c.El.Input(models.FieldCountry), "name", string(models.FieldCountry),
			"hx-get", "/register/cities", "hx-trigger", "change",
			"hx-target", Target(c.El.AQIPanel()), "hx-swap", "outerHTML").R(
			b.Option("value", "").T("Select a country"),
			b.Wrap(func() {
				for _, country := range c.Countries {
					attrs := []string{"value", esc(country)}
					if country == c.Value {
						attrs = append(attrs, "selected", "selected")
					}
					b.Option(attrs...).T(esc(country))
				}
			}),
		),
		element.RenderComponents(b, ErrorSlot{El: c.El, Key: models.FieldCountry, Errors: c.Errors}),
	)
	return
}

// TermsField is the terms checkbox with the link that opens the terms modal
type TermsField struct {
	El      Elements
	Checked bool
	Errors  *models.ErrorPanel
}

func (t TermsField) Render(b *element.Builder) (x any) {
	attrs := []string{"type", "checkbox", "id", t.El.Input(models.FieldTerms), "name", string(models.FieldTerms), "value", "on"}
	if t.Checked {
		attrs = append(attrs, "checked", "checked")
	}

	b.DivClass("form-group").R(
		b.Label("class", "checkbox-label", "for", t.El.Input(models.FieldTerms)).R(
			b.Input(attrs...),
			b.Span().T("I agree to the "),
		),
		b.A("href", "#", "id", t.El.TermsLink(),
			"hx-post", "/modals/terms/open",
			"hx-target", Target(t.El.Modal(models.ModalTerms)), "hx-swap", "outerHTML").T("Terms and Conditions"),
		element.RenderComponents(b, ErrorSlot{El: t.El, Key: models.FieldTerms, Errors: t.Errors}),
	)
	return
}
