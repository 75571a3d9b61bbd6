package auth

import (
	"strings"

	"aqiform/models"

	"github.com/rohanthewiz/element"
)

// AQIPanel is the city selector together with the AQI display. A country
// change swaps the whole panel so both reset in one response.
type AQIPanel struct {
	El     Elements
	Cities models.CitySelector
	AQI    models.AQIDisplay
}

func (p AQIPanel) Render(b *element.Builder) (x any) {
	selectAttrs := []string{
		"class", "form-input", "id", p.El.CitySelect(), "name", "city",
		"hx-get", "/register/aqi", "hx-trigger", "change",
		"hx-target", Target(p.El.AQIDisplay()), "hx-swap", "outerHTML",
	}
	if len(p.Cities.Options) == 0 {
		selectAttrs = append(selectAttrs, "disabled", "disabled")
	}

	b.Div("class", "aqi-panel", "id", p.El.AQIPanel()).R(
		b.DivClass("form-group").R(
			b.LabelClass("form-label", "for", p.El.CitySelect()).T("City"),
			b.Select(selectAttrs...).R(
				b.Option("value", "").T(p.Cities.Placeholder()),
				b.Wrap(func() {
					for _, city := range p.Cities.Options {
						attrs := []string{"value", esc(city)}
						if city == p.Cities.Selected {
							attrs = append(attrs, "selected", "selected")
						}
						b.Option(attrs...).T(esc(city))
					}
				}),
			),
		),
		element.RenderComponents(b, AQIDisplayView{El: p.El, AQI: p.AQI}),
	)
	return
}

// AQIDisplayView renders the value, its status line and the single color class
type AQIDisplayView struct {
	El  Elements
	AQI models.AQIDisplay
}

func (v AQIDisplayView) Render(b *element.Builder) (x any) {
	valueClass := []string{"aqi-value"}
	if v.AQI.Color != models.ColorNone {
		valueClass = append(valueClass, string(v.AQI.Color))
	}

	b.Div("class", "aqi-display", "id", v.El.AQIDisplay()).R(
		b.SpanClass("aqi-label").T("Air Quality Index"),
		b.Span("class", strings.Join(valueClass, " "), "id", v.El.AQIValue()).T(esc(v.AQI.Value)),
		b.P("class", "aqi-status", "id", v.El.AQIStatus()).T(esc(v.AQI.Status)),
	)
	return
}

// RenderAQIPanel returns the panel fragment for htmx swaps
func RenderAQIPanel(el Elements, cities models.CitySelector, aqi models.AQIDisplay) string {
	b := element.NewBuilder()
	element.RenderComponents(b, AQIPanel{El: el, Cities: cities, AQI: aqi})
	return b.String()
}

// RenderAQIDisplay returns the display fragment for htmx swaps
func RenderAQIDisplay(el Elements, aqi models.AQIDisplay) string {
	b := element.NewBuilder()
	element.RenderComponents(b, AQIDisplayView{El: el, AQI: aqi})
	return b.String()
}
