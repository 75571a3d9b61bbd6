package models

import "strconv"

// Placeholder texts shown by the dependent widgets
const (
	PlaceholderNoCountry = "Select a country first"
	PlaceholderCity      = "Select a city"
	AQINoValue           = "--"
	AQINoData            = "Select a city to view AQI"
)

// CitySelector is the dependent city dropdown
type CitySelector struct {
	Country  string   `json:"country"`
	Options  []string `json:"options"`
	Selected string   `json:"selected,omitempty"`
}

// Collapse returns the selector to its empty placeholder state
func (s *CitySelector) Collapse() {
	*s = CitySelector{}
}

// Placeholder is the text of the leading empty option
func (s CitySelector) Placeholder() string {
	if len(s.Options) == 0 {
		return PlaceholderNoCountry
	}
	return PlaceholderCity
}

// Offers reports whether city is one of the current options
func (s CitySelector) Offers(city string) bool {
	for _, c := range s.Options {
		if c == city {
			return true
		}
	}
	return false
}

// AQIDisplay is the value/status pair plus its single color tag
type AQIDisplay struct {
	Value  string   `json:"value"`
	Status string   `json:"status"`
	Color  ColorTag `json:"color,omitempty"`
}

// NewAQIDisplay returns a display in its "no data" state
func NewAQIDisplay() AQIDisplay {
	return AQIDisplay{Value: AQINoValue, Status: AQINoData}
}

// Reset puts the display back to "no data" and drops any color tag
func (d *AQIDisplay) Reset() {
	*d = NewAQIDisplay()
}

// Show renders value with its tier. The previous color tag is always replaced.
func (d *AQIDisplay) Show(value int) AQITier {
	tier := TierFor(value)
	d.Value = strconv.Itoa(value)
	d.Status = tier.Status()
	d.Color = tier.Color
	return tier
}

// HasData reports whether a value is on display
func (d AQIDisplay) HasData() bool {
	return d.Value != AQINoValue
}

// Cascade wires the catalog and the sampler to the two dependent widgets
type Cascade struct {
	Catalog *Catalog
	Sampler *Sampler
}

// NewCascade returns a cascade over the default catalog and a clock-seeded sampler
func NewCascade() *Cascade {
	return &Cascade{Catalog: DefaultCatalog, Sampler: NewSampler(nil)}
}

// OnCountryChange fully replaces the city options with the country's list.
// An empty or unknown country collapses the selector. The AQI display is reset either way.
func (c *Cascade) OnCountryChange(sel *CitySelector, disp *AQIDisplay, country string) {
	disp.Reset()
	cities, ok := c.Catalog.Cities(country)
	if country == "" || !ok {
		sel.Collapse()
		return
	}
	*sel = CitySelector{Country: country, Options: cities}
}

// OnCityChange draws a mock reading for a city offered by the selector.
// It returns the drawn value and false when the display was reset instead.
func (c *Cascade) OnCityChange(sel *CitySelector, disp *AQIDisplay, city string) (int, bool) {
	if city == "" || !sel.Offers(city) {
		sel.Selected = ""
		disp.Reset()
		return 0, false
	}
	sel.Selected = city
	value := c.Sampler.Draw()
	disp.Show(value)
	return value, true
}
