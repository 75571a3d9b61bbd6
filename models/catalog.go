package models

// CountryCities pairs a country with its cities in display order
type CountryCities struct {
	Country string
	Cities  []string
}

// Catalog is the static country -> cities lookup that feeds the city selector.
// Order of insertion is display order for both countries and cities.
// A Catalog is never mutated after construction; accessors hand out copies.
type Catalog struct {
	entries []CountryCities
	index   map[string]int
}

// NewCatalog builds a catalog from country/cities pairs given in display order.
// A repeated country replaces the earlier city list but keeps its first position.
func NewCatalog(pairs ...CountryCities) *Catalog {
	c := &Catalog{index: make(map[string]int, len(pairs))}
	for _, p := range pairs {
		cities := append([]string(nil), p.Cities...)
		if i, ok := c.index[p.Country]; ok {
			c.entries[i].Cities = cities
			continue
		}
		c.index[p.Country] = len(c.entries)
		c.entries = append(c.entries, CountryCities{Country: p.Country, Cities: cities})
	}
	return c
}

// DefaultCatalog is the compiled-in catalog served by the page
var DefaultCatalog = NewCatalog(
	CountryCities{"Bangladesh", []string{"Dhaka", "Chittagong", "Khulna", "Rajshahi", "Sylhet"}},
	CountryCities{"United States", []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix"}},
	CountryCities{"Australia", []string{"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide"}},
	CountryCities{"Canada", []string{"Toronto", "Vancouver", "Montreal", "Calgary", "Ottawa"}},
	CountryCities{"India", []string{"Delhi", "Mumbai", "Bangalore", "Hyderabad", "Chennai"}},
)

// Countries returns the country names in display order
func (c *Catalog) Countries() []string {
	out := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.Country)
	}
	return out
}

// Cities returns the cities for a country, or false if the country is unknown
func (c *Catalog) Cities(country string) ([]string, bool) {
	i, ok := c.index[country]
	if !ok {
		return nil, false
	}
	return append([]string(nil), c.entries[i].Cities...), true
}

// Has reports whether the country is in the catalog
func (c *Catalog) Has(country string) bool {
	_, ok := c.index[country]
	return ok
}

// HasCity reports whether city is listed for country
func (c *Catalog) HasCity(country, city string) bool {
	i, ok := c.index[country]
	if !ok {
		return false
	}
	for _, name := range c.entries[i].Cities {
		if name == city {
			return true
		}
	}
	return false
}
