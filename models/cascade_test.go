package models

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func newTestCascade() *Cascade {
	return &Cascade{Catalog: DefaultCatalog, Sampler: NewSampler(rand.NewPCG(3, 4))}
}

// TestCatalog tests lookups and that callers cannot mutate the catalog.
func TestCatalog(t *testing.T) {
	countries := DefaultCatalog.Countries()
	want := []string{"Bangladesh", "United States", "Australia", "Canada", "India"}
	if !reflect.DeepEqual(countries, want) {
		t.Fatalf("Countries() = %v, want %v", countries, want)
	}

	cities, ok := DefaultCatalog.Cities("Canada")
	if !ok || len(cities) != 5 || cities[0] != "Toronto" {
		t.Fatalf("Cities(Canada) = %v, %v", cities, ok)
	}
	cities[0] = "Changed"
	again, _ := DefaultCatalog.Cities("Canada")
	if again[0] != "Toronto" {
		t.Error("mutating a returned slice changed the catalog")
	}

	if _, ok := DefaultCatalog.Cities("Atlantis"); ok {
		t.Error("unknown country should not be found")
	}
	if !DefaultCatalog.HasCity("India", "Mumbai") || DefaultCatalog.HasCity("India", "Toronto") {
		t.Error("HasCity gave a wrong answer")
	}
}

// TestNewCatalogRepeatedCountry verifies a repeated country keeps its position.
func TestNewCatalogRepeatedCountry(t *testing.T) {
	c := NewCatalog(
		CountryCities{"A", []string{"a1"}},
		CountryCities{"B", []string{"b1"}},
		CountryCities{"A", []string{"a2", "a3"}},
	)
	if got := c.Countries(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("Countries() = %v", got)
	}
	if got, _ := c.Cities("A"); !reflect.DeepEqual(got, []string{"a2", "a3"}) {
		t.Errorf("Cities(A) = %v", got)
	}
}

// TestOnCountryChange tests option replacement and collapse.
func TestOnCountryChange(t *testing.T) {
	c := newTestCascade()
	var sel CitySelector
	disp := NewAQIDisplay()

	t.Run("known country fills options", func(t *testing.T) {
		c.OnCountryChange(&sel, &disp, "Bangladesh")
		want, _ := DefaultCatalog.Cities("Bangladesh")
		if !reflect.DeepEqual(sel.Options, want) {
			t.Errorf("options = %v, want %v", sel.Options, want)
		}
		if sel.Placeholder() != PlaceholderCity {
			t.Errorf("placeholder = %q", sel.Placeholder())
		}
	})

	t.Run("switching country replaces, never appends", func(t *testing.T) {
		c.OnCountryChange(&sel, &disp, "Australia")
		want, _ := DefaultCatalog.Cities("Australia")
		if !reflect.DeepEqual(sel.Options, want) {
			t.Errorf("options = %v, want %v", sel.Options, want)
		}
	})

	t.Run("same country twice is idempotent", func(t *testing.T) {
		c.OnCountryChange(&sel, &disp, "Australia")
		first := append([]string(nil), sel.Options...)
		c.OnCountryChange(&sel, &disp, "Australia")
		if !reflect.DeepEqual(sel.Options, first) {
			t.Errorf("options changed on repeat: %v vs %v", sel.Options, first)
		}
	})

	t.Run("empty country collapses", func(t *testing.T) {
		c.OnCountryChange(&sel, &disp, "")
		if len(sel.Options) != 0 || sel.Placeholder() != PlaceholderNoCountry {
			t.Errorf("selector not collapsed: %+v", sel)
		}
	})

	t.Run("unknown country collapses", func(t *testing.T) {
		c.OnCountryChange(&sel, &disp, "Canada")
		c.OnCountryChange(&sel, &disp, "Atlantis")
		if len(sel.Options) != 0 || sel.Placeholder() != PlaceholderNoCountry {
			t.Errorf("selector not collapsed: %+v", sel)
		}
	})
}

// TestCountryChangeResetsDisplay verifies a country change clears a shown reading.
func TestCountryChangeResetsDisplay(t *testing.T) {
	c := newTestCascade()
	var sel CitySelector
	disp := NewAQIDisplay()

	c.OnCountryChange(&sel, &disp, "India")
	if _, shown := c.OnCityChange(&sel, &disp, "Delhi"); !shown {
		t.Fatal("expected a reading for Delhi")
	}
	if !disp.HasData() {
		t.Fatal("display should hold data")
	}

	c.OnCountryChange(&sel, &disp, "Canada")
	if disp.Value != AQINoValue || disp.Status != AQINoData || disp.Color != ColorNone {
		t.Errorf("display not reset: %+v", disp)
	}
	if sel.Selected != "" {
		t.Errorf("selected city should clear, got %q", sel.Selected)
	}
}

// TestOnCityChange tests the reading shown for a city and the reset paths.
func TestOnCityChange(t *testing.T) {
	c := newTestCascade()
	var sel CitySelector
	disp := NewAQIDisplay()
	c.OnCountryChange(&sel, &disp, "United States")

	value, shown := c.OnCityChange(&sel, &disp, "Chicago")
	if !shown {
		t.Fatal("expected a reading")
	}
	tier := TierFor(value)
	if disp.Status != tier.Status() || disp.Color != tier.Color {
		t.Errorf("display %+v does not match tier %+v", disp, tier)
	}
	if sel.Selected != "Chicago" {
		t.Errorf("selected = %q", sel.Selected)
	}

	if _, shown := c.OnCityChange(&sel, &disp, ""); shown {
		t.Error("empty city should not draw")
	}
	if disp.HasData() || disp.Color != ColorNone {
		t.Errorf("display should reset on empty city: %+v", disp)
	}

	if _, shown := c.OnCityChange(&sel, &disp, "Toronto"); shown {
		t.Error("a city from another country should not draw")
	}
}

// TestAQIDisplayShowsOneColor verifies only the latest tier color remains.
func TestAQIDisplayShowsOneColor(t *testing.T) {
	disp := NewAQIDisplay()
	disp.Show(20)
	disp.Show(250)
	if disp.Color != ColorVeryUnhealthy || disp.Value != "250" {
		t.Errorf("display = %+v", disp)
	}
	disp.Reset()
	if disp.Color != ColorNone || disp.Value != AQINoValue {
		t.Errorf("reset display = %+v", disp)
	}
}
