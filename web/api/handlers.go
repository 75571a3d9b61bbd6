package api

import (
	"net/http"
	"net/url"
	"strconv"

	"aqiform/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// Handlers serves the read-only catalog and AQI data plus stateless
// validation. Nothing an API client sends is stored.
type Handlers struct {
	catalog *models.Catalog
	orch    *models.Orchestrator
}

// NewHandlers returns API handlers over catalog, validating with orch's policy
func NewHandlers(catalog *models.Catalog, orch *models.Orchestrator) *Handlers {
	return &Handlers{catalog: catalog, orch: orch}
}

// CityList is the response for one country's cities
type CityList struct {
	Country string   `json:"country"`
	Cities  []string `json:"cities"`
}

// AQIReading is a classified AQI value
type AQIReading struct {
	City        string          `json:"city,omitempty"`
	Value       int             `json:"value"`
	Level       string          `json:"level"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Color       models.ColorTag `json:"color"`
}

// ValidationResult lists the failing fields of a submission by key
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

func newReading(city string, value int) AQIReading {
	tier := models.TierFor(value)
	return AQIReading{
		City:        city,
		Value:       value,
		Level:       tier.Level,
		Description: tier.Description,
		Status:      tier.Status(),
		Color:       tier.Color,
	}
}

func newValidationResult(checks models.Checks) ValidationResult {
	errs := make(map[string]string)
	for key, msg := range checks.Failures() {
		errs[string(key)] = msg
	}
	return ValidationResult{Valid: checks.Valid(), Errors: errs}
}

// ListCountries handles GET /api/v1/countries
func (h *Handlers) ListCountries(ctx rweb.Context) error {
	return writeSuccess(ctx, http.StatusOK, h.catalog.Countries())
}

// ListCities handles GET /api/v1/countries/:country/cities
func (h *Handlers) ListCities(ctx rweb.Context) error {
	country := ctx.Request().Param("country")
	if unescaped, err := url.PathUnescape(country); err == nil {
		country = unescaped
	}

	cities, ok := h.catalog.Cities(country)
	if !ok {
		return writeError(ctx, http.StatusNotFound, "unknown country")
	}
	return writeSuccess(ctx, http.StatusOK, CityList{Country: country, Cities: cities})
}

// ListTiers handles GET /api/v1/aqi/tiers
func (h *Handlers) ListTiers(ctx rweb.Context) error {
	return writeSuccess(ctx, http.StatusOK, models.AQITiers)
}

// GetAQI handles GET /api/v1/aqi
//
// With ?city= it draws a mock reading for a catalog city. With ?value= it
// classifies the given value instead.
func (h *Handlers) GetAQI(ctx rweb.Context) error {
	req := ctx.Request()

	if valueStr := req.QueryParam("value"); valueStr != "" {
		value, err := strconv.Atoi(valueStr)
		if err != nil || value < 0 {
			return writeError(ctx, http.StatusBadRequest, "value must be a non-negative integer")
		}
		return writeSuccess(ctx, http.StatusOK, newReading("", value))
	}

	city := req.QueryParam("city")
	if city == "" {
		return writeError(ctx, http.StatusBadRequest, "city or value is required")
	}
	if !h.knownCity(city) {
		return writeError(ctx, http.StatusNotFound, "unknown city")
	}

	value := h.orch.Cascade.Sampler.Draw()
	logger.Debug("Mock AQI drawn via API", "city", city, "value", value)
	return writeSuccess(ctx, http.StatusOK, newReading(city, value))
}

func (h *Handlers) knownCity(city string) bool {
	for _, country := range h.catalog.Countries() {
		if h.catalog.HasCity(country, city) {
			return true
		}
	}
	return false
}

// ValidateRegistration handles POST /api/v1/registrations/validate
func (h *Handlers) ValidateRegistration(ctx rweb.Context) error {
	var input models.RegistrationForm
	if err := decodeBody(ctx, &input); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	checks := models.CheckRegistration(input, h.orch.Now(), h.orch.Policy.MinAge)
	return writeSuccess(ctx, http.StatusOK, newValidationResult(checks))
}

// ValidateLogin handles POST /api/v1/logins/validate
func (h *Handlers) ValidateLogin(ctx rweb.Context) error {
	var input models.LoginForm
	if err := decodeBody(ctx, &input); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	return writeSuccess(ctx, http.StatusOK, newValidationResult(models.CheckLogin(input)))
}
