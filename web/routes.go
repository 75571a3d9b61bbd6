package web

import (
	"aqiform/web/api"

	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server, app *App) {
	// Page routes - HTML responses
	s.Get("/", app.RegisterPage)
	s.Get("/register", app.RegisterPage)
	s.Post("/register", app.RegisterSubmit)
	s.Get("/login", app.LoginPage)
	s.Post("/login", app.LoginSubmit)

	// Fragment routes - htmx swaps into the registration page
	s.Get("/register/cities", app.RegisterCities) // Country changed: new AQI panel
	s.Get("/register/aqi", app.RegisterAQI)       // City changed: new AQI display

	s.Post("/modals/:name/open", app.ModalHandler(modalOpen))
	s.Post("/modals/:name/close", app.ModalHandler(modalClose))
	s.Post("/modals/:name/click", app.ModalHandler(modalClick))

	s.Get("/health", app.Health)

	// API v1 routes - JSON (or msgpack) responses, nothing is stored
	h := api.NewHandlers(app.Catalog, app.Orchestrator)
	s.Get("/api/v1/countries", h.ListCountries)
	s.Get("/api/v1/countries/:country/cities", h.ListCities)
	s.Get("/api/v1/aqi/tiers", h.ListTiers)
	s.Get("/api/v1/aqi", h.GetAQI)
	s.Post("/api/v1/registrations/validate", h.ValidateRegistration)
	s.Post("/api/v1/logins/validate", h.ValidateLogin)
}
