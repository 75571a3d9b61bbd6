package web

import (
	"net/http"
	"net/url"
	"strings"

	"aqiform/models"
	"aqiform/web/pages/auth"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// modalAction is the transition a modal route applies
type modalAction string

const (
	modalOpen  modalAction = "open"
	modalClose modalAction = "close"
	modalClick modalAction = "click"
)

// isHTMX reports whether the request came from an htmx swap rather than a
// plain browser navigation
func isHTMX(c rweb.Context) bool {
	return c.Request().Header("HX-Request") == "true"
}

// formValues parses a url-encoded request body. A malformed body yields
// whatever pairs parsed before the error.
func formValues(c rweb.Context) url.Values {
	vals, err := url.ParseQuery(string(c.Request().Body()))
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to parse form body"), "form submit",
			"path", c.Request().Path())
	}
	return vals
}

func registrationInput(vals url.Values) models.RegistrationForm {
	return models.RegistrationForm{
		FullName:        vals.Get(string(models.FieldFullName)),
		Email:           vals.Get(string(models.FieldEmail)),
		Password:        vals.Get(string(models.FieldPassword)),
		ConfirmPassword: vals.Get(string(models.FieldConfirmPassword)),
		DOB:             vals.Get(string(models.FieldDOB)),
		Gender:          vals.Get(string(models.FieldGender)),
		Country:         vals.Get(string(models.FieldCountry)),
		City:            vals.Get("city"),
		TermsAccepted:   vals.Get(string(models.FieldTerms)) != "",
	}
}

func loginInput(vals url.Values) models.LoginForm {
	return models.LoginForm{
		User:     vals.Get(string(models.FieldLoginUser)),
		Password: vals.Get(string(models.FieldLoginPassword)),
	}
}

func (a *App) registerView(page *models.RegistrationPage) auth.RegisterView {
	return auth.NewRegisterView(a.El, page, a.Catalog.Countries(), a.Config.MinAge)
}

// RegisterPage handles GET / and GET /register
func (a *App) RegisterPage(c rweb.Context) error {
	var html string
	a.session(c).Do(func(reg *models.RegistrationPage, _ *models.LoginPage) {
		html = a.registerView(reg).Render()
	})
	return c.WriteHTML(html)
}

// RegisterSubmit handles POST /register. htmx requests get the card back,
// plain posts get the whole page.
func (a *App) RegisterSubmit(c rweb.Context) error {
	input := registrationInput(formValues(c))

	var html string
	a.session(c).Do(func(reg *models.RegistrationPage, _ *models.LoginPage) {
		checks := a.Orchestrator.SubmitRegistration(reg, input)
		// Password inputs always render empty, so nothing needs them kept
		reg.Form.Password, reg.Form.ConfirmPassword = "", ""
		logger.Debug("Registration submitted", "valid", checks.Valid(), "failures", len(checks.Failures()))

		view := a.registerView(reg)
		if isHTMX(c) {
			html = view.RenderCard()
		} else {
			html = view.Render()
		}
	})
	return c.WriteHTML(html)
}

// RegisterCities handles GET /register/cities?country=. The response is the
// AQI panel, so the city options and the display reset together.
func (a *App) RegisterCities(c rweb.Context) error {
	country := c.Request().QueryParam(string(models.FieldCountry))

	var html string
	a.session(c).Do(func(reg *models.RegistrationPage, _ *models.LoginPage) {
		reg.Form.Country = country
		reg.Form.City = ""
		a.Orchestrator.Cascade.OnCountryChange(&reg.Cities, &reg.AQI, country)
		html = auth.RenderAQIPanel(a.El, reg.Cities, reg.AQI)
	})
	return c.WriteHTML(html)
}

// RegisterAQI handles GET /register/aqi?city=
func (a *App) RegisterAQI(c rweb.Context) error {
	city := c.Request().QueryParam("city")

	var html string
	a.session(c).Do(func(reg *models.RegistrationPage, _ *models.LoginPage) {
		value, shown := a.Orchestrator.Cascade.OnCityChange(&reg.Cities, &reg.AQI, city)
		reg.Form.City = reg.Cities.Selected
		if shown {
			logger.Debug("Mock AQI drawn", "city", city, "value", value)
		}
		html = auth.RenderAQIDisplay(a.El, reg.AQI)
	})
	return c.WriteHTML(html)
}

// ModalHandler returns the handler for one modal transition on
// /modals/:name/<action>
func (a *App) ModalHandler(action modalAction) rweb.Handler {
	return func(c rweb.Context) error {
		name := models.ModalName(c.Request().Param("name"))

		target := models.ClickBackground
		if action == modalClick {
			target = models.ClickTarget(formValues(c).Get("target"))
			if target != models.ClickBackground && target != models.ClickContent {
				c.SetStatus(http.StatusBadRequest)
				return c.WriteHTML("unknown click target")
			}
		}

		var (
			html  string
			found bool
		)
		a.session(c).Do(func(reg *models.RegistrationPage, _ *models.LoginPage) {
			m, ok := reg.Modal(name)
			if !ok {
				return
			}
			found = true

			switch action {
			case modalOpen:
				m.Open()
			case modalClose:
				m.Close()
			case modalClick:
				m.Click(target)
			}
			html = auth.RenderModal(a.El, *m)
		})

		if !found {
			c.SetStatus(http.StatusNotFound)
			return c.WriteHTML("unknown modal")
		}
		return c.WriteHTML(html)
	}
}

func (a *App) loginView(page *models.LoginPage) auth.LoginView {
	return auth.NewLoginView(a.El, page)
}

// LoginPage handles GET /login
func (a *App) LoginPage(c rweb.Context) error {
	var html string
	a.session(c).Do(func(_ *models.RegistrationPage, login *models.LoginPage) {
		html = a.loginView(login).Render()
	})
	return c.WriteHTML(html)
}

// LoginSubmit handles POST /login
func (a *App) LoginSubmit(c rweb.Context) error {
	input := loginInput(formValues(c))

	var html string
	a.session(c).Do(func(_ *models.RegistrationPage, login *models.LoginPage) {
		checks := a.Orchestrator.SubmitLogin(login, input)
		login.Form.Password = ""
		logger.Debug("Login submitted", "valid", checks.Valid(),
			"mode", string(a.Orchestrator.Policy.LoginErrors))

		view := a.loginView(login)
		if isHTMX(c) {
			html = view.RenderCard()
		} else {
			html = view.Render()
		}
	})
	return c.WriteHTML(html)
}

// Health handles GET /health
func (a *App) Health(c rweb.Context) error {
	return c.WriteJSON(map[string]interface{}{
		"status":   "ok",
		"sessions": a.Sessions.Len(),
		"policy": map[string]interface{}{
			"min_age":      a.Config.MinAge,
			"login_errors": strings.ToLower(a.Config.LoginErrors),
		},
	})
}
