package auth

import (
	"strconv"

	"aqiform/models"
	"aqiform/web/pages/comps"
	"aqiform/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// RegisterView renders the registration page from one visitor's page state
type RegisterView struct {
	shared.Page
	El        Elements
	State     *models.RegistrationPage
	Countries []string
	MinAge    int
}

// NewRegisterView creates the view for state
func NewRegisterView(el Elements, state *models.RegistrationPage, countries []string, minAge int) RegisterView {
	return RegisterView{
		Page:      shared.Page{Title: "Register - AirCheck", Active: "register"},
		El:        el,
		State:     state,
		Countries: countries,
		MinAge:    minAge,
	}
}

// Render generates the full HTML document
func (v RegisterView) Render() string {
	return v.Document(container{registerCard{v}})
}

// RenderCard generates only the card, which is what a submit swaps
func (v RegisterView) RenderCard() string {
	b := element.NewBuilder()
	element.RenderComponents(b, registerCard{v})
	return b.String()
}

type registerCard struct {
	v RegisterView
}

func (c registerCard) Render(b *element.Builder) (x any) {
	v := c.v
	st := v.State
	form := st.Form

	b.Div("class", "auth-card", "id", v.El.RegisterCard()).R(
		element.RenderComponents(b, comps.Heading{
			Title:    "Create your account",
			Subtitle: "Check the air quality where you live",
		}),

		b.Form("class", "auth-form", "id", v.El.RegisterForm(), "method", "post", "action", "/register",
			"novalidate", "novalidate",
			"hx-post", "/register", "hx-target", Target(v.El.RegisterCard()), "hx-swap", "outerHTML").R(
			element.RenderComponents(b,
				TextField{El: v.El, Key: models.FieldFullName, Label: "Full Name", Type: "text",
					Value: form.FullName, Placeholder: "Your full name", Errors: st.Errors,
					Extra: []string{"autocomplete", "name"}},
				TextField{El: v.El, Key: models.FieldEmail, Label: "Email", Type: "email",
					Value: form.Email, Placeholder: "you@example.com", Errors: st.Errors,
					Extra: []string{"autocomplete", "email"}},
				TextField{El: v.El, Key: models.FieldPassword, Label: "Password", Type: "password",
					Placeholder: "At least 8 characters, one uppercase, one number",
					Errors: st.Errors, Extra: []string{"autocomplete", "new-password"}},
				TextField{El: v.El, Key: models.FieldConfirmPassword, Label: "Confirm Password", Type: "password",
					Placeholder: "Repeat your password", Errors: st.Errors,
					Extra: []string{"autocomplete", "new-password"}},
				TextField{El: v.El, Key: models.FieldDOB, Label: "Date of Birth", Type: "date",
					Value: form.DOB, Hint: dobHint(v.MinAge), Errors: st.Errors},
				GenderField{El: v.El, Value: form.Gender, Errors: st.Errors},
				CountryField{El: v.El, Countries: v.Countries, Value: form.Country, Errors: st.Errors},
				AQIPanel{El: v.El, Cities: st.Cities, AQI: st.AQI},
				TermsField{El: v.El, Checked: form.TermsAccepted, Errors: st.Errors},
			),
			b.Button("type", "submit", "class", "auth-submit", "id", "submit-btn").T("Create Account"),
		),

		b.Div("class", "auth-footer").R(
			b.Span().T("Already have an account? "),
			b.A("href", "/login").T("Sign in"),
		),

		element.RenderComponents(b,
			TermsModal(v.El, st.Terms),
			SuccessModal(v.El, st.Success),
		),
	)
	return
}

// container is the centering wrapper around a card on full-page renders
type container struct {
	card element.Component
}

func (c container) Render(b *element.Builder) (x any) {
	b.Div("class", "auth-container").R(
		element.RenderComponents(b, c.card),
	)
	return
}

func dobHint(minAge int) string {
	if minAge <= 0 {
		return "Must be a date in the past"
	}
	return "You must be at least " + strconv.Itoa(minAge) + " years old"
}
