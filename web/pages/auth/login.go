package auth

import (
	"aqiform/models"
	"aqiform/web/pages/comps"
	"aqiform/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// LoginView represents the login page
type LoginView struct {
	shared.Page
	El    Elements
	State *models.LoginPage
}

// NewLoginView creates a new login page view
func NewLoginView(el Elements, state *models.LoginPage) LoginView {
	return LoginView{
		Page:  shared.Page{Title: "Sign In - AirCheck", Active: "login"},
		El:    el,
		State: state,
	}
}

// Render generates the HTML for the login page
func (v LoginView) Render() string {
	return v.Document(container{loginCard{v}})
}

// RenderCard generates the card fragment swapped in after a submit
func (v LoginView) RenderCard() string {
	b := element.NewBuilder()
	element.RenderComponents(b, loginCard{v})
	return b.String()
}

type loginCard struct {
	v LoginView
}

func (c loginCard) Render(b *element.Builder) (x any) {
	v := c.v
	st := v.State

	b.Div("class", "auth-card", "id", v.El.LoginCard()).R(
		element.RenderComponents(b, comps.Heading{Title: "Sign in to your account"}),

		// Alert box, used when login errors are collected in one place
		b.Wrap(func() {
			if len(st.Alert) == 0 {
				b.Div("class", "auth-error hidden", "id", v.El.LoginAlert(), "role", "alert").R()
				return
			}
			b.Div("class", "auth-error", "id", v.El.LoginAlert(), "role", "alert").R(
				b.Ul().R(
					b.Wrap(func() {
						for _, msg := range st.Alert {
							b.Li().T(esc(msg))
						}
					}),
				),
			)
		}),

		b.Wrap(func() {
			if st.Notice != "" {
				b.Div("class", "auth-notice", "id", v.El.LoginNotice()).T(esc(st.Notice))
			}
		}),

		b.Form("class", "auth-form", "id", v.El.LoginForm(), "method", "post", "action", "/login",
			"novalidate", "novalidate",
			"hx-post", "/login", "hx-target", Target(v.El.LoginCard()), "hx-swap", "outerHTML").R(
			element.RenderComponents(b,
				TextField{El: v.El, Key: models.FieldLoginUser, Label: "Username or Email", Type: "text",
					Value: st.Form.User, Placeholder: "Enter your username or email", Errors: st.Errors,
					Extra: []string{"autocomplete", "username"}},
				TextField{El: v.El, Key: models.FieldLoginPassword, Label: "Password", Type: "password",
					Placeholder: "Enter your password", Errors: st.Errors,
					Extra: []string{"autocomplete", "current-password"}},
			),
			b.Button("type", "submit", "class", "auth-submit", "id", "login-btn").T("Sign In"),
		),

		b.DivClass("auth-footer").R(
			b.Span().T("Don't have an account? "),
			b.A("href", "/register").T("Create one"),
		),
	)
	return
}
