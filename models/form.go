package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/rohanthewiz/serr"
)

// LoginErrorMode selects how login failures are presented
type LoginErrorMode string

const (
	// LoginErrorsInline shows each failure in its field's slot
	LoginErrorsInline LoginErrorMode = "inline"
	// LoginErrorsAlert collects the failures into one alert box
	LoginErrorsAlert LoginErrorMode = "alert"
)

// ParseLoginErrorMode accepts "inline" or "alert"; empty means inline
func ParseLoginErrorMode(s string) (LoginErrorMode, error) {
	switch LoginErrorMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", LoginErrorsInline:
		return LoginErrorsInline, nil
	case LoginErrorsAlert:
		return LoginErrorsAlert, nil
	}
	return "", serr.New(fmt.Sprintf("login error mode must be inline or alert, got %q", s))
}

// DefaultMinAge is the age floor applied when none is configured
const DefaultMinAge = 13

// Policy carries the knobs that differ between deployments of the page
type Policy struct {
	MinAge      int
	LoginErrors LoginErrorMode
}

// DefaultPolicy returns the 13-year floor with inline login errors
func DefaultPolicy() Policy {
	return Policy{MinAge: DefaultMinAge, LoginErrors: LoginErrorsInline}
}

// RegistrationForm is the current value of every registration input
type RegistrationForm struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	DOB             string `json:"dob"`
	Gender          string `json:"gender"`
	Country         string `json:"country"`
	City            string `json:"city,omitempty"`
	TermsAccepted   bool   `json:"terms"`
}

// LoginForm is the current value of the login inputs
type LoginForm struct {
	User     string `json:"login_user"`
	Password string `json:"login_password"`
}

// FieldCheck is one field's validation result within a submit
type FieldCheck struct {
	Key    FieldKey
	Result FieldResult
}

// Checks is the ordered result of validating a whole form
type Checks []FieldCheck

// Valid is the AND of every check
func (cs Checks) Valid() bool {
	for _, c := range cs {
		if !c.Result.Valid {
			return false
		}
	}
	return true
}

// Failures maps each failing field to its message
func (cs Checks) Failures() map[FieldKey]string {
	out := make(map[FieldKey]string)
	for _, c := range cs {
		if !c.Result.Valid {
			out[c.Key] = c.Result.Message
		}
	}
	return out
}

// Messages lists failure messages in validation order
func (cs Checks) Messages() []string {
	var out []string
	for _, c := range cs {
		if !c.Result.Valid {
			out = append(out, c.Result.Message)
		}
	}
	return out
}

// CheckRegistration runs every registration validator in fixed order without short-circuiting
func CheckRegistration(f RegistrationForm, today time.Time, minAge int) Checks {
	return Checks{
		{FieldFullName, ValidateFullName(f.FullName)},
		{FieldEmail, ValidateEmail(f.Email)},
		{FieldPassword, ValidatePassword(f.Password)},
		{FieldConfirmPassword, ValidateConfirmPassword(f.ConfirmPassword, f.Password)},
		{FieldDOB, ValidateDOB(f.DOB, today, minAge)},
		{FieldGender, ValidateGender(f.Gender)},
		{FieldCountry, ValidateCountry(f.Country)},
		{FieldTerms, ValidateTerms(f.TermsAccepted)},
	}
}

// CheckLogin runs the reduced login validators
func CheckLogin(f LoginForm) Checks {
	return Checks{
		{FieldLoginUser, ValidateLoginUser(f.User)},
		{FieldLoginPassword, ValidateLoginPassword(f.Password)},
	}
}

// RegistrationPage is everything the registration page shows for one visitor
type RegistrationPage struct {
	Form    RegistrationForm
	Errors  *ErrorPanel
	Cities  CitySelector
	AQI     AQIDisplay
	Terms   Modal
	Success Modal
}

// NewRegistrationPage returns an empty page with every modal hidden
func NewRegistrationPage() *RegistrationPage {
	return &RegistrationPage{
		Errors:  NewErrorPanel(RegistrationFields...),
		AQI:     NewAQIDisplay(),
		Terms:   NewModal(ModalTerms),
		Success: NewModal(ModalSuccess),
	}
}

// Modal looks a dialog up by name
func (p *RegistrationPage) Modal(name ModalName) (*Modal, bool) {
	switch name {
	case ModalTerms:
		return &p.Terms, true
	case ModalSuccess:
		return &p.Success, true
	}
	return nil, false
}

// LoginPage is everything the login page shows for one visitor
type LoginPage struct {
	Form   LoginForm
	Errors *ErrorPanel
	Alert  []string
	Notice string
}

// NewLoginPage returns an empty login page
func NewLoginPage() *LoginPage {
	return &LoginPage{Errors: NewErrorPanel(LoginFields...)}
}

// Orchestrator runs submissions against page state
type Orchestrator struct {
	Policy  Policy
	Cascade *Cascade
	Now     func() time.Time
}

// NewOrchestrator returns an orchestrator on the wall clock
func NewOrchestrator(policy Policy, cascade *Cascade) *Orchestrator {
	return &Orchestrator{Policy: policy, Cascade: cascade, Now: time.Now}
}

// SubmitRegistration validates input into page. On success the success modal
// opens and every field, the city selector and the AQI display are reset.
// On failure the values stay and each failing field shows its message.
func (o *Orchestrator) SubmitRegistration(page *RegistrationPage, input RegistrationForm) Checks {
	page.Form = input
	o.syncCascade(page, input)

	page.Errors.ClearAll()
	checks := CheckRegistration(input, o.Now(), o.Policy.MinAge)
	for _, c := range checks {
		if !c.Result.Valid {
			page.Errors.ShowError(c.Key, c.Result.Message)
		}
	}

	if checks.Valid() {
		page.Success.Open()
		page.Form = RegistrationForm{}
		page.Cities.Collapse()
		page.AQI.Reset()
	}
	return checks
}

// syncCascade makes the dependent widgets agree with submitted values
// when the surface posted them without the intermediate change events.
func (o *Orchestrator) syncCascade(page *RegistrationPage, input RegistrationForm) {
	if input.Country != page.Cities.Country {
		o.Cascade.OnCountryChange(&page.Cities, &page.AQI, input.Country)
	}
	if input.City != page.Cities.Selected {
		o.Cascade.OnCityChange(&page.Cities, &page.AQI, input.City)
	}
}

// SubmitLogin applies the reduced login rules. Failures land in the field
// slots or the alert box depending on the policy.
func (o *Orchestrator) SubmitLogin(page *LoginPage, input LoginForm) Checks {
	page.Form = input
	page.Errors.ClearAll()
	page.Alert = nil
	page.Notice = ""

	checks := CheckLogin(input)
	if !checks.Valid() {
		if o.Policy.LoginErrors == LoginErrorsAlert {
			page.Alert = checks.Messages()
		} else {
			for _, c := range checks {
				if !c.Result.Valid {
					page.Errors.ShowError(c.Key, c.Result.Message)
				}
			}
		}
		return checks
	}

	page.Notice = "Login details accepted for " + strings.TrimSpace(input.User)
	page.Form.Password = ""
	return checks
}
