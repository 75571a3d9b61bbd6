package auth

import (
	"fmt"
	"strings"

	"aqiform/models"

	"github.com/rohanthewiz/serr"
)

// Elements is the set of element ids shared by the page renderers and the
// htmx targets. It is produced once by BindElements and never changes after.
type Elements struct {
	registerCard string
	registerForm string
	loginCard    string
	loginForm    string
	loginAlert   string
	loginNotice  string
	aqiPanel     string
	citySelect   string
	aqiDisplay   string
	aqiValue     string
	aqiStatus    string
	termsLink    string
	modals       map[models.ModalName]string
	closers      map[models.ModalName]string
	inputs       map[models.FieldKey]string
	errorSlots   map[models.FieldKey]string
}

// BindElements builds the id set and checks that every validated field has
// an input and an error slot and that no two elements share an id.
func BindElements() (Elements, error) {
	el := Elements{
		registerCard: "register-card",
		registerForm: "register-form",
		loginCard:    "login-card",
		loginForm:    "login-form",
		loginAlert:   "login-alert",
		loginNotice:  "login-notice",
		aqiPanel:     "aqi-panel",
		citySelect:   "city-select",
		aqiDisplay:   "aqi-display",
		aqiValue:     "aqi-value",
		aqiStatus:    "aqi-status",
		termsLink:    "terms-link",
		modals: map[models.ModalName]string{
			models.ModalTerms:   "terms-modal",
			models.ModalSuccess: "success-modal",
		},
		closers: map[models.ModalName]string{
			models.ModalTerms:   "close-terms",
			models.ModalSuccess: "close-success",
		},
		inputs:     map[models.FieldKey]string{},
		errorSlots: map[models.FieldKey]string{},
	}

	keys := append(append([]models.FieldKey{}, models.RegistrationFields...), models.LoginFields...)
	for _, k := range keys {
		id := strings.ReplaceAll(string(k), "_", "-")
		el.inputs[k] = id
		el.errorSlots[k] = id + "-error"
	}

	if err := el.check(keys); err != nil {
		return Elements{}, err
	}
	return el, nil
}

// MustBindElements is BindElements for startup; a bad binding is a programming error
func MustBindElements() Elements {
	el, err := BindElements()
	if err != nil {
		panic(err)
	}
	return el
}

func (el Elements) check(keys []models.FieldKey) error {
	seen := map[string]string{}
	claim := func(id, owner string) error {
		if id == "" {
			return serr.New("element id missing for " + owner)
		}
		if prev, ok := seen[id]; ok {
			return serr.New(fmt.Sprintf("element id %q bound to both %s and %s", id, prev, owner))
		}
		seen[id] = owner
		return nil
	}

	fixed := map[string]string{
		"register card": el.registerCard, "register form": el.registerForm,
		"login card": el.loginCard, "login form": el.loginForm,
		"login alert": el.loginAlert, "login notice": el.loginNotice,
		"aqi panel": el.aqiPanel, "city select": el.citySelect,
		"aqi display": el.aqiDisplay, "aqi value": el.aqiValue, "aqi status": el.aqiStatus,
		"terms link": el.termsLink,
	}
	for owner, id := range fixed {
		if err := claim(id, owner); err != nil {
			return err
		}
	}
	for _, name := range []models.ModalName{models.ModalTerms, models.ModalSuccess} {
		if err := claim(el.modals[name], string(name)+" modal"); err != nil {
			return err
		}
		if err := claim(el.closers[name], string(name)+" close control"); err != nil {
			return err
		}
	}
	for _, k := range keys {
		if err := claim(el.inputs[k], string(k)+" input"); err != nil {
			return err
		}
		if err := claim(el.errorSlots[k], string(k)+" error slot"); err != nil {
			return err
		}
	}
	return nil
}

func (el Elements) RegisterCard() string { return el.registerCard }
func (el Elements) RegisterForm() string { return el.registerForm }
func (el Elements) LoginCard() string    { return el.loginCard }
func (el Elements) LoginForm() string    { return el.loginForm }
func (el Elements) LoginAlert() string   { return el.loginAlert }
func (el Elements) LoginNotice() string  { return el.loginNotice }
func (el Elements) AQIPanel() string     { return el.aqiPanel }
func (el Elements) CitySelect() string   { return el.citySelect }
func (el Elements) AQIDisplay() string   { return el.aqiDisplay }
func (el Elements) AQIValue() string     { return el.aqiValue }
func (el Elements) AQIStatus() string    { return el.aqiStatus }
func (el Elements) TermsLink() string    { return el.termsLink }

// Modal is the container id of the named dialog
func (el Elements) Modal(name models.ModalName) string { return el.modals[name] }

// Closer is the id of the named dialog's close control
func (el Elements) Closer(name models.ModalName) string { return el.closers[name] }

// Input is the id of a field's input element
func (el Elements) Input(key models.FieldKey) string { return el.inputs[key] }

// ErrorSlot is the id of a field's error message element
func (el Elements) ErrorSlot(key models.FieldKey) string { return el.errorSlots[key] }

// Target is the htmx selector for an id
func Target(id string) string { return "#" + id }
