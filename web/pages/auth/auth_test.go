package auth

import (
	"strings"
	"testing"

	"aqiform/models"
)

func testElements(t *testing.T) Elements {
	t.Helper()
	el, err := BindElements()
	if err != nil {
		t.Fatalf("BindElements() error: %v", err)
	}
	return el
}

// TestBindElements verifies every validated field has an input and an error slot.
func TestBindElements(t *testing.T) {
	el := testElements(t)

	for _, k := range append(append([]models.FieldKey{}, models.RegistrationFields...), models.LoginFields...) {
		if el.Input(k) == "" || el.ErrorSlot(k) == "" {
			t.Errorf("field %s is not fully bound", k)
		}
	}
	if el.Input(models.FieldConfirmPassword) != "confirm-password" {
		t.Errorf("confirm password input id = %q", el.Input(models.FieldConfirmPassword))
	}
	if el.ErrorSlot(models.FieldDOB) != "dob-error" {
		t.Errorf("dob error slot id = %q", el.ErrorSlot(models.FieldDOB))
	}
}

// TestCheckRejectsDuplicates verifies two elements cannot share an id.
func TestCheckRejectsDuplicates(t *testing.T) {
	el := testElements(t)
	el.aqiValue = el.aqiStatus
	if err := el.check(models.RegistrationFields); err == nil {
		t.Error("expected a duplicate id error")
	}

	el = testElements(t)
	el.errorSlots[models.FieldEmail] = ""
	if err := el.check(models.RegistrationFields); err == nil {
		t.Error("expected a missing id error")
	}
}

func renderRegister(t *testing.T, page *models.RegistrationPage) string {
	t.Helper()
	return NewRegisterView(testElements(t), page, models.DefaultCatalog.Countries(), 13).Render()
}

// TestRegisterPageInitialState verifies the page before any interaction.
func TestRegisterPageInitialState(t *testing.T) {
	html := renderRegister(t, models.NewRegistrationPage())

	wants := []string{
		"<!DOCTYPE html>",
		`id="register-form"`,
		`id="full-name"`,
		`id="confirm-password"`,
		`id="aqi-panel"`,
		models.PlaceholderNoCountry,
		models.AQINoData,
		`id="aqi-value">--`,
		"Bangladesh",
		"India",
		"You must be at least 13 years old",
		`hx-get="/register/cities"`,
		`hx-post="/modals/terms/open"`,
	}
	for _, want := range wants {
		if !strings.Contains(html, want) {
			t.Errorf("register page should contain %q", want)
		}
	}

	// Every error slot starts hidden and every modal starts hidden
	for _, k := range models.RegistrationFields {
		if !strings.Contains(html, `class="error hidden" id="`+testElements(t).ErrorSlot(k)+`"`) {
			t.Errorf("error slot for %s should start hidden", k)
		}
	}
	if !strings.Contains(html, `class="modal-backdrop hidden" id="terms-modal"`) ||
		!strings.Contains(html, `class="modal-backdrop hidden" id="success-modal"`) {
		t.Error("modals should start hidden")
	}
	if strings.Contains(html, "aqi-good") || strings.Contains(html, "aqi-hazardous") {
		t.Error("no AQI color should be applied before a city is chosen")
	}
}

// TestRegisterCardShowsErrors verifies failures render into their slots and values survive.
func TestRegisterCardShowsErrors(t *testing.T) {
	page := models.NewRegistrationPage()
	page.Form.FullName = "Al"
	page.Form.Country = "Canada"
	page.Errors.ShowError(models.FieldFullName, "Name must be at least 3 characters")

	el := testElements(t)
	html := NewRegisterView(el, page, models.DefaultCatalog.Countries(), 13).RenderCard()

	if strings.Contains(html, "<!DOCTYPE html>") || strings.Contains(html, "auth-container") {
		t.Error("card fragment should not include the document or container")
	}
	if !strings.Contains(html, `class="error" id="full-name-error" data-field="full_name">Name must be at least 3 characters`) {
		t.Error("full name error should be visible")
	}
	if !strings.Contains(html, `value="Al"`) {
		t.Error("full name value should be kept")
	}
	if !strings.Contains(html, `value="Canada" selected="selected"`) {
		t.Error("country should stay selected")
	}
	if !strings.Contains(html, `class="error hidden" id="email-error"`) {
		t.Error("email error should stay hidden")
	}
}

// TestPasswordsNotEchoed verifies password inputs render empty after a failed submit.
func TestPasswordsNotEchoed(t *testing.T) {
	el := testElements(t)

	page := models.NewRegistrationPage()
	page.Form.FullName = "Jane Doe"
	page.Form.Password = "Secret123"
	page.Form.ConfirmPassword = "Secret124"
	page.Errors.ShowError(models.FieldConfirmPassword, "Passwords do not match")

	html := NewRegisterView(el, page, models.DefaultCatalog.Countries(), 13).RenderCard()
	if strings.Contains(html, "Secret123") || strings.Contains(html, "Secret124") {
		t.Error("registration passwords should not be rendered")
	}
	if !strings.Contains(html, `id="password" name="password" value=""`) {
		t.Error("password input should render with an empty value")
	}
	if !strings.Contains(html, `value="Jane Doe"`) {
		t.Error("other values should still be kept")
	}

	login := models.NewLoginPage()
	login.Form = models.LoginForm{User: "jane", Password: "hunter2"}
	html = NewLoginView(el, login).RenderCard()
	if strings.Contains(html, "hunter2") {
		t.Error("login password should not be rendered")
	}
	if !strings.Contains(html, `value="jane"`) {
		t.Error("login user should be kept")
	}
}

// TestRenderEscapesValues verifies user input cannot inject markup.
func TestRenderEscapesValues(t *testing.T) {
	page := models.NewRegistrationPage()
	page.Form.FullName = `"><script>alert(1)</script>`

	html := renderRegister(t, page)
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("full name value was not escaped")
	}
}

// TestAQIPanelFragment verifies the city options and a colored reading.
func TestAQIPanelFragment(t *testing.T) {
	el := testElements(t)
	cities, _ := models.DefaultCatalog.Cities("Australia")
	sel := models.CitySelector{Country: "Australia", Options: cities, Selected: "Perth"}
	disp := models.NewAQIDisplay()
	disp.Show(175)

	html := RenderAQIPanel(el, sel, disp)
	for _, want := range []string{
		models.PlaceholderCity, "Sydney", "Adelaide",
		`value="Perth" selected="selected"`,
		`class="aqi-value aqi-unhealthy"`,
		"Unhealthy - Health effects possible",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("panel should contain %q", want)
		}
	}
	if strings.Contains(html, "Toronto") {
		t.Error("panel should only list the chosen country's cities")
	}
	if strings.Contains(html, `disabled="disabled"`) {
		t.Error("city select should be enabled when it has options")
	}

	collapsed := RenderAQIPanel(el, models.CitySelector{}, models.NewAQIDisplay())
	if !strings.Contains(collapsed, `disabled="disabled"`) || !strings.Contains(collapsed, models.PlaceholderNoCountry) {
		t.Error("collapsed panel should be disabled with the no-country placeholder")
	}
}

// TestRenderModal verifies the open state and the background click wiring.
func TestRenderModal(t *testing.T) {
	el := testElements(t)
	m := models.NewModal(models.ModalSuccess)
	m.Open()

	html := RenderModal(el, m)
	for _, want := range []string{
		`class="modal-backdrop" id="success-modal" data-state="visible"`,
		`hx-post="/modals/success/click"`,
		`hx-post="/modals/success/close"`,
		`id="close-success"`,
		"Registration Successful",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("modal should contain %q", want)
		}
	}
}

// TestLoginPageModes verifies inline slots and the alert box.
func TestLoginPageModes(t *testing.T) {
	el := testElements(t)

	inline := models.NewLoginPage()
	inline.Errors.ShowError(models.FieldLoginUser, "Username or email is required")
	html := NewLoginView(el, inline).Render()
	if !strings.Contains(html, `id="login-user-error" data-field="login_user">Username or email is required`) {
		t.Error("inline error should render in the user slot")
	}
	if !strings.Contains(html, `class="auth-error hidden" id="login-alert"`) {
		t.Error("alert box should be hidden in inline mode")
	}

	alert := models.NewLoginPage()
	alert.Alert = []string{"Username or email is required", "Password is required"}
	html = NewLoginView(el, alert).RenderCard()
	if !strings.Contains(html, `class="auth-error" id="login-alert"`) ||
		!strings.Contains(html, "<li>Password is required</li>") {
		t.Error("alert box should list the failures")
	}

	ok := models.NewLoginPage()
	ok.Notice = "Login details accepted for jane"
	html = NewLoginView(el, ok).RenderCard()
	if !strings.Contains(html, `id="login-notice">Login details accepted for jane`) {
		t.Error("notice should render")
	}
}
