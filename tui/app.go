package tui

import (
	"strings"

	"aqiform/models"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rohanthewiz/serr"
)

// Screen is the form currently on display
type Screen int

const (
	ScreenRegister Screen = iota
	ScreenLogin
)

// field is a focus position on the registration screen
type field int

const (
	fieldFullName field = iota
	fieldEmail
	fieldPassword
	fieldConfirm
	fieldDOB
	fieldGender
	fieldCountry
	fieldCity
	fieldTerms
	fieldSubmit
	registerFieldCount
)

// textFields are the registration fields edited through a text input
var textFields = []struct {
	field       field
	key         models.FieldKey
	label       string
	placeholder string
	password    bool
}{
	{fieldFullName, models.FieldFullName, "Full Name", "Your full name", false},
	{fieldEmail, models.FieldEmail, "Email", "you@example.com", false},
	{fieldPassword, models.FieldPassword, "Password", "8+ chars, one uppercase, one number", true},
	{fieldConfirm, models.FieldConfirmPassword, "Confirm Password", "Repeat your password", true},
	{fieldDOB, models.FieldDOB, "Date of Birth", models.DateLayout, false},
}

// login focus positions
const (
	loginFieldUser = iota
	loginFieldPassword
	loginFieldSubmit
	loginFieldCount
)

// Model is the terminal rendition of the registration and login pages.
// It drives the same page state and orchestrator as the web surface.
type Model struct {
	orch      *models.Orchestrator
	countries []string

	Screen Screen
	Reg    *models.RegistrationPage
	Login  *models.LoginPage

	regFocus    field
	regInputs   []textinput.Model
	loginFocus  int
	loginInputs []textinput.Model

	keys      keyMap
	modalKeys modalKeyMap
	help      help.Model
	width     int
}

// New returns a model on the registration screen
func New(orch *models.Orchestrator) *Model {
	m := &Model{
		orch:      orch,
		countries: orch.Cascade.Catalog.Countries(),
		Reg:       models.NewRegistrationPage(),
		Login:     models.NewLoginPage(),
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	m.modalKeys = modalKeyMap{Close: m.keys.Close, Dismiss: m.keys.Dismiss}

	for _, tf := range textFields {
		m.regInputs = append(m.regInputs, newInput(tf.placeholder, tf.password))
	}
	m.loginInputs = []textinput.Model{
		newInput("username or email", false),
		newInput("password", true),
	}
	m.focusRegister(fieldFullName)
	return m
}

func newInput(placeholder string, password bool) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 128
	in.Placeholder = placeholder
	if password {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

// Run starts the terminal form and blocks until the user quits
func Run(orch *models.Orchestrator) error {
	p := tea.NewProgram(New(orch), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return serr.Wrap(err, "terminal form exited with error")
	}
	return nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if modal := m.openModal(); modal != nil {
			m.updateModal(modal, msg)
			return m, nil
		}
		if key.Matches(msg, m.keys.Switch) {
			m.switchScreen()
			return m, nil
		}
		if m.Screen == ScreenLogin {
			return m, m.updateLogin(msg)
		}
		return m, m.updateRegister(msg)
	}

	return m, m.forwardToInput(msg)
}

// openModal returns the dialog that currently takes the keyboard, if any.
// The success dialog sits above the terms dialog.
func (m *Model) openModal() *models.Modal {
	if m.Screen != ScreenRegister {
		return nil
	}
	if m.Reg.Success.Visible() {
		return &m.Reg.Success
	}
	if m.Reg.Terms.Visible() {
		return &m.Reg.Terms
	}
	return nil
}

// updateModal maps enter to the close control and esc to a click on the
// background. Every other key lands on the content and changes nothing.
func (m *Model) updateModal(modal *models.Modal, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Close):
		modal.Close()
	case key.Matches(msg, m.keys.Dismiss):
		modal.Click(models.ClickBackground)
	default:
		modal.Click(models.ClickContent)
	}
}

func (m *Model) switchScreen() {
	if m.Screen == ScreenRegister {
		m.Screen = ScreenLogin
		m.focusRegister(-1)
		m.focusLogin(loginFieldUser)
		return
	}
	m.Screen = ScreenRegister
	m.focusLogin(-1)
	m.focusRegister(fieldFullName)
}

func (m *Model) updateRegister(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.submitRegistration()
		return nil
	case key.Matches(msg, m.keys.Terms):
		m.Reg.Terms.Open()
		return nil
	case key.Matches(msg, m.keys.Next):
		m.focusRegister((m.regFocus + 1) % registerFieldCount)
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.focusRegister((m.regFocus + registerFieldCount - 1) % registerFieldCount)
		return nil
	}

	switch m.regFocus {
	case fieldGender, fieldCountry, fieldCity:
		if key.Matches(msg, m.keys.Left) {
			m.cycle(-1)
		} else if key.Matches(msg, m.keys.Right) {
			m.cycle(1)
		}
		return nil
	case fieldTerms:
		if key.Matches(msg, m.keys.Toggle) {
			m.Reg.Form.TermsAccepted = !m.Reg.Form.TermsAccepted
		} else if msg.Type == tea.KeyEnter {
			m.Reg.Terms.Open()
		}
		return nil
	case fieldSubmit:
		if msg.Type == tea.KeyEnter {
			m.submitRegistration()
		}
		return nil
	}

	if msg.Type == tea.KeyEnter {
		m.focusRegister(m.regFocus + 1)
		return nil
	}
	return m.forwardToInput(msg)
}

func (m *Model) updateLogin(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.submitLogin()
		return nil
	case key.Matches(msg, m.keys.Next):
		m.focusLogin((m.loginFocus + 1) % loginFieldCount)
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.focusLogin((m.loginFocus + loginFieldCount - 1) % loginFieldCount)
		return nil
	}

	if msg.Type == tea.KeyEnter {
		if m.loginFocus == loginFieldSubmit {
			m.submitLogin()
		} else {
			m.focusLogin(m.loginFocus + 1)
		}
		return nil
	}
	return m.forwardToInput(msg)
}

// forwardToInput hands msg to the focused text input, if there is one
func (m *Model) forwardToInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.Screen == ScreenRegister && int(m.regFocus) < len(m.regInputs):
		m.regInputs[m.regFocus], cmd = m.regInputs[m.regFocus].Update(msg)
	case m.Screen == ScreenLogin && m.loginFocus < len(m.loginInputs):
		m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	}
	return cmd
}

func (m *Model) focusRegister(f field) {
	m.regFocus = f
	for i := range m.regInputs {
		if field(i) == f {
			m.regInputs[i].Focus()
		} else {
			m.regInputs[i].Blur()
		}
	}
}

func (m *Model) focusLogin(f int) {
	m.loginFocus = f
	for i := range m.loginInputs {
		if i == f {
			m.loginInputs[i].Focus()
		} else {
			m.loginInputs[i].Blur()
		}
	}
}

// cycle steps the focused selector through its options. The empty
// option comes first, standing for the placeholder.
func (m *Model) cycle(delta int) {
	reg := m.Reg
	switch m.regFocus {
	case fieldGender:
		reg.Form.Gender = step(models.GenderOptions, reg.Form.Gender, delta)
	case fieldCountry:
		country := step(m.countries, reg.Form.Country, delta)
		reg.Form.Country = country
		reg.Form.City = ""
		m.orch.Cascade.OnCountryChange(&reg.Cities, &reg.AQI, country)
	case fieldCity:
		if len(reg.Cities.Options) == 0 {
			return
		}
		city := step(reg.Cities.Options, reg.Cities.Selected, delta)
		m.orch.Cascade.OnCityChange(&reg.Cities, &reg.AQI, city)
		reg.Form.City = reg.Cities.Selected
	}
}

// step moves delta places through "" followed by options, wrapping
func step(options []string, current string, delta int) string {
	all := append([]string{""}, options...)
	idx := 0
	for i, o := range all {
		if o == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(all)) % len(all)
	return all[idx]
}

func (m *Model) submitRegistration() {
	input := m.Reg.Form
	for i, tf := range textFields {
		v := m.regInputs[i].Value()
		switch tf.key {
		case models.FieldFullName:
			input.FullName = v
		case models.FieldEmail:
			input.Email = v
		case models.FieldPassword:
			input.Password = v
		case models.FieldConfirmPassword:
			input.ConfirmPassword = v
		case models.FieldDOB:
			input.DOB = v
		}
	}

	m.orch.SubmitRegistration(m.Reg, input)

	// A successful submit zeroes the form; a failed one keeps every value
	form := m.Reg.Form
	values := []string{form.FullName, form.Email, form.Password, form.ConfirmPassword, form.DOB}
	for i := range m.regInputs {
		m.regInputs[i].SetValue(values[i])
	}
}

func (m *Model) submitLogin() {
	input := models.LoginForm{
		User:     m.loginInputs[loginFieldUser].Value(),
		Password: m.loginInputs[loginFieldPassword].Value(),
	}
	m.orch.SubmitLogin(m.Login, input)
	m.loginInputs[loginFieldPassword].SetValue(m.Login.Form.Password)
}

// View implements tea.Model
func (m *Model) View() string {
	var body string
	var helpView string

	if modal := m.openModal(); modal != nil {
		body = m.modalView(*modal)
		helpView = m.help.View(m.modalKeys)
	} else if m.Screen == ScreenLogin {
		body = m.loginView()
		helpView = m.help.View(m.keys)
	} else {
		body = m.registerView()
		helpView = m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, HelpStyle.Render(helpView))
}

func (m *Model) label(text string, focused bool) string {
	if focused {
		return FocusedLabelStyle.Render(text)
	}
	return LabelStyle.Render(text)
}

func (m *Model) fieldError(errs *models.ErrorPanel, k models.FieldKey) string {
	if !errs.Visible(k) {
		return ""
	}
	return "\n" + FieldErrorStyle.Render(errs.Message(k))
}

func choice(value, placeholder string) string {
	if value == "" {
		return HintStyle.Render(placeholder)
	}
	return value
}

func (m *Model) registerView() string {
	reg := m.Reg
	var rows []string

	rows = append(rows, TitleStyle.Render("Create your account"))

	for i, tf := range textFields {
		row := m.label(tf.label, m.regFocus == tf.field) + m.regInputs[i].View()
		rows = append(rows, row+m.fieldError(reg.Errors, tf.key))
	}

	rows = append(rows,
		m.label("Gender", m.regFocus == fieldGender)+"‹ "+choice(reg.Form.Gender, "Select")+" ›"+
			m.fieldError(reg.Errors, models.FieldGender),
		m.label("Country", m.regFocus == fieldCountry)+"‹ "+choice(reg.Form.Country, "Select a country")+" ›"+
			m.fieldError(reg.Errors, models.FieldCountry),
		m.label("City", m.regFocus == fieldCity)+"‹ "+choice(reg.Cities.Selected, reg.Cities.Placeholder())+" ›",
		m.label("Air Quality", false)+aqiValueStyle(reg.AQI.Color).Render(reg.AQI.Value)+"  "+reg.AQI.Status,
	)

	box := "[ ]"
	if reg.Form.TermsAccepted {
		box = "[x]"
	}
	rows = append(rows,
		m.label("Terms", m.regFocus == fieldTerms)+box+" I agree to the Terms and Conditions"+
			m.fieldError(reg.Errors, models.FieldTerms),
		"",
		m.button("Create Account", m.regFocus == fieldSubmit),
	)

	return strings.Join(rows, "\n")
}

func (m *Model) loginView() string {
	lg := m.Login
	var rows []string

	rows = append(rows, TitleStyle.Render("Sign in to your account"))
	if len(lg.Alert) > 0 {
		rows = append(rows, AlertStyle.Render(strings.Join(lg.Alert, "\n")))
	}
	if lg.Notice != "" {
		rows = append(rows, NoticeStyle.Render(lg.Notice))
	}

	rows = append(rows,
		m.label("Username or Email", m.loginFocus == loginFieldUser)+m.loginInputs[loginFieldUser].View()+
			m.fieldError(lg.Errors, models.FieldLoginUser),
		m.label("Password", m.loginFocus == loginFieldPassword)+m.loginInputs[loginFieldPassword].View()+
			m.fieldError(lg.Errors, models.FieldLoginPassword),
		"",
		m.button("Sign In", m.loginFocus == loginFieldSubmit),
	)
	return strings.Join(rows, "\n")
}

func (m *Model) button(text string, focused bool) string {
	if focused {
		return FocusedButtonStyle.Render(text)
	}
	return ButtonStyle.Render(text)
}

func (m *Model) modalView(modal models.Modal) string {
	title := "Terms and Conditions"
	body := "Air quality readings are simulated for demonstration and must not be used for health decisions.\n" +
		"Registration details are validated only; nothing you enter is stored."
	if modal.Name == models.ModalSuccess {
		title = "Registration Successful"
		body = "Your registration details are valid."
	}
	return ModalStyle.Render(TitleStyle.Render(title) + "\n" + body)
}
