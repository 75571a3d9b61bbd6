package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// FieldKey names a validated form field. It doubles as the form input name
// and as the key of the field's error slot.
type FieldKey string

const (
	FieldFullName        FieldKey = "full_name"
	FieldEmail           FieldKey = "email"
	FieldPassword        FieldKey = "password"
	FieldConfirmPassword FieldKey = "confirm_password"
	FieldDOB             FieldKey = "dob"
	FieldGender          FieldKey = "gender"
	FieldCountry         FieldKey = "country"
	FieldTerms           FieldKey = "terms"

	FieldLoginUser     FieldKey = "login_user"
	FieldLoginPassword FieldKey = "login_password"
)

// RegistrationFields is the fixed order in which registration fields are validated
var RegistrationFields = []FieldKey{
	FieldFullName, FieldEmail, FieldPassword, FieldConfirmPassword,
	FieldDOB, FieldGender, FieldCountry, FieldTerms,
}

// LoginFields is the validation order of the login form
var LoginFields = []FieldKey{FieldLoginUser, FieldLoginPassword}

// GenderOptions are the radio values offered by the gender group
var GenderOptions = []string{"male", "female", "other"}

// DateLayout is the wire format of a date input
const DateLayout = "2006-01-02"

// FieldResult is the outcome of validating one field
type FieldResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// OK is the passing result
var OK = FieldResult{Valid: true}

func fail(msg string) FieldResult {
	return FieldResult{Message: msg}
}

// formSpace is the whitespace class browsers apply to form text: ASCII
// whitespace, vertical tab, every Unicode separator and the BOM.
const formSpace = `\s\v\p{Z}\x{FEFF}`

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z` + formSpace + `]+$`)
	emailPattern = regexp.MustCompile(`^[^` + formSpace + `@]+@[^` + formSpace + `@]+\.[^` + formSpace + `@]+$`)
	upperPattern = regexp.MustCompile(`[A-Z]`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

const (
	minNameLength     = 3
	minPasswordLength = 8
)

func isFormSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF':
		return true
	}
	return unicode.In(r, unicode.Z)
}

// trimForm strips the same surrounding whitespace a browser form trim would
func trimForm(s string) string {
	return strings.TrimFunc(s, isFormSpace)
}

// ValidateFullName checks a full name after trimming surrounding space
func ValidateFullName(value string) FieldResult {
	name := trimForm(value)
	switch {
	case name == "":
		return fail("Full name is required")
	case utf8.RuneCountInString(name) < minNameLength:
		return fail("Name must be at least 3 characters")
	case !namePattern.MatchString(name):
		return fail("Name can only contain letters and spaces")
	}
	return OK
}

// ValidateEmail checks an email address after trimming surrounding space
func ValidateEmail(value string) FieldResult {
	email := trimForm(value)
	switch {
	case email == "":
		return fail("Email is required")
	case !emailPattern.MatchString(email):
		return fail("Please enter a valid email address")
	}
	return OK
}

// ValidatePassword applies the strength rules; the first failing rule is reported
func ValidatePassword(value string) FieldResult {
	switch {
	case value == "":
		return fail("Password is required")
	case utf8.RuneCountInString(value) < minPasswordLength:
		return fail("Password must be at least 8 characters")
	case !upperPattern.MatchString(value):
		return fail("Password must contain at least one uppercase letter")
	case !digitPattern.MatchString(value):
		return fail("Password must contain at least one number")
	}
	return OK
}

// ValidateConfirmPassword requires an exact byte-for-byte match with password
func ValidateConfirmPassword(confirm, password string) FieldResult {
	switch {
	case confirm == "":
		return fail("Please confirm your password")
	case confirm != password:
		return fail("Passwords do not match")
	}
	return OK
}

// Age returns whole years between birth and today on the calendar,
// ignoring time of day and zone.
func Age(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

// ValidateDOB requires a parseable date, an age of at least minAge, and a date
// strictly before today. A minAge of zero or less disables the age floor.
func ValidateDOB(value string, today time.Time, minAge int) FieldResult {
	value = trimForm(value)
	if value == "" {
		return fail("Date of birth is required")
	}
	birth, err := time.Parse(DateLayout, value)
	if err != nil {
		return fail("Please enter a valid date")
	}
	if minAge > 0 && Age(birth, today) < minAge {
		return fail(fmt.Sprintf("You must be at least %d years old", minAge))
	}
	y, m, d := today.Date()
	if !birth.Before(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
		return fail("Date must be in the past")
	}
	return OK
}

// ValidateGender requires exactly one of the offered options
func ValidateGender(value string) FieldResult {
	for _, opt := range GenderOptions {
		if value == opt {
			return OK
		}
	}
	return fail("Please select a gender")
}

// ValidateCountry requires a non-empty selection
func ValidateCountry(value string) FieldResult {
	if trimForm(value) == "" {
		return fail("Please select a country")
	}
	return OK
}

// ValidateTerms requires the terms checkbox to be checked
func ValidateTerms(checked bool) FieldResult {
	if !checked {
		return fail("You must agree to the terms and conditions")
	}
	return OK
}

// ValidateLoginUser requires a non-empty username or email
func ValidateLoginUser(value string) FieldResult {
	if trimForm(value) == "" {
		return fail("Username or email is required")
	}
	return OK
}

// ValidateLoginPassword requires a non-empty password; strength is not checked at login
func ValidateLoginPassword(value string) FieldResult {
	if value == "" {
		return fail("Password is required")
	}
	return OK
}
