// Package validate checks registration input at the field level.
package validate

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// FieldError names a failing field and the reason it was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]+$`)
)

// registrationChecks are evaluated in order, one entry per field. Every
// check runs; failures do not short-circuit the rest.
var registrationChecks = []struct {
	field   string
	message string
	rules   []validation.Rule
}{
	{
		field:   "firstName",
		message: "First name must be provided, less than 255 characters, and contain only alphabetic characters.",
		rules:   []validation.Rule{validation.Required, validation.Length(1, 255), is.Alpha},
	},
	{
		field:   "lastName",
		message: "Last name must be provided, less than 255 characters, and contain only alphabetic characters.",
		rules:   []validation.Rule{validation.Required, validation.Length(1, 255), is.Alpha},
	},
	{
		field:   "email",
		message: "Invalid email format.",
		rules:   []validation.Rule{validation.Required, validation.Match(emailPattern), is.Email},
	},
	{
		field:   "password",
		message: "Password must be at least 5 characters long.",
		rules:   []validation.Rule{validation.Required, validation.Length(5, 0)},
	},
	{
		field:   "phone",
		message: "Invalid phone number format.",
		rules:   []validation.Rule{validation.Required, validation.Match(phonePattern)},
	},
}

// Registration validates submitted registration fields. It returns one
// FieldError per failing field, in field order, and nil when all pass.
func Registration(fields map[string]string) []FieldError {
	var errs []FieldError
	for _, c := range registrationChecks {
		if err := validation.Validate(fields[c.field], c.rules...); err != nil {
			errs = append(errs, FieldError{Field: c.field, Message: c.message})
		}
	}
	return errs
}
