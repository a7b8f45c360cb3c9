package contact

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/sammy-mbugua/portfolio/pkg/apperror"
)

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"

	MaxNameLen    = 100
	MaxEmailLen   = 254
	MaxSubjectLen = 200

	msgRequired     = "This field is required."
	msgInvalidEmail = "Enter a valid email address."
)

var validate = validator.New()

// FormatFunc checks a trimmed, non-empty value and returns a message when it is invalid.
type FormatFunc func(value string) string

// Field describes one input of a form.
type Field struct {
	Name     string
	Required bool
	MaxLen   int
	Format   FormatFunc
}

// Schema is an ordered list of field rules evaluated against raw input.
type Schema []Field

// Submission is a contact form that passed validation.
type Submission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Result is either a valid Submission or a set of field errors, never both.
type Result struct {
	Submission Submission
	Errors     apperror.FieldErrors
}

func (r Result) OK() bool { return r.Errors.Empty() }

// FormSchema is the contact form: every field required, widths match storage.
var FormSchema = Schema{
	{Name: FieldName, Required: true, MaxLen: MaxNameLen},
	{Name: FieldEmail, Required: true, MaxLen: MaxEmailLen, Format: EmailFormat},
	{Name: FieldSubject, Required: true, MaxLen: MaxSubjectLen},
	{Name: FieldMessage, Required: true},
}

func EmailFormat(value string) string {
	if err := validate.Var(value, "email"); err != nil {
		return msgInvalidEmail
	}
	return ""
}

// Clean trims every schema field and collects the errors for each.
func (s Schema) Clean(values map[string]string) (map[string]string, apperror.FieldErrors) {
	cleaned := make(map[string]string, len(s))
	errs := apperror.FieldErrors{}

	for _, f := range s {
		v := strings.TrimSpace(values[f.Name])
		cleaned[f.Name] = v

		if v == "" {
			if f.Required {
				errs.Add(f.Name, msgRequired)
			}
			continue
		}
		if n := utf8.RuneCountInString(v); f.MaxLen > 0 && n > f.MaxLen {
			errs.Add(f.Name, fmt.Sprintf("Ensure this value has at most %d characters (it has %d).", f.MaxLen, n))
		}
		if f.Format != nil {
			if msg := f.Format(v); msg != "" {
				errs.Add(f.Name, msg)
			}
		}
	}
	return cleaned, errs
}

// ValidateSubmission runs FormSchema over raw form values.
func ValidateSubmission(values map[string]string) Result {
	cleaned, errs := FormSchema.Clean(values)
	if !errs.Empty() {
		return Result{Errors: errs}
	}
	return Result{
		Submission: Submission{
			Name:    cleaned[FieldName],
			Email:   cleaned[FieldEmail],
			Subject: cleaned[FieldSubject],
			Message: cleaned[FieldMessage],
		},
		Errors: errs,
	}
}
