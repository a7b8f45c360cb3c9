package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() map[string]string {
	return map[string]string{
		FieldName:    "Jane",
		FieldEmail:   "jane@x.com",
		FieldSubject: "Hi",
		FieldMessage: "Hello",
	}
}

func TestValidateSubmission_Valid(t *testing.T) {
	res := ValidateSubmission(validInput())

	assert.True(t, res.OK())
	assert.Equal(t, Submission{Name: "Jane", Email: "jane@x.com", Subject: "Hi", Message: "Hello"}, res.Submission)
}

func TestValidateSubmission_TrimsInput(t *testing.T) {
	in := validInput()
	in[FieldName] = "  Jane \n"

	res := ValidateSubmission(in)

	assert.True(t, res.OK())
	assert.Equal(t, "Jane", res.Submission.Name)
}

func TestValidateSubmission_InvalidEmail(t *testing.T) {
	in := validInput()
	in[FieldEmail] = "not-an-email"

	res := ValidateSubmission(in)

	assert.False(t, res.OK())
	assert.Equal(t, []string{FieldEmail}, res.Errors.Fields())
	assert.Equal(t, []string{msgInvalidEmail}, res.Errors[FieldEmail])
	assert.Equal(t, Submission{}, res.Submission)
}

func TestValidateSubmission_BlankFields(t *testing.T) {
	res := ValidateSubmission(map[string]string{FieldName: "   "})

	assert.False(t, res.OK())
	assert.Equal(t, []string{FieldEmail, FieldMessage, FieldName, FieldSubject}, res.Errors.Fields())
	for _, f := range res.Errors.Fields() {
		assert.Equal(t, []string{msgRequired}, res.Errors[f])
	}
}

func TestValidateSubmission_MaxLengths(t *testing.T) {
	tests := []struct {
		field string
		max   int
	}{
		{FieldName, MaxNameLen},
		{FieldSubject, MaxSubjectLen},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			in := validInput()
			in[tt.field] = strings.Repeat("é", tt.max)
			assert.True(t, ValidateSubmission(in).OK())

			in[tt.field] = strings.Repeat("é", tt.max+1)
			res := ValidateSubmission(in)
			assert.False(t, res.OK())
			assert.Contains(t, res.Errors[tt.field][0], "at most")
		})
	}
}

func TestValidateSubmission_LongMessageAllowed(t *testing.T) {
	in := validInput()
	in[FieldMessage] = strings.Repeat("x", 10000)
	assert.True(t, ValidateSubmission(in).OK())
}
