package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Date   string `validate:"required,datetime=2006-01-02"`
	Rating int    `validate:"min=1,max=5"`
	Kind   string `validate:"oneof=before after"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(sampleRequest{
		Email:  "jane@example.com",
		Date:   "2024-01-10",
		Rating: 5,
		Kind:   "before",
	})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(sampleRequest{
		Email:  "not-an-email",
		Date:   "10/01/2024",
		Rating: 6,
		Kind:   "during",
	})
	require.Error(t, err)

	fields := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", fields["Email"])
	assert.Equal(t, "Date must match the format 2006-01-02", fields["Date"])
	assert.Equal(t, "Rating must be at most 5", fields["Rating"])
	assert.Equal(t, "Kind must be one of: before after", fields["Kind"])
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(sampleRequest{Rating: 3, Kind: "after"})
	require.Error(t, err)

	fields := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email is required", fields["Email"])
	assert.Equal(t, "Date is required", fields["Date"])
}

func TestFormatValidationErrorsNonValidatorError(t *testing.T) {
	cv := NewValidator()

	fields := cv.FormatValidationErrors(assert.AnError)
	assert.Empty(t, fields)
}
