package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	// With field
	err := &ValidationError{Field: "salary", Message: "must be a number"}
	assert.Equal(t, "invalid salary: must be a number", err.Error())

	// Without field
	err = &ValidationError{Message: "employee name is required"}
	assert.Equal(t, "employee name is required", err.Error())
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))
	assert.Equal(t, "error: something went wrong", FormatError(errors.New("something went wrong")))
	assert.Equal(t, "error: invalid salary: not a number", FormatError(&ValidationError{Field: "salary", Message: "not a number"}))
}

func TestErrorsAs(t *testing.T) {
	var err error = &ValidationError{Field: "id", Message: "must be an integer"}
	wrapped := fmt.Errorf("add: %w", err)

	var ve *ValidationError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "id", ve.Field)
}
