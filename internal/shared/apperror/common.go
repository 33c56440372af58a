package apperror

import "fmt"

var (
	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
	)
)

// RequiredField returns the INVALID_INPUT error for a missing field.
func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field))
}

// InvalidField returns the INVALID_INPUT error for a malformed field.
func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field))
}
