package apperror

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NewValidator builds a validator whose reported field names come from the
// json tag (e.g. `json:"monthly_salary"`), so validation errors read like
// the names callers supplied.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts a validator error into the matching AppError.
// Rate constraints (gt/gte) map to INVALID_RATE, everything else to
// INVALID_INPUT.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]
		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		case "gt", "gte":
			return New(CodeInvalidRate, fmt.Sprintf("%s must be positive", humanReadableField))
		default:
			return InvalidField(humanReadableField)
		}
	}

	return ErrInvalidInput
}
