package employeeerrors

import (
	"fmt"

	"github.com/Sn4iZer/Payroll-System/internal/shared/apperror"
)

// InvalidRate flags a non-positive or otherwise out-of-range rate supplied
// at construction or adjustment.
func InvalidRate(message string) *apperror.AppError {
	return apperror.New(apperror.CodeInvalidRate, message)
}

// UnsupportedOperation flags a type-specific mutator called on the wrong
// employee variant.
func UnsupportedOperation(operation, kind string) *apperror.AppError {
	return apperror.New(
		apperror.CodeUnsupportedOperation,
		fmt.Sprintf("%s is not supported for %s employees", operation, kind),
	)
}

// MissingPeriodInput flags an hourly employee absent from the period hours
// map.
func MissingPeriodInput(name string) *apperror.AppError {
	return apperror.New(
		apperror.CodeMissingPeriodInput,
		fmt.Sprintf("missing period hours for hourly employee %s", name),
	)
}

// InvalidHours flags negative worked hours supplied for the period.
func InvalidHours(name string, hours float64) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("period hours for %s must be non-negative, got %.2f", name, hours),
	)
}
