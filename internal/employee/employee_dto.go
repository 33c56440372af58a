package employee

import (
	"fmt"

	"github.com/Sn4iZer/Payroll-System/internal/shared/apperror"
)

type RosterEntryRequest struct {
	Name       string  `json:"name" validate:"required"`
	Department string  `json:"department" validate:"required"`
	Kind       string  `json:"kind" validate:"required,oneof=SALARIED HOURLY CONTRACTOR"`
	Rate       float64 `json:"rate" validate:"required,gt=0"`
}

var validate = apperror.NewValidator()

// BuildRoster validates each entry and constructs the matching employee
// variant, preserving input order. Rate is the monthly salary, hourly rate
// or daily rate depending on kind.
func BuildRoster(entries []RosterEntryRequest) ([]Employee, error) {
	roster := make([]Employee, 0, len(entries))
	for _, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			return nil, apperror.MapValidationError(err)
		}

		var (
			emp Employee
			err error
		)
		switch Kind(entry.Kind) {
		case KindSalaried:
			emp, err = NewSalaried(entry.Name, entry.Department, entry.Rate)
		case KindHourly:
			emp, err = NewHourly(entry.Name, entry.Department, entry.Rate)
		case KindContractor:
			emp, err = NewContractor(entry.Name, entry.Department, entry.Rate)
		default:
			err = apperror.New(
				apperror.CodeInvalidInput,
				fmt.Sprintf("unknown employee kind %q", entry.Kind),
			)
		}
		if err != nil {
			return nil, err
		}

		roster = append(roster, emp)
	}
	return roster, nil
}
