package employee

import (
	"fmt"

	employeeerrors "github.com/Sn4iZer/Payroll-System/internal/employee/errors"
)

type Kind string

const (
	KindSalaried   Kind = "SALARIED"
	KindHourly     Kind = "HOURLY"
	KindContractor Kind = "CONTRACTOR"
)

// PeriodInputs carries the external per-period figures for one payroll run.
// Hours are keyed by employee name; only hourly employees consult them.
type PeriodInputs struct {
	Hours map[string]float64
}

func (p PeriodInputs) HoursFor(name string) (float64, bool) {
	hours, ok := p.Hours[name]
	return hours, ok
}

// Employee is the capability contract shared by all compensation variants.
// GrossPay is read-only; the mutators are explicit state transitions applied
// before a run. Mutators outside a variant's capabilities return an
// UNSUPPORTED_OPERATION error.
type Employee interface {
	Name() string
	Department() string
	Kind() Kind
	GrossPay(inputs PeriodInputs) (float64, error)
	ApplyRaise(percent float64) error
	SetOvertimeMultiplier(multiplier float64) error
	LogDay() error
}

type base struct {
	name       string
	department string
}

func (b base) Name() string       { return b.name }
func (b base) Department() string { return b.department }

func (b base) String() string {
	return fmt.Sprintf("%s (%s)", b.name, b.department)
}

// applyRaise compounds percent onto rate. Repeated calls multiply, so two
// 5% raises yield 10.25%, not 10%.
func applyRaise(rate *float64, percent float64) error {
	if percent <= 0 {
		return employeeerrors.InvalidRate(
			fmt.Sprintf("raise percent must be positive, got %.2f", percent),
		)
	}
	*rate *= 1 + percent/100
	return nil
}
