package employee

import (
	"fmt"

	employeeerrors "github.com/Sn4iZer/Payroll-System/internal/employee/errors"
)

// Salaried earns a fixed monthly amount regardless of the period inputs.
type Salaried struct {
	base
	monthlySalary float64
}

func NewSalaried(name, department string, monthlySalary float64) (*Salaried, error) {
	if monthlySalary <= 0 {
		return nil, employeeerrors.InvalidRate(
			fmt.Sprintf("monthly salary must be positive, got %.2f", monthlySalary),
		)
	}
	return &Salaried{
		base:          base{name: name, department: department},
		monthlySalary: monthlySalary,
	}, nil
}

func (s *Salaried) Kind() Kind { return KindSalaried }

func (s *Salaried) GrossPay(PeriodInputs) (float64, error) {
	return s.monthlySalary, nil
}

func (s *Salaried) ApplyRaise(percent float64) error {
	return applyRaise(&s.monthlySalary, percent)
}

func (s *Salaried) SetOvertimeMultiplier(float64) error {
	return employeeerrors.UnsupportedOperation("set_overtime_multiplier", string(KindSalaried))
}

func (s *Salaried) LogDay() error {
	return employeeerrors.UnsupportedOperation("log_day", string(KindSalaried))
}

func (s *Salaried) MonthlySalary() float64 { return s.monthlySalary }
