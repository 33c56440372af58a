package employee

import (
	"fmt"

	employeeerrors "github.com/Sn4iZer/Payroll-System/internal/employee/errors"
)

// Contractor earns its daily rate times the days logged within the run.
type Contractor struct {
	base
	dailyRate  float64
	daysWorked int
}

func NewContractor(name, department string, dailyRate float64) (*Contractor, error) {
	if dailyRate <= 0 {
		return nil, employeeerrors.InvalidRate(
			fmt.Sprintf("daily rate must be positive, got %.2f", dailyRate),
		)
	}
	return &Contractor{
		base:      base{name: name, department: department},
		dailyRate: dailyRate,
	}, nil
}

func (c *Contractor) Kind() Kind { return KindContractor }

func (c *Contractor) GrossPay(PeriodInputs) (float64, error) {
	return c.dailyRate * float64(c.daysWorked), nil
}

func (c *Contractor) ApplyRaise(percent float64) error {
	return applyRaise(&c.dailyRate, percent)
}

func (c *Contractor) SetOvertimeMultiplier(float64) error {
	return employeeerrors.UnsupportedOperation("set_overtime_multiplier", string(KindContractor))
}

// LogDay increments the day counter by one. The counter never decreases
// within a run; ResetDays starts the next period over.
func (c *Contractor) LogDay() error {
	c.daysWorked++
	return nil
}

func (c *Contractor) ResetDays() { c.daysWorked = 0 }

func (c *Contractor) DailyRate() float64 { return c.dailyRate }
func (c *Contractor) DaysWorked() int    { return c.daysWorked }
