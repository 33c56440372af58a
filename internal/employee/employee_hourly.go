package employee

import (
	"fmt"
	"math"

	employeeerrors "github.com/Sn4iZer/Payroll-System/internal/employee/errors"
)

const (
	// StandardHours is the per-period threshold above which hours count as
	// overtime.
	StandardHours = 160.0

	DefaultOvertimeMultiplier = 1.5
)

// Hourly earns its hourly rate for worked hours supplied per period, with
// hours beyond StandardHours paid at the overtime multiplier.
type Hourly struct {
	base
	hourlyRate         float64
	overtimeMultiplier float64
}

func NewHourly(name, department string, hourlyRate float64) (*Hourly, error) {
	if hourlyRate <= 0 {
		return nil, employeeerrors.InvalidRate(
			fmt.Sprintf("hourly rate must be positive, got %.2f", hourlyRate),
		)
	}
	return &Hourly{
		base:               base{name: name, department: department},
		hourlyRate:         hourlyRate,
		overtimeMultiplier: DefaultOvertimeMultiplier,
	}, nil
}

func (h *Hourly) Kind() Kind { return KindHourly }

func (h *Hourly) GrossPay(inputs PeriodInputs) (float64, error) {
	hours, ok := inputs.HoursFor(h.name)
	if !ok {
		return 0, employeeerrors.MissingPeriodInput(h.name)
	}
	if hours < 0 {
		return 0, employeeerrors.InvalidHours(h.name, hours)
	}

	baseHours := math.Min(hours, StandardHours)
	overtimeHours := math.Max(hours-StandardHours, 0)
	return baseHours*h.hourlyRate + overtimeHours*h.hourlyRate*h.overtimeMultiplier, nil
}

func (h *Hourly) ApplyRaise(percent float64) error {
	return applyRaise(&h.hourlyRate, percent)
}

// SetOvertimeMultiplier replaces the multiplier. Anything below 1.0 would
// pay overtime under the base rate, so the floor is 1.0.
func (h *Hourly) SetOvertimeMultiplier(multiplier float64) error {
	if multiplier < 1.0 {
		return employeeerrors.InvalidRate(
			fmt.Sprintf("overtime multiplier must be at least 1.0, got %.2f", multiplier),
		)
	}
	h.overtimeMultiplier = multiplier
	return nil
}

func (h *Hourly) LogDay() error {
	return employeeerrors.UnsupportedOperation("log_day", string(KindHourly))
}

func (h *Hourly) HourlyRate() float64         { return h.hourlyRate }
func (h *Hourly) OvertimeMultiplier() float64 { return h.overtimeMultiplier }
