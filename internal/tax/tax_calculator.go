package tax

import (
	"math"

	"github.com/Sn4iZer/Payroll-System/internal/shared/apperror"
)

type Calculator struct {
	table Table
}

func NewCalculator(table Table) (*Calculator, error) {
	if err := table.validate(); err != nil {
		return nil, err
	}
	return &Calculator{table: table}, nil
}

// Net maps gross pay to net pay by walking the bracket table progressively:
// the slice of gross within each bracket is taxed at that bracket's rate,
// and the remainder above the last bound at TopRate. A gross exactly on a
// bound belongs to the lower bracket.
func (c *Calculator) Net(gross float64) (float64, error) {
	if gross < 0 {
		return 0, apperror.New(apperror.CodeInvalidInput, "gross pay must be non-negative")
	}

	var total float64
	prev := 0.0
	for _, b := range c.table.Brackets {
		if gross <= prev {
			break
		}
		total += (math.Min(gross, b.UpperBound) - prev) * b.Rate
		prev = b.UpperBound
	}
	if gross > prev {
		total += (gross - prev) * c.table.TopRate
	}

	return round2(gross - total), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
