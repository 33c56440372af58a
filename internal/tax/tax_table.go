package tax

import (
	"encoding/json"
	"fmt"

	"github.com/Sn4iZer/Payroll-System/internal/shared/apperror"
)

type Bracket struct {
	UpperBound float64 `json:"upper_bound"`
	Rate       float64 `json:"rate"`
}

// Table is an ordered sequence of brackets with ascending upper bounds.
// Gross above the last bound is taxed at TopRate.
type Table struct {
	Brackets []Bracket `json:"brackets"`
	TopRate  float64   `json:"top_rate"`
}

// DefaultTable is the progressive reading of the reference rule: the first
// 3000 is exempt, the slice up to 10000 is taxed at 10%, everything above
// at 20%.
func DefaultTable() Table {
	return Table{
		Brackets: []Bracket{
			{UpperBound: 3000, Rate: 0},
			{UpperBound: 10000, Rate: 0.10},
		},
		TopRate: 0.20,
	}
}

// ParseTable decodes a JSON table, e.g.
// {"brackets":[{"upper_bound":3000,"rate":0}],"top_rate":0.2}.
func ParseTable(raw string) (Table, error) {
	var table Table
	if err := json.Unmarshal([]byte(raw), &table); err != nil {
		return Table{}, apperror.Wrap(err, apperror.CodeInvalidInput, "invalid tax table JSON")
	}
	if err := table.validate(); err != nil {
		return Table{}, err
	}
	return table, nil
}

func (t Table) validate() error {
	prev := 0.0
	for i, b := range t.Brackets {
		if b.UpperBound <= prev {
			return apperror.New(
				apperror.CodeInvalidInput,
				fmt.Sprintf("bracket %d: upper bound %.2f must exceed %.2f", i, b.UpperBound, prev),
			)
		}
		if b.Rate < 0 || b.Rate >= 1 {
			return apperror.New(
				apperror.CodeInvalidRate,
				fmt.Sprintf("bracket %d: rate %.2f must be within [0, 1)", i, b.Rate),
			)
		}
		prev = b.UpperBound
	}
	if t.TopRate < 0 || t.TopRate >= 1 {
		return apperror.New(
			apperror.CodeInvalidRate,
			fmt.Sprintf("top rate %.2f must be within [0, 1)", t.TopRate),
		)
	}
	return nil
}
