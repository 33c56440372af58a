package app

import (
	"github.com/Sn4iZer/Payroll-System/internal/employee"
)

// exampleScenario builds the fixed demo roster: a salaried employee with a
// pending 5% raise, an hourly employee with overtime at a doubled rate, and
// a contractor with three logged days.
func exampleScenario() ([]employee.Employee, employee.PeriodInputs, error) {
	roster, err := employee.BuildRoster([]employee.RosterEntryRequest{
		{Name: "Amina", Department: "Finance", Kind: string(employee.KindSalaried), Rate: 12000},
		{Name: "Yassine", Department: "IT", Kind: string(employee.KindHourly), Rate: 80},
		{Name: "Laila", Department: "Marketing", Kind: string(employee.KindContractor), Rate: 900},
	})
	if err != nil {
		return nil, employee.PeriodInputs{}, err
	}

	if err := roster[0].ApplyRaise(5); err != nil {
		return nil, employee.PeriodInputs{}, err
	}
	if err := roster[1].SetOvertimeMultiplier(2.0); err != nil {
		return nil, employee.PeriodInputs{}, err
	}
	for i := 0; i < 3; i++ {
		if err := roster[2].LogDay(); err != nil {
			return nil, employee.PeriodInputs{}, err
		}
	}

	inputs := employee.PeriodInputs{Hours: map[string]float64{"Yassine": 172}}
	return roster, inputs, nil
}
