package employee_test

import (
	"testing"

	"github.com/Sn4iZer/Payroll-System/internal/employee"
	"github.com/Sn4iZer/Payroll-System/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestBuildRoster(t *testing.T) {
	t.Run("success preserves input order", func(t *testing.T) {
		roster, err := employee.BuildRoster([]employee.RosterEntryRequest{
			{Name: "Amina", Department: "Finance", Kind: "SALARIED", Rate: 12000},
			{Name: "Yassine", Department: "IT", Kind: "HOURLY", Rate: 80},
			{Name: "Laila", Department: "Marketing", Kind: "CONTRACTOR", Rate: 900},
		})

		assert.NoError(t, err)
		assert.Len(t, roster, 3)
		assert.Equal(t, "Amina", roster[0].Name())
		assert.Equal(t, employee.KindSalaried, roster[0].Kind())
		assert.Equal(t, employee.KindHourly, roster[1].Kind())
		assert.Equal(t, employee.KindContractor, roster[2].Kind())
		assert.Equal(t, "Marketing", roster[2].Department())
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := employee.BuildRoster([]employee.RosterEntryRequest{
			{Department: "Finance", Kind: "SALARIED", Rate: 12000},
		})

		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
		assert.Contains(t, err.Error(), "Name")
	})

	t.Run("negative rate", func(t *testing.T) {
		_, err := employee.BuildRoster([]employee.RosterEntryRequest{
			{Name: "Amina", Department: "Finance", Kind: "SALARIED", Rate: -5},
		})

		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidRate))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := employee.BuildRoster([]employee.RosterEntryRequest{
			{Name: "Amina", Department: "Finance", Kind: "INTERN", Rate: 1000},
		})

		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
	})
}
