package tax_test

import (
	"testing"

	"github.com/Sn4iZer/Payroll-System/internal/shared/apperror"
	"github.com/Sn4iZer/Payroll-System/internal/tax"

	"github.com/stretchr/testify/assert"
)

func defaultCalculator(t *testing.T) *tax.Calculator {
	t.Helper()
	calc, err := tax.NewCalculator(tax.DefaultTable())
	assert.NoError(t, err)
	return calc
}

func TestCalculatorNet(t *testing.T) {
	calc := defaultCalculator(t)

	t.Run("zero gross is zero net", func(t *testing.T) {
		net, err := calc.Net(0)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, net)
	})

	t.Run("gross within exempt bracket is untouched", func(t *testing.T) {
		net, err := calc.Net(2700)
		assert.NoError(t, err)
		assert.Equal(t, 2700.0, net)
	})

	t.Run("bound belongs to the lower bracket", func(t *testing.T) {
		net, err := calc.Net(3000)
		assert.NoError(t, err)
		assert.Equal(t, 3000.0, net)

		// 3000 exempt + 7000 at 10%
		net, err = calc.Net(10000)
		assert.NoError(t, err)
		assert.Equal(t, 9300.0, net)
	})

	t.Run("progressive slices", func(t *testing.T) {
		// 3000 at 0% + 7000 at 10% + 2600 at 20% = 1220 tax
		net, err := calc.Net(12600)
		assert.NoError(t, err)
		assert.Equal(t, 11380.0, net)
	})

	t.Run("excess above last bound at top rate", func(t *testing.T) {
		// 700 + (14720-10000)*0.20 = 1644 tax
		net, err := calc.Net(14720)
		assert.NoError(t, err)
		assert.Equal(t, 13076.0, net)
	})

	t.Run("net never exceeds gross", func(t *testing.T) {
		for _, gross := range []float64{0, 1, 2999.99, 3000, 3000.01, 9999, 10000, 10000.01, 12600, 14720, 1e6} {
			net, err := calc.Net(gross)
			assert.NoError(t, err)
			assert.LessOrEqual(t, net, gross)
			assert.GreaterOrEqual(t, net, 0.0)
		}
	})

	t.Run("negative gross rejected", func(t *testing.T) {
		_, err := calc.Net(-1)
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
	})
}

func TestCalculatorFirstBracketRate(t *testing.T) {
	calc, err := tax.NewCalculator(tax.Table{
		Brackets: []tax.Bracket{{UpperBound: 3000, Rate: 0.05}},
		TopRate:  0.20,
	})
	assert.NoError(t, err)

	// Everything under the first bound pays the first rate.
	net, err := calc.Net(1000)
	assert.NoError(t, err)
	assert.Equal(t, 950.0, net)
}

func TestCalculatorFlatTopRate(t *testing.T) {
	// No brackets: the whole gross pays the top rate.
	calc, err := tax.NewCalculator(tax.Table{TopRate: 0.20})
	assert.NoError(t, err)

	net, err := calc.Net(10000)
	assert.NoError(t, err)
	assert.Equal(t, 8000.0, net)
}

func TestTableValidation(t *testing.T) {
	t.Run("descending bounds rejected", func(t *testing.T) {
		_, err := tax.NewCalculator(tax.Table{
			Brackets: []tax.Bracket{
				{UpperBound: 10000, Rate: 0.10},
				{UpperBound: 3000, Rate: 0},
			},
			TopRate: 0.20,
		})
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
	})

	t.Run("rate out of range rejected", func(t *testing.T) {
		_, err := tax.NewCalculator(tax.Table{
			Brackets: []tax.Bracket{{UpperBound: 3000, Rate: 1.5}},
			TopRate:  0.20,
		})
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidRate))

		_, err = tax.NewCalculator(tax.Table{TopRate: -0.1})
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidRate))
	})
}

func TestParseTable(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		table, err := tax.ParseTable(`{"brackets":[{"upper_bound":5000,"rate":0.05}],"top_rate":0.25}`)
		assert.NoError(t, err)
		assert.Len(t, table.Brackets, 1)
		assert.Equal(t, 0.25, table.TopRate)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := tax.ParseTable(`{"brackets":`)
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
	})

	t.Run("invalid table", func(t *testing.T) {
		_, err := tax.ParseTable(`{"brackets":[{"upper_bound":0,"rate":0}],"top_rate":0.2}`)
		assert.Error(t, err)
	})
}
