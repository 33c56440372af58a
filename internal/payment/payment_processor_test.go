package payment_test

import (
	"context"
	"testing"

	"github.com/Sn4iZer/Payroll-System/internal/payment"
	"github.com/Sn4iZer/Payroll-System/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestBankTransfer(t *testing.T) {
	confirmation, err := payment.NewBankTransfer().Pay(context.Background(), "Amina", 11380)

	assert.NoError(t, err)
	assert.Equal(t, "Transferring 11380.00 MAD to Amina via bank transfer...", confirmation)
}

func TestCash(t *testing.T) {
	confirmation, err := payment.NewCash().Pay(context.Background(), "Laila", 2700)

	assert.NoError(t, err)
	assert.Equal(t, "Handing 2700.00 MAD cash to Laila...", confirmation)
}

func TestNewProcessor(t *testing.T) {
	t.Run("bank transfer", func(t *testing.T) {
		p, err := payment.NewProcessor(payment.MethodBankTransfer)
		assert.NoError(t, err)
		assert.IsType(t, &payment.BankTransfer{}, p)
	})

	t.Run("cash", func(t *testing.T) {
		p, err := payment.NewProcessor(payment.MethodCash)
		assert.NoError(t, err)
		assert.IsType(t, &payment.Cash{}, p)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := payment.NewProcessor("crypto")
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
	})
}
