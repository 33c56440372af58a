package payment

import (
	"context"
	"fmt"

	"github.com/Sn4iZer/Payroll-System/internal/shared/apperror"
)

const (
	MethodBankTransfer = "bank_transfer"
	MethodCash         = "cash"
)

// Processor disburses a net amount to an employee. The current processors
// are stubs that only format a confirmation; real payment rails plug in
// behind the same contract.
type Processor interface {
	Pay(ctx context.Context, employeeName string, amount float64) (string, error)
}

// NewProcessor selects a processor by method name.
func NewProcessor(method string) (Processor, error) {
	switch method {
	case MethodBankTransfer:
		return NewBankTransfer(), nil
	case MethodCash:
		return NewCash(), nil
	default:
		return nil, apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("unknown payment method %q", method),
		)
	}
}

type BankTransfer struct{}

func NewBankTransfer() *BankTransfer { return &BankTransfer{} }

func (*BankTransfer) Pay(_ context.Context, employeeName string, amount float64) (string, error) {
	return fmt.Sprintf("Transferring %.2f MAD to %s via bank transfer...", amount, employeeName), nil
}

type Cash struct{}

func NewCash() *Cash { return &Cash{} }

func (*Cash) Pay(_ context.Context, employeeName string, amount float64) (string, error) {
	return fmt.Sprintf("Handing %.2f MAD cash to %s...", amount, employeeName), nil
}
