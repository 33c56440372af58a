package payroll

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Sn4iZer/Payroll-System/internal/employee"
	"github.com/Sn4iZer/Payroll-System/internal/paylog"
	"github.com/Sn4iZer/Payroll-System/internal/payment"
	"github.com/Sn4iZer/Payroll-System/internal/shared/apperror"
	"github.com/Sn4iZer/Payroll-System/internal/tax"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	ProcessPayroll(ctx context.Context, inputs employee.PeriodInputs) (RunResult, error)
}

type service struct {
	employees []employee.Employee
	tax       *tax.Calculator
	processor payment.Processor
	trail     paylog.Logger
	payslips  PayslipWriter
	logger    *zap.Logger
}

type Option func(*service)

func WithPayslipWriter(w PayslipWriter) Option {
	return func(s *service) { s.payslips = w }
}

func NewService(
	employees []employee.Employee,
	taxCalc *tax.Calculator,
	processor payment.Processor,
	trail paylog.Logger,
	opts ...Option,
) Service {
	s := &service{
		employees: employees,
		tax:       taxCalc,
		processor: processor,
		trail:     trail,
		logger:    zap.L().Named("payroll.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessPayroll pays each employee in input order. An employee whose
// computation fails is skipped with a logged warning and the rest of the
// roster still runs; the failures come back joined into one error next to
// the partial result. Only a trail write failure aborts the run.
func (s *service) ProcessPayroll(ctx context.Context, inputs employee.PeriodInputs) (RunResult, error) {
	result := RunResult{RunID: uuid.New().String()}

	if err := s.trail.Log("Running payroll..."); err != nil {
		return result, err
	}

	var failures []error
	for _, emp := range s.employees {
		line, err := s.payOne(ctx, emp, inputs)
		if err != nil {
			if apperror.HasCode(err, apperror.CodeLogWriteFailed) {
				return result, err
			}

			s.logger.Warn("skipping employee",
				zap.String("employee", emp.Name()),
				zap.Error(err),
			)
			if logErr := s.trail.Log(fmt.Sprintf("Skipping %s: %v", emp.Name(), err)); logErr != nil {
				return result, logErr
			}

			result.Skipped = append(result.Skipped, emp.Name())
			failures = append(failures, fmt.Errorf("employee %s: %w", emp.Name(), err))
			continue
		}
		result.Payments = append(result.Payments, line)
	}

	if err := s.trail.Log("Payroll complete."); err != nil {
		return result, err
	}

	return result, errors.Join(failures...)
}

func (s *service) payOne(ctx context.Context, emp employee.Employee, inputs employee.PeriodInputs) (PaymentLine, error) {
	gross, err := emp.GrossPay(inputs)
	if err != nil {
		return PaymentLine{}, err
	}
	gross = round2(gross)

	net, err := s.tax.Net(gross)
	if err != nil {
		return PaymentLine{}, err
	}

	confirmation, err := s.processor.Pay(ctx, emp.Name(), net)
	if err != nil {
		return PaymentLine{}, err
	}

	if err := s.trail.Log(fmt.Sprintf("Paying %s: gross %.2f MAD → net %.2f MAD", emp.Name(), gross, net)); err != nil {
		return PaymentLine{}, err
	}

	s.logger.Debug("payment processed",
		zap.String("employee", emp.Name()),
		zap.Float64("gross", gross),
		zap.Float64("net", net),
		zap.String("confirmation", confirmation),
	)

	if s.payslips != nil {
		// A failed payslip must not undo a recorded payment.
		if err := s.payslips.Write(emp, gross, net); err != nil {
			s.logger.Warn("payslip generation failed",
				zap.String("employee", emp.Name()),
				zap.Error(err),
			)
		}
	}

	return PaymentLine{
		EmployeeName: emp.Name(),
		Department:   emp.Department(),
		Gross:        gross,
		Net:          net,
		Confirmation: confirmation,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
