package app

import (
	"context"
	"os"

	"github.com/Sn4iZer/Payroll-System/internal/paylog"
	"github.com/Sn4iZer/Payroll-System/internal/payment"
	"github.com/Sn4iZer/Payroll-System/internal/payroll"
	"github.com/Sn4iZer/Payroll-System/internal/tax"

	"go.uber.org/zap"
)

// Run wires the payroll system from the environment and processes the
// reference roster once.
func Run() error {
	logger := zap.L().Named("app.payroll")

	table := tax.DefaultTable()
	if raw := os.Getenv("PAYROLL_TAX_TABLE"); raw != "" {
		parsed, err := tax.ParseTable(raw)
		if err != nil {
			return err
		}
		table = parsed
	}
	taxCalc, err := tax.NewCalculator(table)
	if err != nil {
		return err
	}

	processor, err := payment.NewProcessor(getenvDefault("PAYROLL_PAYMENT_METHOD", payment.MethodCash))
	if err != nil {
		return err
	}

	trail, err := paylog.NewLogger(
		getenvDefault("PAYROLL_LOG_SINK", paylog.SinkFile),
		getenvDefault("PAYROLL_LOG_FILE", "payroll.log"),
	)
	if err != nil {
		return err
	}

	var opts []payroll.Option
	if dir := os.Getenv("PAYROLL_PAYSLIP_DIR"); dir != "" {
		payslips, err := payroll.NewPDFPayslipWriter(dir)
		if err != nil {
			return err
		}
		opts = append(opts, payroll.WithPayslipWriter(payslips))
	}

	roster, inputs, err := exampleScenario()
	if err != nil {
		return err
	}

	svc := payroll.NewService(roster, taxCalc, processor, trail, opts...)
	result, err := svc.ProcessPayroll(context.Background(), inputs)

	logger.Info("payroll processed",
		zap.String("run_id", result.RunID),
		zap.Int("payments", len(result.Payments)),
		zap.Strings("skipped", result.Skipped),
	)

	return err
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
