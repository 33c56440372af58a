package payroll

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Sn4iZer/Payroll-System/internal/employee"
	"github.com/Sn4iZer/Payroll-System/internal/shared/apperror"

	"github.com/jung-kurt/gofpdf"
)

type PayslipWriter interface {
	Write(emp employee.Employee, gross, net float64) error
}

type pdfPayslipWriter struct {
	dir string
}

// NewPDFPayslipWriter writes one payslip PDF per payment into dir, creating
// it if absent. Files are named after the employee, so re-running a period
// overwrites the previous slip.
func NewPDFPayslipWriter(dir string) (PayslipWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "create payslip directory")
	}
	return &pdfPayslipWriter{dir: dir}, nil
}

func (w *pdfPayslipWriter) Write(emp employee.Employee, gross, net float64) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", emp.Name()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", emp.Department()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %.2f MAD", gross))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Tax: %.2f MAD", gross-net))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f MAD", net))

	path := filepath.Join(w.dir, payslipFileName(emp.Name()))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "write payslip pdf")
	}
	return nil
}

func payslipFileName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-")) + ".pdf"
}
