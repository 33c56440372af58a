package payroll

type PaymentLine struct {
	EmployeeName string  `json:"employee_name"`
	Department   string  `json:"department"`
	Gross        float64 `json:"gross"`
	Net          float64 `json:"net"`
	Confirmation string  `json:"confirmation"`
}

type RunResult struct {
	RunID    string        `json:"run_id"`
	Payments []PaymentLine `json:"payments"`
	Skipped  []string      `json:"skipped,omitempty"`
}
