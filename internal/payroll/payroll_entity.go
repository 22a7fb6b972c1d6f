package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusComputed       = "COMPUTED"
	StatusUnadjusted     = "UNADJUSTED"
	StatusNoSalaryRecord = "NO_SALARY_RECORD"
)

// PayrollResult is derived on every request and never written back to
// storage. Deduction and net fields stay nil when attendance could not be
// read (StatusUnadjusted) or no salary exists (StatusNoSalaryRecord).
type PayrollResult struct {
	CompanyID   string    `json:"company_id"`
	EmployeeID  string    `json:"employee_id"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`

	BaseSalary      decimal.Decimal `json:"base_salary"`
	Allowance       decimal.Decimal `json:"allowance"`
	Bonus           decimal.Decimal `json:"bonus"`
	Overtime        decimal.Decimal `json:"overtime"`
	ManualDeduction decimal.Decimal `json:"manual_deduction"`
	TotalIncome     decimal.Decimal `json:"total_income"`

	LateCount           int              `json:"late_count"`
	AllowedLateCount    int              `json:"allowed_late_count"`
	PunishableLates     int              `json:"punishable_lates"`
	DeductionPerLate    decimal.Decimal  `json:"deduction_per_late"`
	LateDeductionAmount *decimal.Decimal `json:"late_deduction_amount,omitempty"`
	TotalDeduction      *decimal.Decimal `json:"total_deduction,omitempty"`
	NetSalary           *decimal.Decimal `json:"net_salary,omitempty"`

	Note   string `json:"note"`
	Status string `json:"status"`
}
