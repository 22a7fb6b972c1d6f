package payroll

import (
	"hris-backoffice/internal/shared/worktime"

	"github.com/shopspring/decimal"
)

type PayrollResultResponse struct {
	CompanyID           string  `json:"company_id"`
	EmployeeID          string  `json:"employee_id"`
	PeriodStart         string  `json:"period_start"`
	PeriodEnd           string  `json:"period_end"`
	BaseSalary          string  `json:"base_salary"`
	Allowance           string  `json:"allowance"`
	Bonus               string  `json:"bonus"`
	Overtime            string  `json:"overtime"`
	ManualDeduction     string  `json:"manual_deduction"`
	TotalIncome         string  `json:"total_income"`
	LateCount           int     `json:"late_count"`
	AllowedLateCount    int     `json:"allowed_late_count"`
	PunishableLates     int     `json:"punishable_lates"`
	DeductionPerLate    string  `json:"deduction_per_late"`
	LateDeductionAmount *string `json:"late_deduction_amount"`
	TotalDeduction      *string `json:"total_deduction"`
	NetSalary           *string `json:"net_salary"`
	Note                string  `json:"note"`
	Status              string  `json:"status"`
}

// PayslipFile is a rendered payslip ready to be streamed.
type PayslipFile struct {
	FileName string
	Content  []byte
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func optionalMoney(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	v := money(*d)
	return &v
}

func mapToResponse(r PayrollResult) PayrollResultResponse {
	return PayrollResultResponse{
		CompanyID:           r.CompanyID,
		EmployeeID:          r.EmployeeID,
		PeriodStart:         r.PeriodStart.Format(worktime.DateLayout),
		PeriodEnd:           r.PeriodEnd.Format(worktime.DateLayout),
		BaseSalary:          money(r.BaseSalary),
		Allowance:           money(r.Allowance),
		Bonus:               money(r.Bonus),
		Overtime:            money(r.Overtime),
		ManualDeduction:     money(r.ManualDeduction),
		TotalIncome:         money(r.TotalIncome),
		LateCount:           r.LateCount,
		AllowedLateCount:    r.AllowedLateCount,
		PunishableLates:     r.PunishableLates,
		DeductionPerLate:    money(r.DeductionPerLate),
		LateDeductionAmount: optionalMoney(r.LateDeductionAmount),
		TotalDeduction:      optionalMoney(r.TotalDeduction),
		NetSalary:           optionalMoney(r.NetSalary),
		Note:                r.Note,
		Status:              r.Status,
	}
}

func mapToListResponse(results []PayrollResult) []PayrollResultResponse {
	res := make([]PayrollResultResponse, len(results))
	for i, r := range results {
		res[i] = mapToResponse(r)
	}
	return res
}
