package employeesalary

import "github.com/shopspring/decimal"

type UpsertEmployeeSalaryRequest struct {
	BaseSalary      decimal.Decimal `json:"base_salary"`
	Allowance       decimal.Decimal `json:"allowance"`
	Bonus           decimal.Decimal `json:"bonus"`
	Overtime        decimal.Decimal `json:"overtime"`
	ManualDeduction decimal.Decimal `json:"manual_deduction"`
}

type EmployeeSalaryResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	EmployeeID      string          `json:"employee_id"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	Allowance       decimal.Decimal `json:"allowance"`
	Bonus           decimal.Decimal `json:"bonus"`
	Overtime        decimal.Decimal `json:"overtime"`
	ManualDeduction decimal.Decimal `json:"manual_deduction"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	UpdatedAt       string          `json:"updated_at,omitempty"`
}
