package employeesalary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeSalary holds the monthly components of one employee's pay. There
// is at most one row per tenant and employee.
type EmployeeSalary struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_employee_salary_employee,priority:1"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_employee_salary_employee,priority:2"`
	BaseSalary      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Allowance       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Bonus           decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Overtime        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	ManualDeduction decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (EmployeeSalary) TableName() string {
	return "employee_salaries"
}

// TotalIncome is base salary plus allowance, bonus and overtime.
func (s EmployeeSalary) TotalIncome() decimal.Decimal {
	return s.BaseSalary.Add(s.Allowance).Add(s.Bonus).Add(s.Overtime)
}
