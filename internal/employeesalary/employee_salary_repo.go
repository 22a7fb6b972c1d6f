package employeesalary

import (
	"context"

	"hris-backoffice/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_salary_repo.go -destination=mock/employee_salary_repo_mock.go -package=mock
type Repository interface {
	FindByEmployee(ctx context.Context, companyID, employeeID string) (*EmployeeSalary, error)
	Upsert(ctx context.Context, salary *EmployeeSalary) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmployee(ctx context.Context, companyID, employeeID string) (*EmployeeSalary, error) {
	var salary EmployeeSalary
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		First(&salary).Error
	if err != nil {
		return nil, err
	}
	return &salary, nil
}

// Upsert writes the row and reads back the stored id and timestamps.
func (r *repository) Upsert(ctx context.Context, salary *EmployeeSalary) error {
	return r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "company_id"}, {Name: "employee_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"base_salary",
					"allowance",
					"bonus",
					"overtime",
					"manual_deduction",
					"updated_at",
				}),
			},
			clause.Returning{},
		).
		Create(salary).Error
}
