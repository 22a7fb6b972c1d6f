package employee

import (
	"context"

	"hris-backoffice/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock

// Directory is the read-only view of a tenant's employees.
type Directory interface {
	CountActiveByCompany(ctx context.Context, companyID string) (int64, error)
	// ListActiveByCompany pages through active employees ordered by full
	// name then id, so repeated calls see a stable order.
	ListActiveByCompany(ctx context.Context, companyID string, limit, offset int) ([]Employee, int64, error)
	BelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Directory {
	return &repository{db: db}
}

func (r *repository) active(ctx context.Context, companyID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Where("employment_status = ?", StatusActive)
}

func (r *repository) CountActiveByCompany(ctx context.Context, companyID string) (int64, error) {
	var total int64
	err := r.active(ctx, companyID).Count(&total).Error
	return total, err
}

func (r *repository) ListActiveByCompany(ctx context.Context, companyID string, limit, offset int) ([]Employee, int64, error) {
	query := r.active(ctx, companyID).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Employee
	err := query.
		Order("full_name ASC").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) BelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", employeeID).
		Count(&total).Error
	return total > 0, err
}
