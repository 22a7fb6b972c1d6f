package rbac

import (
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	// LoadCompanyGrants reads role assignments and role permissions of one
	// company from a single snapshot.
	LoadCompanyGrants(companyID string) (CompanyGrants, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type EmployeeRoleRow struct {
	EmployeeID string
	RoleID     string
}

type RolePermissionRow struct {
	RoleID   string
	Resource string
	Action   string
}

type CompanyGrants struct {
	EmployeeRoles   []EmployeeRoleRow
	RolePermissions []RolePermissionRow
}

func (r *repository) LoadCompanyGrants(companyID string) (CompanyGrants, error) {
	var grants CompanyGrants

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Table("employee_roles").
			Select("employee_roles.employee_id, employee_roles.role_id").
			Joins("JOIN roles ON roles.id = employee_roles.role_id").
			Where("roles.company_id = ?", companyID).
			Scan(&grants.EmployeeRoles).Error; err != nil {
			return err
		}

		return tx.
			Table("role_permissions").
			Select("role_permissions.role_id, permissions.resource, permissions.action").
			Joins("JOIN roles ON roles.id = role_permissions.role_id").
			Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
			Where("roles.company_id = ?", companyID).
			Scan(&grants.RolePermissions).Error
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})

	return grants, err
}
