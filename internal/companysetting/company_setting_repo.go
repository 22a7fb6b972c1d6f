package companysetting

import (
	"context"

	"hris-backoffice/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=company_setting_repo.go -destination=mock/company_setting_repo_mock.go -package=mock
type Repository interface {
	FindByCompany(ctx context.Context, companyID string) (*CompanySetting, error)
	Upsert(ctx context.Context, setting *CompanySetting) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByCompany(ctx context.Context, companyID string) (*CompanySetting, error) {
	var setting CompanySetting
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *repository) Upsert(ctx context.Context, setting *CompanySetting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "company_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"start_work",
				"end_work",
				"late_grace_minutes",
				"allowed_late_count",
				"deduction_per_late",
				"timezone",
				"updated_at",
			}),
		}).
		Create(setting).Error
}
