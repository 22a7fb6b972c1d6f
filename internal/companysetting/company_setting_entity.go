package companysetting

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanySetting is the stored work-time policy of one tenant.
type CompanySetting struct {
	CompanyID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StartWork        string          `gorm:"type:varchar(8);not null"`
	EndWork          string          `gorm:"type:varchar(8);not null"`
	LateGraceMinutes int             `gorm:"not null;default:0"`
	AllowedLateCount int             `gorm:"not null;default:0"`
	DeductionPerLate decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Timezone         string          `gorm:"type:varchar(64)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (CompanySetting) TableName() string {
	return "company_settings"
}
