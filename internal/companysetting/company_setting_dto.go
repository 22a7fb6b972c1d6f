package companysetting

import "github.com/shopspring/decimal"

type UpsertCompanySettingRequest struct {
	StartWork        string          `json:"start_work" binding:"required"`
	EndWork          string          `json:"end_work" binding:"required"`
	LateGraceMinutes int             `json:"late_grace_minutes" binding:"gte=0"`
	AllowedLateCount int             `json:"allowed_late_count" binding:"gte=0"`
	DeductionPerLate decimal.Decimal `json:"deduction_per_late"`
	Timezone         string          `json:"timezone"`
}

type CompanySettingResponse struct {
	CompanyID        string          `json:"company_id"`
	StartWork        string          `json:"start_work"`
	EndWork          string          `json:"end_work"`
	LateGraceMinutes int             `json:"late_grace_minutes"`
	AllowedLateCount int             `json:"allowed_late_count"`
	DeductionPerLate decimal.Decimal `json:"deduction_per_late"`
	Timezone         string          `json:"timezone"`
	IsDefault        bool            `json:"is_default"`
	UpdatedAt        string          `json:"updated_at,omitempty"`
}
