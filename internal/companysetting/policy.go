package companysetting

import (
	"time"

	"hris-backoffice/internal/shared/worktime"

	"github.com/shopspring/decimal"
)

const (
	DefaultStartWork = "08:00"
	DefaultEndWork   = "17:00"
)

// Policy is the effective, fully defaulted work-time policy of a tenant.
type Policy struct {
	CompanyID        string
	StartWork        worktime.TimeOfDay
	EndWork          worktime.TimeOfDay
	LateGraceMinutes int
	AllowedLateCount int
	DeductionPerLate decimal.Decimal
	Location         *time.Location
	IsDefault        bool
	UpdatedAt        *time.Time
}

// GraceCutoff is the latest check-in time of day that payroll does not
// count as late.
func (p Policy) GraceCutoff() worktime.TimeOfDay {
	return p.StartWork.Add(time.Duration(p.LateGraceMinutes) * time.Minute)
}

func DefaultPolicy(companyID string, loc *time.Location) Policy {
	if loc == nil {
		loc = time.UTC
	}
	return Policy{
		CompanyID:        companyID,
		StartWork:        worktime.MustParseTimeOfDay(DefaultStartWork),
		EndWork:          worktime.MustParseTimeOfDay(DefaultEndWork),
		DeductionPerLate: decimal.Zero,
		Location:         loc,
		IsDefault:        true,
	}
}

// policyFromSetting resolves a stored row field by field; a field that is
// malformed or out of range keeps its default.
func policyFromSetting(s CompanySetting, loc *time.Location) Policy {
	p := DefaultPolicy(s.CompanyID.String(), loc)
	p.IsDefault = false

	if v, err := worktime.ParseTimeOfDay(s.StartWork); err == nil {
		p.StartWork = v
	}
	if v, err := worktime.ParseTimeOfDay(s.EndWork); err == nil {
		p.EndWork = v
	}
	if s.LateGraceMinutes > 0 {
		p.LateGraceMinutes = s.LateGraceMinutes
	}
	if s.AllowedLateCount > 0 {
		p.AllowedLateCount = s.AllowedLateCount
	}
	if s.DeductionPerLate.IsPositive() {
		p.DeductionPerLate = s.DeductionPerLate
	}
	p.Location = worktime.InLocation(s.Timezone, p.Location)

	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		p.UpdatedAt = &updatedAt
	}
	return p
}
