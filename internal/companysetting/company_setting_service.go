package companysetting

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	companysettingerrors "hris-backoffice/internal/companysetting/errors"
	"hris-backoffice/internal/shared/cachekey"
	"hris-backoffice/internal/shared/contextutil"
	"hris-backoffice/internal/shared/worktime"
	"hris-backoffice/internal/tenant"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const policyCacheTTL = 10 * time.Minute

//go:generate mockgen -source=company_setting_service.go -destination=mock/company_setting_service_mock.go -package=mock

// PolicyProvider is the read seam used by attendance and payroll.
type PolicyProvider interface {
	GetPolicy(ctx context.Context, companyID string) (Policy, error)
}

type Service interface {
	GetPolicy(ctx context.Context, companyID string) (Policy, error)
	Get(ctx context.Context, companyID string) (CompanySettingResponse, error)
	Upsert(ctx context.Context, companyID string, req UpsertCompanySettingRequest) (CompanySettingResponse, error)
}

type service struct {
	repo            Repository
	rdb             *redis.Client
	sf              *singleflight.Group
	defaultLocation *time.Location
	logger          *zap.Logger
}

// settingEntry is what the policy cache stores; Found=false caches the
// absence of a row.
type settingEntry struct {
	Found   bool           `json:"found"`
	Setting CompanySetting `json:"setting"`
}

func NewService(repo Repository, rdb *redis.Client, defaultLocation *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("companysetting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("companysetting.service")
	}
	if defaultLocation == nil {
		defaultLocation = time.UTC
	}
	return &service{
		repo:            repo,
		rdb:             rdb,
		sf:              &singleflight.Group{},
		defaultLocation: defaultLocation,
		logger:          l,
	}
}

// GetPolicy never reports a missing or unreadable policy; both resolve to
// defaults. It fails only for a malformed tenant id.
func (s *service) GetPolicy(ctx context.Context, companyID string) (Policy, error) {
	if err := tenant.ValidateCompanyID(companyID); err != nil {
		return Policy{}, err
	}

	entry := s.load(ctx, companyID)
	if !entry.Found {
		return DefaultPolicy(companyID, s.defaultLocation), nil
	}
	return policyFromSetting(entry.Setting, s.defaultLocation), nil
}

func (s *service) load(ctx context.Context, companyID string) settingEntry {
	cacheKey := cachekey.CompanyPolicy(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var entry settingEntry
			if json.Unmarshal([]byte(cached), &entry) == nil {
				return entry
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		setting, err := s.repo.FindByCompany(ctx, companyID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			entry := settingEntry{Found: false}
			s.store(ctx, cacheKey, entry)
			return entry, nil
		}

		entry := settingEntry{Found: true, Setting: *setting}
		s.store(ctx, cacheKey, entry)
		return entry, nil
	})
	if err != nil {
		s.logger.Warn("load company policy failed, using defaults",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return settingEntry{Found: false}
	}

	return v.(settingEntry)
}

func (s *service) store(ctx context.Context, key string, entry settingEntry) {
	if s.rdb == nil {
		return
	}
	jsonData, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, string(jsonData), policyCacheTTL).Err(); err != nil {
		s.logger.Warn("cache company policy failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *service) Get(ctx context.Context, companyID string) (CompanySettingResponse, error) {
	s.logger.Debug("get company setting requested", zap.String("company_id", companyID))

	policy, err := s.GetPolicy(ctx, companyID)
	if err != nil {
		return CompanySettingResponse{}, err
	}
	return mapToResponse(policy), nil
}

func (s *service) Upsert(
	ctx context.Context,
	companyID string,
	req UpsertCompanySettingRequest,
) (CompanySettingResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("upsert company setting requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
	)

	if err := tenant.ValidateCompanyID(companyID); err != nil {
		return CompanySettingResponse{}, err
	}
	if err := validateRequest(req); err != nil {
		s.logger.Warn("upsert company setting rejected",
			zap.String("request_id", rid),
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return CompanySettingResponse{}, err
	}

	setting := &CompanySetting{
		CompanyID:        uuid.MustParse(companyID),
		StartWork:        worktime.MustParseTimeOfDay(req.StartWork).String(),
		EndWork:          worktime.MustParseTimeOfDay(req.EndWork).String(),
		LateGraceMinutes: req.LateGraceMinutes,
		AllowedLateCount: req.AllowedLateCount,
		DeductionPerLate: req.DeductionPerLate.Round(2),
		Timezone:         req.Timezone,
	}

	if err := s.repo.Upsert(ctx, setting); err != nil {
		s.logger.Error("upsert company setting persist failed",
			zap.String("request_id", rid),
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return CompanySettingResponse{}, err
	}

	s.invalidate(ctx, companyID)

	s.logger.Info("company setting updated",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
	)
	return mapToResponse(policyFromSetting(*setting, s.defaultLocation)), nil
}

// invalidate drops the cached policy and every cached payroll result of the
// tenant, since both were derived from the old policy.
func (s *service) invalidate(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := cachekey.CompanyPolicy(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate company policy cache", zap.String("key", cacheKey), zap.Error(err))
	}
	if _, err := cachekey.Purge(ctx, s.rdb, cachekey.PayrollCompanyPattern(companyID)); err != nil {
		s.logger.Error("failed to purge payroll cache", zap.String("company_id", companyID), zap.Error(err))
	}
}

func validateRequest(req UpsertCompanySettingRequest) error {
	start, err := worktime.ParseTimeOfDay(req.StartWork)
	if err != nil {
		return companysettingerrors.ErrInvalidWorkTime
	}
	end, err := worktime.ParseTimeOfDay(req.EndWork)
	if err != nil {
		return companysettingerrors.ErrInvalidWorkTime
	}
	if end <= start {
		return companysettingerrors.ErrWorkHoursOrder
	}
	if req.LateGraceMinutes < 0 || req.AllowedLateCount < 0 {
		return companysettingerrors.ErrNegativeCount
	}
	if req.DeductionPerLate.IsNegative() {
		return companysettingerrors.ErrNegativeDeduction
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return companysettingerrors.ErrInvalidTimezone
		}
	}
	return nil
}

func mapToResponse(p Policy) CompanySettingResponse {
	resp := CompanySettingResponse{
		CompanyID:        p.CompanyID,
		StartWork:        p.StartWork.String(),
		EndWork:          p.EndWork.String(),
		LateGraceMinutes: p.LateGraceMinutes,
		AllowedLateCount: p.AllowedLateCount,
		DeductionPerLate: p.DeductionPerLate,
		Timezone:         p.Location.String(),
		IsDefault:        p.IsDefault,
	}
	if p.UpdatedAt != nil {
		resp.UpdatedAt = p.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
