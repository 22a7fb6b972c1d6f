package companysetting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hris-backoffice/internal/companysetting"
	companysettingerrors "hris-backoffice/internal/companysetting/errors"
	"hris-backoffice/internal/companysetting/mock"
	"hris-backoffice/internal/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func bangkok(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Bangkok")
	assert.NoError(t, err)
	return loc
}

func TestCompanySettingService_GetPolicy(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("missing row resolves to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := companysetting.NewService(repo, nil, bangkok(t))

		repo.EXPECT().FindByCompany(gomock.Any(), companyID.String()).Return(nil, gorm.ErrRecordNotFound)

		policy, err := svc.GetPolicy(ctx, companyID.String())

		assert.NoError(t, err)
		assert.True(t, policy.IsDefault)
		assert.Equal(t, "08:00", policy.StartWork.String())
		assert.Equal(t, "17:00", policy.EndWork.String())
		assert.Equal(t, 0, policy.LateGraceMinutes)
		assert.Equal(t, 0, policy.AllowedLateCount)
		assert.True(t, policy.DeductionPerLate.IsZero())
		assert.Equal(t, "Asia/Bangkok", policy.Location.String())
	})

	t.Run("storage failure resolves to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := companysetting.NewService(repo, nil, bangkok(t))

		repo.EXPECT().FindByCompany(gomock.Any(), companyID.String()).Return(nil, errors.New("connection refused"))

		policy, err := svc.GetPolicy(ctx, companyID.String())

		assert.NoError(t, err)
		assert.True(t, policy.IsDefault)
		assert.Equal(t, "08:00", policy.StartWork.String())
	})

	t.Run("stored policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := companysetting.NewService(repo, nil, bangkok(t))

		repo.EXPECT().FindByCompany(gomock.Any(), companyID.String()).Return(&companysetting.CompanySetting{
			CompanyID:        companyID,
			StartWork:        "09:00",
			EndWork:          "18:00",
			LateGraceMinutes: 15,
			AllowedLateCount: 2,
			DeductionPerLate: decimal.NewFromInt(100),
			Timezone:         "Asia/Jakarta",
		}, nil)

		policy, err := svc.GetPolicy(ctx, companyID.String())

		assert.NoError(t, err)
		assert.False(t, policy.IsDefault)
		assert.Equal(t, "09:00", policy.StartWork.String())
		assert.Equal(t, "18:00", policy.EndWork.String())
		assert.Equal(t, "09:15", policy.GraceCutoff().String())
		assert.Equal(t, 2, policy.AllowedLateCount)
		assert.True(t, decimal.NewFromInt(100).Equal(policy.DeductionPerLate))
		assert.Equal(t, "Asia/Jakarta", policy.Location.String())
	})

	t.Run("malformed fields fall back one by one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := companysetting.NewService(repo, nil, bangkok(t))

		repo.EXPECT().FindByCompany(gomock.Any(), companyID.String()).Return(&companysetting.CompanySetting{
			CompanyID:        companyID,
			StartWork:        "nine",
			EndWork:          "18:30",
			LateGraceMinutes: -5,
			AllowedLateCount: 3,
			DeductionPerLate: decimal.NewFromInt(-1),
			Timezone:         "Nowhere/Town",
		}, nil)

		policy, err := svc.GetPolicy(ctx, companyID.String())

		assert.NoError(t, err)
		assert.Equal(t, "08:00", policy.StartWork.String())
		assert.Equal(t, "18:30", policy.EndWork.String())
		assert.Equal(t, 0, policy.LateGraceMinutes)
		assert.Equal(t, 3, policy.AllowedLateCount)
		assert.True(t, policy.DeductionPerLate.IsZero())
		assert.Equal(t, "Asia/Bangkok", policy.Location.String())
	})

	t.Run("invalid tenant fails before storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := companysetting.NewService(repo, nil, bangkok(t))

		_, err := svc.GetPolicy(ctx, "")

		assert.ErrorIs(t, err, tenant.ErrInvalidCompanyID)
	})
}

func TestCompanySettingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := companysetting.NewService(repo, nil, bangkok(t))
	companyID := uuid.NewString()

	repo.EXPECT().FindByCompany(gomock.Any(), companyID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.Get(context.Background(), companyID)

	assert.NoError(t, err)
	assert.Equal(t, companyID, resp.CompanyID)
	assert.Equal(t, "08:00", resp.StartWork)
	assert.Equal(t, "17:00", resp.EndWork)
	assert.Equal(t, "Asia/Bangkok", resp.Timezone)
	assert.True(t, resp.IsDefault)
	assert.Empty(t, resp.UpdatedAt)
}

func TestCompanySettingService_Upsert(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	valid := companysetting.UpsertCompanySettingRequest{
		StartWork:        "08:30",
		EndWork:          "17:30",
		LateGraceMinutes: 10,
		AllowedLateCount: 2,
		DeductionPerLate: decimal.RequireFromString("50000.555"),
		Timezone:         "Asia/Jakarta",
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := companysetting.NewService(repo, nil, bangkok(t))

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, s *companysetting.CompanySetting) error {
				assert.Equal(t, companyID, s.CompanyID)
				assert.Equal(t, "08:30", s.StartWork)
				assert.Equal(t, "17:30", s.EndWork)
				assert.Equal(t, "50000.56", s.DeductionPerLate.StringFixed(2))
				return nil
			},
		)

		resp, err := svc.Upsert(ctx, companyID.String(), valid)

		assert.NoError(t, err)
		assert.False(t, resp.IsDefault)
		assert.Equal(t, "Asia/Jakarta", resp.Timezone)
		assert.Equal(t, 10, resp.LateGraceMinutes)
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := companysetting.NewService(repo, nil, bangkok(t))

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		_, err := svc.Upsert(ctx, companyID.String(), valid)

		assert.Error(t, err)
	})

	invalid := []struct {
		name    string
		mutate  func(r *companysetting.UpsertCompanySettingRequest)
		wantErr error
	}{
		{
			name:    "bad start",
			mutate:  func(r *companysetting.UpsertCompanySettingRequest) { r.StartWork = "8" },
			wantErr: companysettingerrors.ErrInvalidWorkTime,
		},
		{
			name:    "end before start",
			mutate:  func(r *companysetting.UpsertCompanySettingRequest) { r.EndWork = "08:00" },
			wantErr: companysettingerrors.ErrWorkHoursOrder,
		},
		{
			name:    "negative deduction",
			mutate:  func(r *companysetting.UpsertCompanySettingRequest) { r.DeductionPerLate = decimal.NewFromInt(-1) },
			wantErr: companysettingerrors.ErrNegativeDeduction,
		},
		{
			name:    "negative allowance",
			mutate:  func(r *companysetting.UpsertCompanySettingRequest) { r.AllowedLateCount = -1 },
			wantErr: companysettingerrors.ErrNegativeCount,
		},
		{
			name:    "unknown timezone",
			mutate:  func(r *companysetting.UpsertCompanySettingRequest) { r.Timezone = "Mars/Olympus" },
			wantErr: companysettingerrors.ErrInvalidTimezone,
		},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockRepository(ctrl)
			svc := companysetting.NewService(repo, nil, bangkok(t))

			req := valid
			tt.mutate(&req)

			_, err := svc.Upsert(ctx, companyID.String(), req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
