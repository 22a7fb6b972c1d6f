package companysetting_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hris-backoffice/internal/companysetting"
	companysettingerrors "hris-backoffice/internal/companysetting/errors"
	"hris-backoffice/internal/companysetting/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCompanySettingHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	h := companysetting.NewHandler(svc)
	companyID := uuid.NewString()

	svc.EXPECT().Get(gomock.Any(), companyID).Return(companysetting.CompanySettingResponse{
		CompanyID: companyID,
		StartWork: "08:00",
		EndWork:   "17:00",
		IsDefault: true,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/company-settings", nil)
	c.Set("company_id", companyID)

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_default":true`)
}

func TestCompanySettingHandler_Upsert(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		h := companysetting.NewHandler(svc)

		svc.EXPECT().Upsert(gomock.Any(), companyID, gomock.Any()).DoAndReturn(
			func(_ any, _ string, req companysetting.UpsertCompanySettingRequest) (companysetting.CompanySettingResponse, error) {
				assert.Equal(t, "09:00", req.StartWork)
				assert.Equal(t, "100000", req.DeductionPerLate.String())
				return companysetting.CompanySettingResponse{CompanyID: companyID, StartWork: req.StartWork}, nil
			},
		)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"start_work":"09:00","end_work":"18:00","late_grace_minutes":5,"allowed_late_count":1,"deduction_per_late":100000}`
		req := httptest.NewRequest(http.MethodPut, "/company-settings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("company_id", companyID)

		h.Upsert(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := companysetting.NewHandler(mock.NewMockService(ctrl))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest(http.MethodPut, "/company-settings", strings.NewReader(`{"end_work":"17:00"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("company_id", companyID)

		h.Upsert(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("service rejects order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		h := companysetting.NewHandler(svc)

		svc.EXPECT().Upsert(gomock.Any(), companyID, gomock.Any()).
			Return(companysetting.CompanySettingResponse{}, companysettingerrors.ErrWorkHoursOrder)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest(http.MethodPut, "/company-settings", strings.NewReader(`{"start_work":"18:00","end_work":"09:00"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("company_id", companyID)

		h.Upsert(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "end_work must be after start_work")
	})
}
