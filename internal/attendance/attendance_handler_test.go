package attendance_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hris-backoffice/internal/attendance"
	attendanceerrors "hris-backoffice/internal/attendance/errors"
	attendancemock "hris-backoffice/internal/attendance/mock"
	"hris-backoffice/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAttendanceContext(method, target, companyID, employeeID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	c.Set("company_id", companyID)
	c.Set("employee_id", employeeID)
	return c, w
}

func TestAttendanceHandler_CheckIn(t *testing.T) {
	companyID, employeeID := uuid.NewString(), uuid.NewString()

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := attendancemock.NewMockLedger(ctrl)
		h := attendance.NewHandler(ledger, attendancemock.NewMockService(ctrl))

		ledger.EXPECT().CheckIn(gomock.Any(), companyID, employeeID).Return(attendance.AttendanceEventResponse{
			ID:        uuid.NewString(),
			EventType: attendance.EventCheckIn,
			Status:    attendance.StatusLate,
		}, nil)

		c, w := newAttendanceContext(http.MethodPost, "/attendances/check-in", companyID, employeeID)
		h.CheckIn(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"LATE"`)
	})

	t.Run("already checked in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := attendancemock.NewMockLedger(ctrl)
		h := attendance.NewHandler(ledger, attendancemock.NewMockService(ctrl))

		ledger.EXPECT().CheckIn(gomock.Any(), companyID, employeeID).
			Return(attendance.AttendanceEventResponse{}, attendanceerrors.ErrAlreadyCheckedIn)

		c, w := newAttendanceContext(http.MethodPost, "/attendances/check-in", companyID, employeeID)
		h.CheckIn(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})
}

func TestAttendanceHandler_CheckOut_MustCheckInFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := attendancemock.NewMockLedger(ctrl)
	h := attendance.NewHandler(ledger, attendancemock.NewMockService(ctrl))
	companyID, employeeID := uuid.NewString(), uuid.NewString()

	ledger.EXPECT().CheckOut(gomock.Any(), companyID, employeeID).
		Return(attendance.AttendanceEventResponse{}, attendanceerrors.ErrMustCheckInFirst)

	c, w := newAttendanceContext(http.MethodPost, "/attendances/check-out", companyID, employeeID)
	h.CheckOut(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}

func TestAttendanceHandler_GetLateCount(t *testing.T) {
	companyID, employeeID := uuid.NewString(), uuid.NewString()

	t.Run("parses the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := attendancemock.NewMockService(ctrl)
		h := attendance.NewHandler(attendancemock.NewMockLedger(ctrl), svc)

		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		svc.EXPECT().GetLateCountInWindow(gomock.Any(), companyID, employeeID, start, end).Return(int64(2), nil)

		c, w := newAttendanceContext(http.MethodGet, "/attendances/late-count?start_date=2026-03-01&end_date=2026-03-15", companyID, employeeID)
		h.GetLateCount(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"late_count":2`)
	})

	t.Run("missing end date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := attendance.NewHandler(attendancemock.NewMockLedger(ctrl), attendancemock.NewMockService(ctrl))

		c, w := newAttendanceContext(http.MethodGet, "/attendances/late-count?start_date=2026-03-01", companyID, employeeID)
		h.GetLateCount(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := attendance.NewHandler(attendancemock.NewMockLedger(ctrl), attendancemock.NewMockService(ctrl))

		c, w := newAttendanceContext(http.MethodGet, "/attendances/late-count?start_date=01-03-2026&end_date=2026-03-15", companyID, employeeID)
		h.GetLateCount(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAttendanceHandler_GetHistory_Paginates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := attendancemock.NewMockService(ctrl)
	h := attendance.NewHandler(attendancemock.NewMockLedger(ctrl), svc)
	companyID, employeeID := uuid.NewString(), uuid.NewString()

	svc.EXPECT().GetHistory(gomock.Any(), companyID, employeeID, time.Time{}, time.Time{}, 5, 5).
		Return([]attendance.AttendanceEventResponse{{ID: "a"}, {ID: "b"}}, int64(7), nil)

	c, w := newAttendanceContext(http.MethodGet, "/attendances/history?page=2&page_size=5", companyID, employeeID)
	h.GetHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []attendance.AttendanceEventResponse `json:"data"`
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
			Page       int   `json:"page"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, int64(7), body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)
	assert.Equal(t, 2, body.Meta.Page)
}

type allowAll struct{ requests []domain.EnforceRequest }

func (a *allowAll) Enforce(req domain.EnforceRequest) (bool, error) {
	a.requests = append(a.requests, req)
	return true, nil
}

func TestAttendanceRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	ledger := attendancemock.NewMockLedger(ctrl)
	svc := attendancemock.NewMockService(ctrl)
	companyID, employeeID := uuid.NewString(), uuid.NewString()

	guardCalls := 0
	guard := func(c *gin.Context) {
		guardCalls++
		c.Next()
	}

	rbac := &allowAll{}
	r := gin.New()
	api := r.Group("/api/v1", func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Set("employee_id", employeeID)
		c.Next()
	})
	attendance.RegisterRoutes(api, attendance.NewHandler(ledger, svc), rbac, guard)

	ledger.EXPECT().CheckIn(gomock.Any(), companyID, employeeID).Return(attendance.AttendanceEventResponse{}, nil)
	ledger.EXPECT().CheckOut(gomock.Any(), companyID, employeeID).Return(attendance.AttendanceEventResponse{}, nil)
	svc.EXPECT().GetDailySummary(gomock.Any(), companyID).Return(attendance.DailySummaryResponse{Absent: 4}, nil)

	for _, path := range []string{"/api/v1/attendances/check-in", "/api/v1/attendances/check-out"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Less(t, w.Code, 300, path)
	}
	assert.Equal(t, 2, guardCalls)
	assert.Empty(t, rbac.requests)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/attendances/daily-summary", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"absent":4`)
	if assert.Len(t, rbac.requests, 1) {
		assert.Equal(t, "attendance", rbac.requests[0].Resource)
		assert.Equal(t, "read", rbac.requests[0].Action)
	}
}
