package attendance

import (
	"net/http"
	"time"

	attendanceerrors "hris-backoffice/internal/attendance/errors"
	"hris-backoffice/internal/shared/response"
	"hris-backoffice/internal/shared/worktime"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ledger  Ledger
	service Service
}

func NewHandler(ledger Ledger, service Service) *Handler {
	return &Handler{ledger: ledger, service: service}
}

func (h *Handler) CheckIn(c *gin.Context) {
	resp, err := h.ledger.CheckIn(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"))
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CheckOut(c *gin.Context) {
	resp, err := h.ledger.CheckOut(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"))
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetToday(c *gin.Context) {
	resp, err := h.service.GetTodayState(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"))
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetTodayEvents(c *gin.Context) {
	resp, err := h.service.GetTodayEvents(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"))
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetSummary(c *gin.Context) {
	resp, err := h.service.GetCountSummary(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"))
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetLateCount(c *gin.Context) {
	var q LateCountQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, err)
		return
	}

	start, end, err := parseWindow(q.StartDate, q.EndDate)
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	count, err := h.service.GetLateCountInWindow(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), start, end)
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, LateCountResponse{
		StartDate: start.Format(worktime.DateLayout),
		EndDate:   end.Format(worktime.DateLayout),
		LateCount: count,
	}, nil)
}

func (h *Handler) GetHistory(c *gin.Context) {
	var q HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, err)
		return
	}

	start, end, err := parseWindow(q.StartDate, q.EndDate)
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	page, pageSize := response.PageParams(c)
	rows, total, err := h.service.GetHistory(
		c.Request.Context(),
		c.GetString("company_id"),
		c.GetString("employee_id"),
		start, end,
		pageSize, (page-1)*pageSize,
	)
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, rows, &meta)
}

func (h *Handler) GetDailySummary(c *gin.Context) {
	resp, err := h.service.GetDailySummary(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// parseWindow leaves a side zero when its query value is empty.
func parseWindow(startRaw, endRaw string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error
	if startRaw != "" {
		if start, err = worktime.ParseDate(startRaw); err != nil {
			return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidDate
		}
	}
	if endRaw != "" {
		if end, err = worktime.ParseDate(endRaw); err != nil {
			return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidDate
		}
	}
	return start, end, nil
}
