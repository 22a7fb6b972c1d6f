package payroll

import (
	"fmt"
	"net/http"

	"hris-backoffice/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetMine(c *gin.Context) {
	h.compute(c, c.GetString("employee_id"))
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	h.compute(c, c.Param("employee_id"))
}

func (h *Handler) compute(c *gin.Context, employeeID string) {
	result, err := h.service.Compute(c.Request.Context(), c.GetString("company_id"), employeeID)
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, mapToResponse(result), nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	page, pageSize := response.PageParams(c)

	results, total, err := h.service.ComputeForTenant(c.Request.Context(), c.GetString("company_id"), page, pageSize)
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, mapToListResponse(results), &meta)
}

func (h *Handler) DownloadMyPayslip(c *gin.Context) {
	file, err := h.service.Payslip(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"))
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.FileName))
	c.Data(http.StatusOK, "application/pdf", file.Content)
}
