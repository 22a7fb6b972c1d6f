package employeesalary

import (
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

func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.GetString("company_id"), c.Param("employee_id"))
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Upsert(c *gin.Context) {
	var req UpsertEmployeeSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	resp, err := h.service.Upsert(c.Request.Context(), c.GetString("company_id"), c.Param("employee_id"), req)
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
