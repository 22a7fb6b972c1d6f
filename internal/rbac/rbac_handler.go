package rbac

import (
	"net/http"
	"strings"

	"hris-backoffice/internal/domain"
	"hris-backoffice/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Enforce reports whether the caller holds resource:action in their own
// company.
func (h *Handler) Enforce(c *gin.Context) {
	var req CheckPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	allowed, err := h.service.Enforce(domain.EnforceRequest{
		EmployeeID: c.GetString("employee_id"),
		CompanyID:  c.GetString("company_id"),
		Resource:   strings.TrimSpace(req.Resource),
		Action:     strings.TrimSpace(req.Action),
	})
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}
