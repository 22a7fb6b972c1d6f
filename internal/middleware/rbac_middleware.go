package middleware

import (
	"hris-backoffice/internal/domain"
	"hris-backoffice/internal/shared/apperror"
	"hris-backoffice/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContextKey string

const (
	ContextEmployeeID ContextKey = "employee_id"
	ContextCompanyID  ContextKey = "company_id"
)

// RBACService is satisfied by anything that can answer an EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString(string(ContextEmployeeID))
		companyID := c.GetString(string(ContextCompanyID))

		if employeeID == "" || companyID == "" {
			response.ServiceError(c, ErrMissingAuthContext)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			EmployeeID: employeeID,
			CompanyID:  companyID,
			Resource:   resource,
			Action:     action,
		})
		if err != nil {
			zap.L().Named("middleware.rbac").Error("enforce failed",
				zap.String("company_id", companyID),
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			response.ServiceError(c, err)
			c.Abort()
			return
		}

		if !allowed {
			forbidden := apperror.ErrForbidden
			response.Error(c, forbidden.HTTPStatus, forbidden.Code, forbidden.Message, gin.H{
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
