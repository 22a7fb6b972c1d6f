package middleware

import (
	"hris-backoffice/internal/shared/response"
	"hris-backoffice/internal/tenant"

	"github.com/gin-gonic/gin"
)

// TenantGuard rejects requests whose tenant or employee id is malformed
// before any handler touches storage.
func TenantGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := tenant.Validate(c.GetString("company_id"), c.GetString("employee_id")); err != nil {
			response.ServiceError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
