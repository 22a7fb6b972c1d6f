package employeesalary

import (
	"hris-backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already carry authentication and the tenant
// guard.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	salaries := r.Group("/employee-salaries")
	{
		salaries.GET("/:employee_id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "salary", "read"),
			handler.Get,
		)
		salaries.PUT("/:employee_id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "salary", "update"),
			handler.Upsert,
		)
	}
}
