package payroll

import (
	"hris-backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already carry authentication and the tenant
// guard. The caller's own payroll needs no extra permission.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("/me", handler.GetMine)
		payrolls.GET("/me/payslip",
			middleware.RateLimitByUser(0.5, 2),
			handler.DownloadMyPayslip,
		)
		payrolls.GET("/employees/:employee_id",
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.GetByEmployee,
		)
		payrolls.GET("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.GetAll,
		)
	}
}
