package companysetting

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
	settings := r.Group("/company-settings")
	{
		settings.GET("",
			middleware.RBACAuthorize(rbacService, "setting", "read"),
			handler.Get,
		)
		settings.PUT("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "setting", "update"),
			handler.Upsert,
		)
	}
}
