package attendance

import (
	"hris-backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already carry authentication and the tenant
// guard. writeGuards run before check-in and check-out, typically the rate
// limiter and the idempotency middleware. Reads of the caller's own
// attendance need no extra permission; the tenant dashboard does.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	writeGuards ...gin.HandlerFunc,
) {
	attendances := r.Group("/attendances")
	{
		attendances.POST("/check-in", guarded(writeGuards, handler.CheckIn)...)
		attendances.POST("/check-out", guarded(writeGuards, handler.CheckOut)...)

		attendances.GET("/today", handler.GetToday)
		attendances.GET("/today/events", handler.GetTodayEvents)
		attendances.GET("/summary", handler.GetSummary)
		attendances.GET("/late-count", handler.GetLateCount)
		attendances.GET("/history", handler.GetHistory)
		attendances.GET("/daily-summary",
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			handler.GetDailySummary,
		)
	}
}

func guarded(guards []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, h)
}
