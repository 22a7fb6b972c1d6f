package rbac

import "github.com/gin-gonic/gin"

// RegisterRoutes expects r to already carry authentication and the tenant
// guard.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/rbac")
	{
		group.POST("/enforce", handler.Enforce)
	}
}
