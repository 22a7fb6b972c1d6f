package middleware

import (
	"hris-backoffice/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger stores a logger carrying request, user and tenant fields in
// the request context. It runs after AuthMiddleware.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rid := contextutil.GetRequestID(ctx)
		if rid == "" {
			rid = c.GetString("request_id")
			ctx = contextutil.WithRequestID(ctx, rid)
		}

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", c.GetString("user_id")),
			zap.String("company_id", c.GetString("company_id")),
		)

		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
