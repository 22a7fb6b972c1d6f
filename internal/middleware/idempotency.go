package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hris-backoffice/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyKeyHeader    = "Idempotency-Key"
	IdempotentReplayHeader  = "Idempotent-Replayed"
	idempotencyLockDuration = 30 * time.Second
)

type idempotentReply struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func IdempotencyCacheKey(path, companyID, userID, key string) string {
	return fmt.Sprintf("idemp:%s:%s:%s:%s", path, companyID, userID, key)
}

// Idempotency replays the stored 2xx response for a repeated
// Idempotency-Key on POST requests. A nil client disables it.
func Idempotency(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	logger := zap.L().Named("middleware.idempotency")

	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyKeyHeader)
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := IdempotencyCacheKey(c.FullPath(), c.GetString("company_id"), c.GetString("user_id"), idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var reply idempotentReply
			if json.Unmarshal([]byte(val), &reply) == nil {
				c.Header(IdempotentReplayHeader, "true")
				c.Data(reply.Status, reply.ContentType, []byte(reply.Body))
				c.Abort()
				return
			}
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockDuration).Result()
		if err != nil {
			logger.Warn("idempotency lock unavailable, continuing without it",
				zap.String("key", cacheKey),
				zap.Error(err),
			)
			c.Next()
			return
		}
		if !acquired {
			response.ServiceError(c, ErrRequestInProgress)
			c.Abort()
			return
		}
		defer func() {
			if err := rdb.Del(context.WithoutCancel(ctx), lockKey).Err(); err != nil {
				logger.Warn("release idempotency lock failed", zap.String("key", lockKey), zap.Error(err))
			}
		}()

		rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec

		c.Next()

		status := rec.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}

		payload, err := json.Marshal(idempotentReply{
			Status:      status,
			ContentType: rec.Header().Get("Content-Type"),
			Body:        rec.body.String(),
		})
		if err != nil {
			return
		}
		if err := rdb.Set(context.WithoutCancel(ctx), cacheKey, string(payload), ttl).Err(); err != nil {
			logger.Warn("store idempotent reply failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
}
