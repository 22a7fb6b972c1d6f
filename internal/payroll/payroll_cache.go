package payroll

import (
	"context"
	"encoding/json"
	"time"

	"hris-backoffice/internal/shared/cachekey"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_cache.go -destination=mock/payroll_cache_mock.go -package=mock

// ResultCache holds computed results for one billing period. Cache failures
// are logged and treated as misses.
type ResultCache interface {
	Get(ctx context.Context, companyID, employeeID string, period time.Time) (PayrollResult, bool)
	Set(ctx context.Context, result PayrollResult)
	InvalidateEmployee(ctx context.Context, companyID, employeeID string, period time.Time) error
}

// NewResultCache returns a no-op cache when rdb is nil or ttl is not
// positive.
func NewResultCache(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) ResultCache {
	if rdb == nil || ttl <= 0 {
		return noopCache{}
	}
	l := zap.L().Named("payroll.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.cache")
	}
	return &redisResultCache{rdb: rdb, ttl: ttl, logger: l}
}

type redisResultCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func (c *redisResultCache) Get(ctx context.Context, companyID, employeeID string, period time.Time) (PayrollResult, bool) {
	val, err := c.rdb.Get(ctx, cachekey.PayrollResult(companyID, employeeID, period)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("payroll cache read failed", zap.String("employee_id", employeeID), zap.Error(err))
		}
		return PayrollResult{}, false
	}

	var result PayrollResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return PayrollResult{}, false
	}
	return result, true
}

func (c *redisResultCache) Set(ctx context.Context, result PayrollResult) {
	jsonData, err := json.Marshal(result)
	if err != nil {
		return
	}
	key := cachekey.PayrollResult(result.CompanyID, result.EmployeeID, result.PeriodStart)
	if err := c.rdb.Set(ctx, key, string(jsonData), c.ttl).Err(); err != nil {
		c.logger.Warn("payroll cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *redisResultCache) InvalidateEmployee(ctx context.Context, companyID, employeeID string, period time.Time) error {
	return c.rdb.Del(ctx, cachekey.PayrollResult(companyID, employeeID, period)).Err()
}

type noopCache struct{}

func (noopCache) Get(context.Context, string, string, time.Time) (PayrollResult, bool) {
	return PayrollResult{}, false
}

func (noopCache) Set(context.Context, PayrollResult) {}

func (noopCache) InvalidateEmployee(context.Context, string, string, time.Time) error {
	return nil
}
