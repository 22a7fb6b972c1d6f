// Package cachekey owns the Redis key layout shared by the policy store,
// the payroll engine and the attendance-event consumer.
package cachekey

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	companyPolicyPrefix = "company_settings:policy:"
	payrollResultPrefix = "payroll:result:"
	periodLayout        = "2006-01"
)

func CompanyPolicy(companyID string) string {
	return companyPolicyPrefix + companyID
}

func PayrollResult(companyID, employeeID string, period time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s", payrollResultPrefix, companyID, employeeID, period.Format(periodLayout))
}

func PayrollCompanyPattern(companyID string) string {
	return payrollResultPrefix + companyID + ":*"
}

func PayrollEmployeePattern(companyID, employeeID string) string {
	return payrollResultPrefix + companyID + ":" + employeeID + ":*"
}

// Purge deletes every key matching pattern and reports how many were removed.
func Purge(ctx context.Context, rdb redis.Cmdable, pattern string) (int, error) {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += int(n)
		}
		if next == 0 {
			return deleted, nil
		}
		cursor = next
	}
}
