package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hris-backoffice/internal/domain"
	"hris-backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.AuthMiddleware(testSecret), middleware.TenantGuard())
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"company_id":  c.GetString("company_id"),
			"employee_id": c.GetString("employee_id"),
			"user_id":     c.GetString("user_id"),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	companyID := uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("valid bearer token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"company_id":  companyID,
			"employee_id": employeeID,
			"exp":         time.Now().Add(time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newAuthRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), companyID)
		assert.Contains(t, w.Body.String(), `"user_id":"`+employeeID+`"`)
	})

	t.Run("token from cookie", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"company_id":  companyID,
			"employee_id": employeeID,
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		newAuthRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newAuthRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token not found")
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"company_id":  companyID,
			"employee_id": employeeID,
			"exp":         time.Now().Add(-time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newAuthRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"company_id":  companyID,
			"employee_id": employeeID,
		}).SignedString([]byte("other"))
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newAuthRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})

	t.Run("missing employee claim", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"company_id": companyID})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newAuthRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed tenant id is rejected by guard", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"company_id":  "acme",
			"employee_id": employeeID,
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newAuthRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "company_id tidak valid")
	})
}

type fakeEnforcer struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func newRBACRouter(enforcer middleware.RBACService, withAuth bool) *gin.Engine {
	r := gin.New()
	if withAuth {
		r.Use(func(c *gin.Context) {
			c.Set("company_id", "company-1")
			c.Set("employee_id", "employee-1")
			c.Next()
		})
	}
	r.GET("/payrolls", middleware.RBACAuthorize(enforcer, "payroll", "read"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRBACAuthorize(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		enforcer := &fakeEnforcer{allowed: true}
		w := httptest.NewRecorder()
		newRBACRouter(enforcer, true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payrolls", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.EnforceRequest{
			EmployeeID: "employee-1",
			CompanyID:  "company-1",
			Resource:   "payroll",
			Action:     "read",
		}, enforcer.got)
	})

	t.Run("denied", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRBACRouter(&fakeEnforcer{}, true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payrolls", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "payroll:read")
	})

	t.Run("enforcer error", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRBACRouter(&fakeEnforcer{err: errors.New("boom")}, true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payrolls", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("missing auth context", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRBACRouter(&fakeEnforcer{allowed: true}, false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payrolls", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimitByUser(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", "company-1")
		c.Set("user_id", c.GetHeader("X-User"))
		c.Next()
	})
	r.POST("/check-in", middleware.RateLimitByUser(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	send := func(user string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/check-in", nil)
		req.Header.Set("X-User", user)
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, send("alice"))
	assert.Equal(t, http.StatusTooManyRequests, send("alice"))
	assert.Equal(t, http.StatusCreated, send("bob"))
}

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.GET("/api/v1/attendances/today", middleware.RateLimitByIP(0.001, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/attendances/today", nil)
		req.RemoteAddr = ip + ":40000"
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func newIdempotentRouter(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
	t.Helper()
	rdb, mock := redismock.NewClientMock()
	calls := 0

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", "c1")
		c.Set("user_id", "u1")
		c.Next()
	})
	r.POST("/check-in", middleware.Idempotency(rdb, time.Hour), func(c *gin.Context) {
		calls++
		c.String(http.StatusCreated, "done")
	})
	return r, mock, &calls
}

func TestIdempotency(t *testing.T) {
	cacheKey := middleware.IdempotencyCacheKey("/check-in", "c1", "u1", "k1")
	lockKey := cacheKey + ":lock"
	stored := `{"status":201,"content_type":"text/plain; charset=utf-8","body":"done"}`

	t.Run("first request runs handler and stores reply", func(t *testing.T) {
		r, mock, calls := newIdempotentRouter(t)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, stored, time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/check-in", nil)
		req.Header.Set(middleware.IdempotencyKeyHeader, "k1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeated key replays stored reply", func(t *testing.T) {
		r, mock, calls := newIdempotentRouter(t)
		mock.ExpectGet(cacheKey).SetVal(stored)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/check-in", nil)
		req.Header.Set(middleware.IdempotencyKeyHeader, "k1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "done", w.Body.String())
		assert.Equal(t, "true", w.Header().Get(middleware.IdempotentReplayHeader))
		assert.Equal(t, 0, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is rejected", func(t *testing.T) {
		r, mock, calls := newIdempotentRouter(t)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/check-in", nil)
		req.Header.Set(middleware.IdempotencyKeyHeader, "k1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no key skips redis", func(t *testing.T) {
		r, mock, calls := newIdempotentRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/check-in", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "caller id is propagated", header: "req-42", keep: true},
		{name: "missing id is minted"},
		{name: "oversized id is replaced", header: strings.Repeat("a", 65)},
		{name: "id with spaces is replaced", header: "req 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			rid := w.Header().Get(middleware.RequestIDHeader)
			assert.Equal(t, rid, w.Body.String())
			if tt.keep {
				assert.Equal(t, tt.header, rid)
				return
			}
			_, err := uuid.Parse(rid)
			assert.NoError(t, err)
		})
	}
}
