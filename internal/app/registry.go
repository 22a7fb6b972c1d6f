package app

import (
	"database/sql"
	"time"

	"hris-backoffice/internal/attendance"
	attendancemetrics "hris-backoffice/internal/attendance/metrics"
	"hris-backoffice/internal/companysetting"
	"hris-backoffice/internal/config"
	"hris-backoffice/internal/employee"
	"hris-backoffice/internal/employeesalary"
	"hris-backoffice/internal/messaging/kafka"
	"hris-backoffice/internal/middleware"
	"hris-backoffice/internal/payroll"
	payrollmetrics "hris-backoffice/internal/payroll/metrics"
	"hris-backoffice/internal/rbac"
	"hris-backoffice/internal/rbac/infra"
	"hris-backoffice/internal/shared/clock"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const idempotencyTTL = 24 * time.Hour

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	if err := cfg.Auth.RequireSecret(); err != nil {
		return err
	}
	clk := clock.New()

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	companySettingRepo := companysetting.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	employeeSalaryRepo := employeesalary.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.App.RBACModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	companySettingService := companysetting.NewService(companySettingRepo, rdb, cfg.App.Location, logger)
	ledger := attendance.NewLedger(
		db,
		attendanceRepo,
		outboxRepo,
		companySettingService,
		clk,
		attendancemetrics.New(),
		logger,
	)
	attendanceService := attendance.NewService(attendanceRepo, companySettingService, employeeRepo, clk, logger)
	employeeSalaryService := employeesalary.NewService(employeeSalaryRepo, employeeRepo, rdb, logger)
	payrollService := payroll.NewService(payroll.Deps{
		Salaries:    employeeSalaryService,
		Policies:    companySettingService,
		CheckIns:    attendanceRepo,
		Employees:   employeeRepo,
		Cache:       payroll.NewResultCache(rdb, cfg.Payroll.CacheTTL, logger),
		Clock:       clk,
		Metrics:     payrollmetrics.New(),
		BulkWorkers: cfg.Payroll.BulkWorkers,
	}, logger)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(ledger, attendanceService)
	companySettingHandler := companysetting.NewHandler(companySettingService)
	employeeSalaryHandler := employeesalary.NewHandler(employeeSalaryService)
	payrollHandler := payroll.NewHandler(payrollService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(
		middleware.RateLimitByIP(rate.Limit(cfg.HTTP.RateLimit), cfg.HTTP.Burst),
		middleware.AuthMiddleware(cfg.Auth.JWTSecret),
		middleware.TenantGuard(),
		middleware.ContextLogger(logger),
	)
	{
		attendance.RegisterRoutes(api, attendanceHandler, rbacService,
			middleware.RateLimitByUser(rate.Limit(cfg.CheckIn.RateLimit), cfg.CheckIn.Burst),
			middleware.Idempotency(rdb, idempotencyTTL),
		)
		companysetting.RegisterRoutes(api, companySettingHandler, rbacService)
		employeesalary.RegisterRoutes(api, employeeSalaryHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
