package employeesalary

import (
	"context"
	"time"

	employeesalaryerrors "hris-backoffice/internal/employeesalary/errors"
	"hris-backoffice/internal/shared/cachekey"
	"hris-backoffice/internal/shared/contextutil"
	"hris-backoffice/internal/tenant"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_salary_service.go -destination=mock/employee_salary_service_mock.go -package=mock

// EmployeeChecker confirms an employee is part of a tenant before its
// salary is written.
type EmployeeChecker interface {
	BelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
}

// Reader is the salary read contract payroll depends on. A missing record
// is reported as ErrSalaryNotFound.
type Reader interface {
	FindByEmployee(ctx context.Context, companyID, employeeID string) (EmployeeSalary, error)
}

type Service interface {
	Reader
	Get(ctx context.Context, companyID, employeeID string) (EmployeeSalaryResponse, error)
	Upsert(ctx context.Context, companyID, employeeID string, req UpsertEmployeeSalaryRequest) (EmployeeSalaryResponse, error)
}

type service struct {
	repo      Repository
	employees EmployeeChecker
	rdb       *redis.Client
	logger    *zap.Logger
}

func NewService(repo Repository, employees EmployeeChecker, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeesalary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeesalary.service")
	}
	return &service{
		repo:      repo,
		employees: employees,
		rdb:       rdb,
		logger:    l,
	}
}

func (s *service) FindByEmployee(ctx context.Context, companyID, employeeID string) (EmployeeSalary, error) {
	if err := tenant.Validate(companyID, employeeID); err != nil {
		return EmployeeSalary{}, err
	}

	salary, err := s.repo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return EmployeeSalary{}, mapRepositoryError(err)
	}
	return *salary, nil
}

func (s *service) Get(ctx context.Context, companyID, employeeID string) (EmployeeSalaryResponse, error) {
	salary, err := s.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return EmployeeSalaryResponse{}, err
	}
	return mapToResponse(salary), nil
}

func (s *service) Upsert(
	ctx context.Context,
	companyID, employeeID string,
	req UpsertEmployeeSalaryRequest,
) (EmployeeSalaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("upsert employee salary requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
	)

	if err := tenant.Validate(companyID, employeeID); err != nil {
		return EmployeeSalaryResponse{}, err
	}

	for _, v := range []interface{ IsNegative() bool }{
		req.BaseSalary, req.Allowance, req.Bonus, req.Overtime, req.ManualDeduction,
	} {
		if v.IsNegative() {
			return EmployeeSalaryResponse{}, employeesalaryerrors.ErrNegativeComponent
		}
	}

	ok, err := s.employees.BelongsToCompany(ctx, companyID, employeeID)
	if err != nil {
		return EmployeeSalaryResponse{}, err
	}
	if !ok {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrEmployeeNotInCompany
	}

	salary := &EmployeeSalary{
		ID:              uuid.New(),
		CompanyID:       uuid.MustParse(companyID),
		EmployeeID:      uuid.MustParse(employeeID),
		BaseSalary:      req.BaseSalary.Round(2),
		Allowance:       req.Allowance.Round(2),
		Bonus:           req.Bonus.Round(2),
		Overtime:        req.Overtime.Round(2),
		ManualDeduction: req.ManualDeduction.Round(2),
	}

	if err := s.repo.Upsert(ctx, salary); err != nil {
		s.logger.Error("upsert employee salary persist failed",
			zap.String("request_id", rid),
			zap.String("company_id", companyID),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	s.invalidatePayroll(ctx, companyID, employeeID)

	s.logger.Info("employee salary updated",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
	)
	return mapToResponse(*salary), nil
}

func (s *service) invalidatePayroll(ctx context.Context, companyID, employeeID string) {
	if s.rdb == nil {
		return
	}
	if _, err := cachekey.Purge(ctx, s.rdb, cachekey.PayrollEmployeePattern(companyID, employeeID)); err != nil {
		s.logger.Warn("invalidate payroll cache failed",
			zap.String("company_id", companyID),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
	}
}

func mapToResponse(s EmployeeSalary) EmployeeSalaryResponse {
	res := EmployeeSalaryResponse{
		ID:              s.ID.String(),
		CompanyID:       s.CompanyID.String(),
		EmployeeID:      s.EmployeeID.String(),
		BaseSalary:      s.BaseSalary,
		Allowance:       s.Allowance,
		Bonus:           s.Bonus,
		Overtime:        s.Overtime,
		ManualDeduction: s.ManualDeduction,
		TotalIncome:     s.TotalIncome(),
	}
	if !s.UpdatedAt.IsZero() {
		res.UpdatedAt = s.UpdatedAt.Format(time.RFC3339)
	}
	return res
}
