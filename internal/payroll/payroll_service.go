package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hris-backoffice/internal/attendance"
	"hris-backoffice/internal/companysetting"
	"hris-backoffice/internal/employee"
	"hris-backoffice/internal/employeesalary"
	employeesalaryerrors "hris-backoffice/internal/employeesalary/errors"
	payrollerrors "hris-backoffice/internal/payroll/errors"
	"hris-backoffice/internal/payroll/metrics"
	"hris-backoffice/internal/shared/clock"
	"hris-backoffice/internal/shared/contextutil"
	"hris-backoffice/internal/shared/worktime"
	"hris-backoffice/internal/tenant"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultBulkWorkers = 4

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock

// CheckInReader returns an employee's CHECK_IN events whose attendance date
// falls in [start, end].
type CheckInReader interface {
	FindCheckInsInRange(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]attendance.AttendanceEvent, error)
}

// EmployeeLister pages through a tenant's active employees in a stable order.
type EmployeeLister interface {
	ListActiveByCompany(ctx context.Context, companyID string, limit, offset int) ([]employee.Employee, int64, error)
}

type Service interface {
	Compute(ctx context.Context, companyID, employeeID string) (PayrollResult, error)
	ComputeForTenant(ctx context.Context, companyID string, page, pageSize int) ([]PayrollResult, int64, error)
	Payslip(ctx context.Context, companyID, employeeID string) (PayslipFile, error)
}

type Deps struct {
	Salaries    employeesalary.Reader
	Policies    companysetting.PolicyProvider
	CheckIns    CheckInReader
	Employees   EmployeeLister
	Cache       ResultCache
	Clock       clock.Clock
	Metrics     *metrics.Metrics
	Tracer      trace.Tracer
	BulkWorkers int
}

type service struct {
	salaries  employeesalary.Reader
	policies  companysetting.PolicyProvider
	checkIns  CheckInReader
	employees EmployeeLister
	cache     ResultCache
	clock     clock.Clock
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	workers   int
	logger    *zap.Logger
}

func NewService(deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}

	s := &service{
		salaries:  deps.Salaries,
		policies:  deps.Policies,
		checkIns:  deps.CheckIns,
		employees: deps.Employees,
		cache:     deps.Cache,
		clock:     deps.Clock,
		metrics:   deps.Metrics,
		tracer:    deps.Tracer,
		workers:   deps.BulkWorkers,
		logger:    l,
	}
	if s.cache == nil {
		s.cache = noopCache{}
	}
	if s.clock == nil {
		s.clock = clock.New()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("hris-backoffice/payroll")
	}
	if s.workers <= 0 {
		s.workers = defaultBulkWorkers
	}
	return s
}

func (s *service) Compute(ctx context.Context, companyID, employeeID string) (result PayrollResult, err error) {
	ctx, span := s.tracer.Start(ctx, "payroll.Compute", trace.WithAttributes(
		attribute.String("company_id", companyID),
		attribute.String("employee_id", employeeID),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.String("payroll.status", result.Status))
		}
		span.End()
	}()

	if err := tenant.Validate(companyID, employeeID); err != nil {
		return PayrollResult{}, err
	}

	started := time.Now()

	policy, err := s.policies.GetPolicy(ctx, companyID)
	if err != nil {
		return PayrollResult{}, err
	}

	periodStart, periodEnd := worktime.MonthWindow(s.clock.Now().In(policy.Location))

	if cached, ok := s.cache.Get(ctx, companyID, employeeID, periodStart); ok {
		s.metrics.IncrementCacheLookup(true)
		span.SetAttributes(attribute.Bool("payroll.cache_hit", true))
		return cached, nil
	}
	s.metrics.IncrementCacheLookup(false)

	salary, err := s.salaries.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, employeesalaryerrors.ErrSalaryNotFound) {
			result = PayrollResult{
				CompanyID:   companyID,
				EmployeeID:  employeeID,
				PeriodStart: periodStart,
				PeriodEnd:   periodEnd,
				Note:        "no salary record configured",
				Status:      StatusNoSalaryRecord,
			}
			s.metrics.ObserveComputation(result.Status, time.Since(started))
			return result, nil
		}
		s.logger.Error("payroll salary read failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("company_id", companyID),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return PayrollResult{}, err
	}

	result = newResult(companyID, employeeID, periodStart, periodEnd, salary, policy)

	lateCount, scanErr := s.countActualLates(ctx, companyID, employeeID, periodStart, periodEnd, policy)
	if scanErr != nil {
		s.logger.Warn("attendance scan failed, returning unadjusted payroll",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("company_id", companyID),
			zap.String("employee_id", employeeID),
			zap.Error(scanErr),
		)
		span.AddEvent("attendance scan failed")
		result.Note = "attendance unavailable, deductions not applied"
		result.Status = StatusUnadjusted
		s.metrics.ObserveComputation(result.Status, time.Since(started))
		return result, nil
	}

	applyDeductions(&result, lateCount, salary.ManualDeduction, policy)
	s.cache.Set(ctx, result)
	s.metrics.ObserveComputation(result.Status, time.Since(started))

	return result, nil
}

func newResult(
	companyID, employeeID string,
	periodStart, periodEnd time.Time,
	salary employeesalary.EmployeeSalary,
	policy companysetting.Policy,
) PayrollResult {
	return PayrollResult{
		CompanyID:        companyID,
		EmployeeID:       employeeID,
		PeriodStart:      periodStart,
		PeriodEnd:        periodEnd,
		BaseSalary:       salary.BaseSalary.Round(2),
		Allowance:        salary.Allowance.Round(2),
		Bonus:            salary.Bonus.Round(2),
		Overtime:         salary.Overtime.Round(2),
		ManualDeduction:  salary.ManualDeduction.Round(2),
		TotalIncome:      salary.TotalIncome().Round(2),
		AllowedLateCount: policy.AllowedLateCount,
		DeductionPerLate: policy.DeductionPerLate.Round(2),
	}
}

// countActualLates re-derives lateness from check-in time of day against
// the grace cutoff, ignoring the status stored at check-in. It skips the
// scan entirely when the policy carries no late deduction.
func (s *service) countActualLates(
	ctx context.Context,
	companyID, employeeID string,
	start, end time.Time,
	policy companysetting.Policy,
) (int, error) {
	if !policy.DeductionPerLate.IsPositive() {
		return 0, nil
	}

	events, err := s.checkIns.FindCheckInsInRange(ctx, companyID, employeeID, start, end)
	if err != nil {
		return 0, err
	}

	cutoff := policy.GraceCutoff()
	late := 0
	for _, e := range events {
		if worktime.Of(e.EventTime.In(policy.Location)) > cutoff {
			late++
		}
	}
	return late, nil
}

// applyDeductions leaves a negative net salary as is.
func applyDeductions(r *PayrollResult, lateCount int, manualDeduction decimal.Decimal, policy companysetting.Policy) {
	punishable := lateCount - policy.AllowedLateCount
	if punishable < 0 {
		punishable = 0
	}

	lateDeduction := decimal.Zero
	if policy.DeductionPerLate.IsPositive() {
		lateDeduction = policy.DeductionPerLate.Mul(decimal.NewFromInt(int64(punishable))).Round(2)
	}
	totalDeduction := manualDeduction.Add(lateDeduction).Round(2)
	net := r.TotalIncome.Sub(totalDeduction).Round(2)

	r.LateCount = lateCount
	r.PunishableLates = punishable
	r.LateDeductionAmount = &lateDeduction
	r.TotalDeduction = &totalDeduction
	r.NetSalary = &net
	r.Status = StatusComputed

	switch {
	case !policy.DeductionPerLate.IsPositive():
		r.Note = "late deduction disabled by policy"
	case punishable == 0:
		r.Note = fmt.Sprintf("%d late check-ins, within the %d allowed", lateCount, policy.AllowedLateCount)
	default:
		r.Note = fmt.Sprintf("%d late check-ins penalized (%d late, %d allowed)", punishable, lateCount, policy.AllowedLateCount)
	}
}

// ComputeForTenant computes one page of active employees in parallel.
// Employees without a salary record or whose computation fails are left
// out; the returned total counts active employees.
func (s *service) ComputeForTenant(ctx context.Context, companyID string, page, pageSize int) ([]PayrollResult, int64, error) {
	ctx, span := s.tracer.Start(ctx, "payroll.ComputeForTenant", trace.WithAttributes(
		attribute.String("company_id", companyID),
		attribute.Int("page", page),
		attribute.Int("page_size", pageSize),
	))
	defer span.End()

	if err := tenant.ValidateCompanyID(companyID); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}

	employees, total, err := s.employees.ListActiveByCompany(ctx, companyID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}

	slots := make([]*PayrollResult, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			employeeID := emp.ID.String()
			result, err := s.Compute(gctx, companyID, employeeID)
			if err != nil {
				s.logger.Warn("payroll computation skipped",
					zap.String("company_id", companyID),
					zap.String("employee_id", employeeID),
					zap.Error(err),
				)
				return nil
			}
			if result.Status == StatusNoSalaryRecord {
				return nil
			}
			slots[i] = &result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	results := make([]PayrollResult, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}

	span.SetAttributes(attribute.Int("payroll.results", len(results)))
	s.logger.Info("tenant payroll computed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("company_id", companyID),
		zap.Int("employees", len(employees)),
		zap.Int("results", len(results)),
	)
	return results, total, nil
}

func (s *service) Payslip(ctx context.Context, companyID, employeeID string) (PayslipFile, error) {
	result, err := s.Compute(ctx, companyID, employeeID)
	if err != nil {
		return PayslipFile{}, err
	}
	if result.Status == StatusNoSalaryRecord {
		return PayslipFile{}, payrollerrors.ErrSalaryRecordNotFound
	}

	return PayslipFile{
		FileName: fmt.Sprintf("payslip-%s-%s.pdf", result.PeriodStart.Format("2006-01"), employeeID),
		Content:  renderPayslipPDF(payslipLines(result)),
	}, nil
}
