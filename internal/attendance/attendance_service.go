package attendance

import (
	"context"
	"time"

	attendanceerrors "hris-backoffice/internal/attendance/errors"
	"hris-backoffice/internal/companysetting"
	"hris-backoffice/internal/shared/clock"
	"hris-backoffice/internal/shared/contextutil"
	"hris-backoffice/internal/shared/worktime"
	"hris-backoffice/internal/tenant"

	"go.uber.org/zap"
)

// ActiveEmployeeCounter is the employee directory seam used by the daily
// dashboard.
type ActiveEmployeeCounter interface {
	CountActiveByCompany(ctx context.Context, companyID string) (int64, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	GetTodayEvents(ctx context.Context, companyID, employeeID string) ([]AttendanceEventResponse, error)
	GetTodayState(ctx context.Context, companyID, employeeID string) (TodayStateResponse, error)
	GetCountSummary(ctx context.Context, companyID, employeeID string) (CountSummaryResponse, error)
	GetLateCountInWindow(ctx context.Context, companyID, employeeID string, start, end time.Time) (int64, error)
	GetDailySummary(ctx context.Context, companyID string) (DailySummaryResponse, error)
	GetHistory(ctx context.Context, companyID, employeeID string, start, end time.Time, limit, offset int) ([]AttendanceEventResponse, int64, error)
}

type service struct {
	repo      Repository
	policies  companysetting.PolicyProvider
	employees ActiveEmployeeCounter
	clock     clock.Clock
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	policies companysetting.PolicyProvider,
	employees ActiveEmployeeCounter,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if clk == nil {
		clk = clock.New()
	}
	return &service{
		repo:      repo,
		policies:  policies,
		employees: employees,
		clock:     clk,
		logger:    l,
	}
}

// today resolves the tenant policy and the current instant in its zone.
func (s *service) today(ctx context.Context, companyID string) (companysetting.Policy, time.Time, error) {
	policy, err := s.policies.GetPolicy(ctx, companyID)
	if err != nil {
		return companysetting.Policy{}, time.Time{}, err
	}
	return policy, s.clock.Now().In(policy.Location), nil
}

func (s *service) GetTodayEvents(ctx context.Context, companyID, employeeID string) ([]AttendanceEventResponse, error) {
	if err := tenant.Validate(companyID, employeeID); err != nil {
		return nil, err
	}

	policy, now, err := s.today(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByEmployeeAndDate(ctx, companyID, employeeID, worktime.Date(now))
	if err != nil {
		s.logger.Error("find today events failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("company_id", companyID),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, err
	}

	return mapToListResponse(rows, policy.Location), nil
}

func (s *service) GetTodayState(ctx context.Context, companyID, employeeID string) (TodayStateResponse, error) {
	if err := tenant.Validate(companyID, employeeID); err != nil {
		return TodayStateResponse{}, err
	}

	policy, now, err := s.today(ctx, companyID)
	if err != nil {
		return TodayStateResponse{}, err
	}

	day := worktime.Date(now)
	rows, err := s.repo.FindByEmployeeAndDate(ctx, companyID, employeeID, day)
	if err != nil {
		return TodayStateResponse{}, err
	}

	state := TodayStateResponse{
		Date:           day.Format(worktime.DateLayout),
		IsAfterEndWork: worktime.Of(now) >= policy.EndWork,
	}
	for _, row := range rows {
		at := row.EventTime.In(policy.Location).Format(time.RFC3339)
		status := row.Status
		switch row.EventType {
		case EventCheckIn:
			state.HasCheckedIn = true
			state.CheckInTime = &at
			state.CheckInStatus = &status
		case EventCheckOut:
			state.HasCheckedOut = true
			state.CheckOutTime = &at
			state.CheckOutStatus = &status
		}
	}

	return state, nil
}

func (s *service) GetCountSummary(ctx context.Context, companyID, employeeID string) (CountSummaryResponse, error) {
	if err := tenant.Validate(companyID, employeeID); err != nil {
		return CountSummaryResponse{}, err
	}

	rows, err := s.repo.CountByTypeAndStatus(ctx, companyID, employeeID)
	if err != nil {
		return CountSummaryResponse{}, err
	}

	res := CountSummaryResponse{Counts: map[string]map[string]int64{}}
	for _, row := range rows {
		byStatus, ok := res.Counts[row.EventType]
		if !ok {
			byStatus = map[string]int64{}
			res.Counts[row.EventType] = byStatus
		}
		byStatus[row.Status] += row.Total
		res.Total += row.Total
	}

	return res, nil
}

func (s *service) GetLateCountInWindow(ctx context.Context, companyID, employeeID string, start, end time.Time) (int64, error) {
	if err := tenant.Validate(companyID, employeeID); err != nil {
		return 0, err
	}
	if start.After(end) {
		return 0, attendanceerrors.ErrInvalidDateRange
	}

	return s.repo.CountLateCheckIns(ctx, companyID, employeeID, start, end)
}

func (s *service) GetDailySummary(ctx context.Context, companyID string) (DailySummaryResponse, error) {
	if err := tenant.ValidateCompanyID(companyID); err != nil {
		return DailySummaryResponse{}, err
	}

	_, now, err := s.today(ctx, companyID)
	if err != nil {
		return DailySummaryResponse{}, err
	}

	day := worktime.Date(now)
	stats, err := s.repo.DailyCheckInStats(ctx, companyID, day)
	if err != nil {
		return DailySummaryResponse{}, err
	}

	active, err := s.employees.CountActiveByCompany(ctx, companyID)
	if err != nil {
		return DailySummaryResponse{}, err
	}

	absent := active - stats.DistinctEmployees
	if absent < 0 {
		s.logger.Warn("more check-ins than active employees",
			zap.String("company_id", companyID),
			zap.Int64("active", active),
			zap.Int64("checked_in", stats.DistinctEmployees),
		)
		absent = 0
	}

	return DailySummaryResponse{
		Date:   day.Format(worktime.DateLayout),
		OnTime: stats.OnTime,
		Late:   stats.Late,
		Absent: absent,
	}, nil
}

// GetHistory returns events newest first. A zero start or end falls back to
// the current month in the tenant zone.
func (s *service) GetHistory(
	ctx context.Context,
	companyID, employeeID string,
	start, end time.Time,
	limit, offset int,
) ([]AttendanceEventResponse, int64, error) {
	if err := tenant.Validate(companyID, employeeID); err != nil {
		return nil, 0, err
	}

	policy, now, err := s.today(ctx, companyID)
	if err != nil {
		return nil, 0, err
	}

	monthStart, monthEnd := worktime.MonthWindow(now)
	if start.IsZero() {
		start = monthStart
	}
	if end.IsZero() {
		end = monthEnd
	}
	if start.After(end) {
		return nil, 0, attendanceerrors.ErrInvalidDateRange
	}

	rows, total, err := s.repo.FindByEmployeeInRange(ctx, companyID, employeeID, start, end, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return mapToListResponse(rows, policy.Location), total, nil
}
