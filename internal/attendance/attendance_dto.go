package attendance

type AttendanceEventResponse struct {
	ID             string `json:"id"`
	CompanyID      string `json:"company_id"`
	EmployeeID     string `json:"employee_id"`
	EventType      string `json:"event_type"`
	Status         string `json:"status"`
	AttendanceDate string `json:"attendance_date"`
	EventTime      string `json:"event_time"`
}

type TodayStateResponse struct {
	Date           string  `json:"date"`
	HasCheckedIn   bool    `json:"has_checked_in"`
	HasCheckedOut  bool    `json:"has_checked_out"`
	CheckInTime    *string `json:"check_in_time,omitempty"`
	CheckOutTime   *string `json:"check_out_time,omitempty"`
	CheckInStatus  *string `json:"check_in_status,omitempty"`
	CheckOutStatus *string `json:"check_out_status,omitempty"`
	IsAfterEndWork bool    `json:"is_after_end_work"`
}

// CountSummaryResponse maps event_type to status to count.
type CountSummaryResponse struct {
	Counts map[string]map[string]int64 `json:"counts"`
	Total  int64                       `json:"total"`
}

type LateCountQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

type LateCountResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	LateCount int64  `json:"late_count"`
}

type HistoryQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type DailySummaryResponse struct {
	Date   string `json:"date"`
	OnTime int64  `json:"on_time"`
	Late   int64  `json:"late"`
	Absent int64  `json:"absent"`
}
