package worktime_test

import (
	"testing"
	"time"

	"hris-backoffice/internal/shared/worktime"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "08:00", want: 8 * time.Hour},
		{in: "17:30", want: 17*time.Hour + 30*time.Minute},
		{in: "08:00:01", want: 8*time.Hour + time.Second},
		{in: " 09:15 ", want: 9*time.Hour + 15*time.Minute},
		{in: "25:00", wantErr: true},
		{in: "8am", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := worktime.ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.Duration())
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "08:00", worktime.MustParseTimeOfDay("08:00").String())
	assert.Equal(t, "08:15", worktime.MustParseTimeOfDay("08:00").Add(15*time.Minute).String())
	assert.Equal(t, "08:00:01", worktime.MustParseTimeOfDay("08:00:01").String())
}

func TestOf_UsesLocation(t *testing.T) {
	bangkok, err := time.LoadLocation("Asia/Bangkok")
	assert.NoError(t, err)

	// 01:30 UTC is 08:30 in Bangkok.
	ts := time.Date(2026, 3, 2, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, "01:30", worktime.Of(ts).String())
	assert.Equal(t, "08:30", worktime.Of(ts.In(bangkok)).String())
}

func TestDate_CalendarDayInLocation(t *testing.T) {
	bangkok, err := time.LoadLocation("Asia/Bangkok")
	assert.NoError(t, err)

	// 2026-03-01 20:00 UTC is already March 2nd in Bangkok.
	ts := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-03-01", worktime.Date(ts).Format(worktime.DateLayout))
	assert.Equal(t, "2026-03-02", worktime.Date(ts.In(bangkok)).Format(worktime.DateLayout))
}

func TestMonthWindow(t *testing.T) {
	start, end := worktime.MonthWindow(time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-02-01", start.Format(worktime.DateLayout))
	assert.Equal(t, "2026-02-28", end.Format(worktime.DateLayout))

	start, end = worktime.MonthWindow(time.Date(2028, 2, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2028-02-01", start.Format(worktime.DateLayout))
	assert.Equal(t, "2028-02-29", end.Format(worktime.DateLayout))

	start, end = worktime.MonthWindow(time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2026-12-01", start.Format(worktime.DateLayout))
	assert.Equal(t, "2026-12-31", end.Format(worktime.DateLayout))
}

func TestInLocation(t *testing.T) {
	assert.Equal(t, time.UTC, worktime.InLocation("", time.UTC))
	assert.Equal(t, time.UTC, worktime.InLocation("Mars/Olympus", time.UTC))
	assert.Equal(t, "Asia/Bangkok", worktime.InLocation("Asia/Bangkok", time.UTC).String())
}
