// Package reportsvc chứa nghiệp vụ báo cáo và dashboard.
package reportsvc

import (
	"time"

	"momentum_pos/internal/common"
	"momentum_pos/internal/utility"
)

// Các khoảng thời gian báo cáo
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// PKT là múi giờ vận hành của xưởng (UTC+5), dùng để chia ranh giới ngày
var PKT = time.FixedZone("PKT", 5*60*60)

// PeriodRange trả về [start, end) tính bằng mili giây cho một khoảng báo cáo.
// Period rỗng mặc định là month.
func PeriodRange(period string, now time.Time) (int64, int64, error) {
	local := now.In(PKT)
	end := utility.UnixMilli(local)

	var start time.Time
	switch period {
	case PeriodToday:
		start = utility.StartOfDay(local)
	case PeriodWeek:
		start = utility.StartOfDay(local.AddDate(0, 0, -6))
	case PeriodMonth, "":
		start = utility.StartOfDay(local.AddDate(0, -1, 0))
	case PeriodYear:
		start = utility.StartOfDay(local.AddDate(-1, 0, 0))
	default:
		return 0, 0, common.NewError(common.ErrCodeValidationInput, "Khoảng thời gian báo cáo không hợp lệ", common.StatusBadRequest, nil)
	}
	return utility.UnixMilli(start), end, nil
}

// DayBucket trả về nhãn yyyy-mm-dd của thời điểm t theo múi giờ PKT
func DayBucket(millis int64) string {
	return time.UnixMilli(millis).In(PKT).Format("2006-01-02")
}

// LastNDays trả về nhãn của N ngày gần nhất theo PKT, cũ nhất trước
func LastNDays(n int, now time.Time) []string {
	if n < 1 {
		n = 7
	}
	local := utility.StartOfDay(now.In(PKT))
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, local.AddDate(0, 0, -i).Format("2006-01-02"))
	}
	return days
}
