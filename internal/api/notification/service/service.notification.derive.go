// Package notifsvc chứa nghiệp vụ thông báo nhắc bảo dưỡng.
package notifsvc

import (
	"time"

	notifmodels "momentum_pos/internal/api/notification/models"
	"momentum_pos/internal/utility"
)

// Ngưỡng ngày cho mức ưu tiên của nhắc bảo dưỡng
const (
	highPriorityDays   = 3
	mediumPriorityDays = 7
)

// Quá 90 ngày chưa bảo dưỡng thì heuristic coi là cần thay dầu
const oilChangeGapDays = 90

// DaysUntil tính số ngày từ hôm nay đến hạn bảo dưỡng theo ranh giới ngày.
// Kết quả âm nghĩa là đã quá hạn.
func DaysUntil(nextService int64, now time.Time) int {
	due := utility.StartOfDay(time.UnixMilli(nextService).In(now.Location()))
	today := utility.StartOfDay(now)
	return int(due.Sub(today).Hours() / 24)
}

// PriorityFor suy ra mức ưu tiên từ số ngày đến hạn:
// quá hạn hoặc còn <= 3 ngày là high, <= 7 ngày là medium, còn lại là low.
func PriorityFor(daysUntil int) string {
	if daysUntil < 0 || daysUntil <= highPriorityDays {
		return notifmodels.PriorityHigh
	}
	if daysUntil <= mediumPriorityDays {
		return notifmodels.PriorityMedium
	}
	return notifmodels.PriorityLow
}

// TypeFor suy ra loại thông báo: quá hạn là service_overdue, còn lại là
// service_reminder.
func TypeFor(daysUntil int) string {
	if daysUntil < 0 {
		return notifmodels.TypeServiceOverdue
	}
	return notifmodels.TypeServiceReminder
}

// ServiceTypeFor đoán loại dịch vụ đến hạn của xe: có oilType hoặc đã hơn
// 90 ngày từ lần bảo dưỡng cuối thì là thay dầu, còn lại là bảo dưỡng tổng quát.
func ServiceTypeFor(oilType string, lastService int64, now time.Time) string {
	if oilType != "" {
		return "Oil Change"
	}
	if lastService > 0 {
		gap := now.Sub(time.UnixMilli(lastService))
		if gap > oilChangeGapDays*24*time.Hour {
			return "Oil Change"
		}
	}
	return "General Service"
}

// ReminderLess so sánh thứ tự hai reminder: xe quá hạn đứng trước, trong cùng
// nhóm thì |daysUntil| nhỏ hơn đứng trước.
func ReminderLess(daysUntilA int, daysUntilB int) bool {
	overdueA := daysUntilA < 0
	overdueB := daysUntilB < 0
	if overdueA != overdueB {
		return overdueA
	}
	absA := daysUntilA
	if absA < 0 {
		absA = -absA
	}
	absB := daysUntilB
	if absB < 0 {
		absB = -absB
	}
	return absA < absB
}
