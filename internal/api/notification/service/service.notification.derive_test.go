package notifsvc

import (
	"testing"
	"time"

	notifmodels "momentum_pos/internal/api/notification/models"
	"momentum_pos/internal/utility"
)

// Test tính số ngày đến hạn theo ranh giới ngày
func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		due  time.Time
		want int
	}{
		{"hôm nay", time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), 0},
		{"ngày mai dù chưa đủ 24h", time.Date(2025, 6, 16, 1, 0, 0, 0, time.UTC), 1},
		{"còn 3 ngày", time.Date(2025, 6, 18, 23, 0, 0, 0, time.UTC), 3},
		{"quá hạn hôm qua", time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC), -1},
		{"quá hạn 10 ngày", time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), -10},
	}

	for _, tc := range cases {
		got := DaysUntil(utility.UnixMilli(tc.due), now)
		if got != tc.want {
			t.Errorf("%s: DaysUntil = %d, muốn %d", tc.name, got, tc.want)
		}
	}
}

// Test suy ra mức ưu tiên tại các giá trị biên
func TestPriorityFor(t *testing.T) {
	cases := []struct {
		daysUntil int
		want      string
	}{
		{-10, notifmodels.PriorityHigh},
		{-1, notifmodels.PriorityHigh},
		{0, notifmodels.PriorityHigh},
		{3, notifmodels.PriorityHigh}, // Biên: ngày 3 vẫn là high
		{4, notifmodels.PriorityMedium},
		{7, notifmodels.PriorityMedium}, // Biên: ngày 7 vẫn là medium
		{8, notifmodels.PriorityLow},
		{30, notifmodels.PriorityLow},
	}

	for _, tc := range cases {
		if got := PriorityFor(tc.daysUntil); got != tc.want {
			t.Errorf("PriorityFor(%d) = %s, muốn %s", tc.daysUntil, got, tc.want)
		}
	}
}

// Test suy ra loại thông báo: quá hạn là service_overdue
func TestTypeFor(t *testing.T) {
	if got := TypeFor(-1); got != notifmodels.TypeServiceOverdue {
		t.Errorf("TypeFor(-1) = %s, muốn service_overdue", got)
	}
	if got := TypeFor(0); got != notifmodels.TypeServiceReminder {
		t.Errorf("TypeFor(0) = %s, muốn service_reminder", got)
	}
	if got := TypeFor(5); got != notifmodels.TypeServiceReminder {
		t.Errorf("TypeFor(5) = %s, muốn service_reminder", got)
	}
}

// Test heuristic loại dịch vụ: có oilType hoặc quá 90 ngày là thay dầu
func TestServiceTypeFor(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	if got := ServiceTypeFor("5W-30", 0, now); got != "Oil Change" {
		t.Errorf("Xe có oilType phải là Oil Change, nhận %s", got)
	}

	old := utility.UnixMilli(now.AddDate(0, 0, -120))
	if got := ServiceTypeFor("", old, now); got != "Oil Change" {
		t.Errorf("Hơn 90 ngày chưa bảo dưỡng phải là Oil Change, nhận %s", got)
	}

	recent := utility.UnixMilli(now.AddDate(0, 0, -30))
	if got := ServiceTypeFor("", recent, now); got != "General Service" {
		t.Errorf("Mới bảo dưỡng 30 ngày phải là General Service, nhận %s", got)
	}

	if got := ServiceTypeFor("", 0, now); got != "General Service" {
		t.Errorf("Không có lịch sử phải là General Service, nhận %s", got)
	}
}

// Test thứ tự reminder: quá hạn trước, trong cùng nhóm thì gần hạn hơn trước
func TestReminderLess(t *testing.T) {
	if !ReminderLess(-1, 2) {
		t.Error("Xe quá hạn phải đứng trước xe chưa đến hạn")
	}
	if ReminderLess(2, -1) {
		t.Error("Xe chưa đến hạn không được đứng trước xe quá hạn")
	}
	if !ReminderLess(-2, -5) {
		t.Error("Quá hạn 2 ngày phải đứng trước quá hạn 5 ngày")
	}
	if !ReminderLess(1, 4) {
		t.Error("Còn 1 ngày phải đứng trước còn 4 ngày")
	}
}

// Test viết hoa mức ưu tiên
func TestCapitalizePriority(t *testing.T) {
	cases := map[string]string{
		notifmodels.PriorityLow:    "Low",
		notifmodels.PriorityMedium: "Medium",
		notifmodels.PriorityHigh:   "High",
		"unknown":                  "unknown",
	}
	for in, want := range cases {
		if got := CapitalizePriority(in); got != want {
			t.Errorf("CapitalizePriority(%s) = %s, muốn %s", in, got, want)
		}
	}
}

// Test hình dạng update document của bản ghi dedup sau khi gửi
func TestBuildSendUpdate(t *testing.T) {
	sentAt := int64(1750000000000)

	success := BuildSendUpdate("email", true, sentAt, "", notifmodels.TypeServiceReminder, 1760000000000, notifmodels.PriorityMedium, "Nhắc bảo dưỡng", "nội dung")
	if success.Set["emailSent"] != true {
		t.Error("Gửi thành công phải set emailSent=true")
	}
	if success.Set["emailSentAt"] != sentAt {
		t.Errorf("emailSentAt = %v, muốn %d", success.Set["emailSentAt"], sentAt)
	}
	if success.Set["status"] != notifmodels.StatusSent {
		t.Errorf("status = %v, muốn sent", success.Set["status"])
	}
	if _, hasErr := success.Set["error"]; hasErr {
		t.Error("Gửi thành công không được set error")
	}
	if _, unsetErr := success.Unset["error"]; !unsetErr {
		t.Error("Gửi thành công phải unset error cũ")
	}

	failed := BuildSendUpdate("whatsapp", false, sentAt, "timeout", notifmodels.TypeServiceOverdue, 1760000000000, notifmodels.PriorityHigh, "Nhắc bảo dưỡng", "nội dung")
	if failed.Set["status"] != notifmodels.StatusFailed {
		t.Errorf("status = %v, muốn failed", failed.Set["status"])
	}
	if failed.Set["error"] != "timeout" {
		t.Errorf("error = %v, muốn timeout", failed.Set["error"])
	}
	if _, hasSent := failed.Set["whatsappSent"]; hasSent {
		t.Error("Gửi thất bại không được set whatsappSent")
	}
	if failed.Set["type"] != notifmodels.TypeServiceOverdue {
		t.Errorf("type = %v, muốn service_overdue", failed.Set["type"])
	}
}
