package reportsvc

import (
	"errors"
	"testing"
	"time"

	"momentum_pos/internal/common"
	"momentum_pos/internal/utility"
)

// Test các khoảng báo cáo: today/week/month/year và mặc định
func TestPeriodRange(t *testing.T) {
	// 2026-08-31 10:30 PKT
	now := time.Date(2026, 8, 31, 10, 30, 0, 0, PKT)

	tests := []struct {
		period    string
		wantStart time.Time
	}{
		{PeriodToday, time.Date(2026, 8, 31, 0, 0, 0, 0, PKT)},
		{PeriodWeek, time.Date(2026, 8, 25, 0, 0, 0, 0, PKT)},
		{PeriodMonth, time.Date(2026, 7, 31, 0, 0, 0, 0, PKT)},
		{"", time.Date(2026, 7, 31, 0, 0, 0, 0, PKT)},
		{PeriodYear, time.Date(2025, 8, 31, 0, 0, 0, 0, PKT)},
	}
	for _, tt := range tests {
		start, end, err := PeriodRange(tt.period, now)
		if err != nil {
			t.Fatalf("PeriodRange(%q) trả về lỗi: %v", tt.period, err)
		}
		if start != utility.UnixMilli(tt.wantStart) {
			t.Errorf("PeriodRange(%q) start = %d, muốn %d", tt.period, start, utility.UnixMilli(tt.wantStart))
		}
		if end != utility.UnixMilli(now) {
			t.Errorf("PeriodRange(%q) end = %d, muốn %d", tt.period, end, utility.UnixMilli(now))
		}
	}
}

// Test khoảng báo cáo không hợp lệ trả về lỗi 400
func TestPeriodRange_KhongHopLe(t *testing.T) {
	_, _, err := PeriodRange("quarter", time.Now())
	if err == nil {
		t.Fatal("PeriodRange(quarter) phải trả về lỗi")
	}
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("Lỗi phải là *common.Error, nhận %T", err)
	}
	if appErr.StatusCode != common.StatusBadRequest {
		t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, common.StatusBadRequest)
	}
}

// Test chia ngày theo múi giờ PKT: nửa đêm UTC vẫn thuộc ngày PKT tương ứng
func TestDayBucket(t *testing.T) {
	// 2026-08-30 23:00 UTC = 2026-08-31 04:00 PKT
	millis := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC).UnixMilli()
	if got := DayBucket(millis); got != "2026-08-31" {
		t.Errorf("DayBucket = %s, muốn 2026-08-31", got)
	}

	// 2026-08-30 18:59 UTC = 2026-08-30 23:59 PKT
	millis = time.Date(2026, 8, 30, 18, 59, 0, 0, time.UTC).UnixMilli()
	if got := DayBucket(millis); got != "2026-08-30" {
		t.Errorf("DayBucket = %s, muốn 2026-08-30", got)
	}
}

// Test LastNDays trả về đúng N nhãn, cũ nhất trước, kết thúc ở hôm nay
func TestLastNDays(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 30, 0, 0, PKT)

	days := LastNDays(3, now)
	want := []string{"2026-08-29", "2026-08-30", "2026-08-31"}
	if len(days) != len(want) {
		t.Fatalf("LastNDays(3) trả về %d phần tử, muốn %d", len(days), len(want))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("LastNDays(3)[%d] = %s, muốn %s", i, days[i], want[i])
		}
	}

	// N không hợp lệ rơi về mặc định 7 ngày
	if got := LastNDays(0, now); len(got) != 7 {
		t.Errorf("LastNDays(0) trả về %d phần tử, muốn 7", len(got))
	}
}
