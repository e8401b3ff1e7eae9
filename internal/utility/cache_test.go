package utility

import (
	"testing"
	"time"
)

// Test cache: ghi/đọc, hết hạn theo TTL, xóa key
func TestCache(t *testing.T) {
	cache := NewCache(20*time.Millisecond, time.Hour)
	defer cache.Stop()

	if _, ok := cache.Get("dashboard"); ok {
		t.Error("Key chưa ghi không được tồn tại")
	}

	cache.Set("dashboard", 42)
	value, ok := cache.Get("dashboard")
	if !ok {
		t.Fatal("Key vừa ghi phải đọc được")
	}
	if value.(int) != 42 {
		t.Errorf("Giá trị = %v, muốn 42", value)
	}

	cache.Delete("dashboard")
	if _, ok := cache.Get("dashboard"); ok {
		t.Error("Key đã xóa không được tồn tại")
	}

	// Item quá TTL phải bị coi là không tồn tại kể cả khi chưa tới chu kỳ dọn dẹp
	cache.Set("expiring", "x")
	time.Sleep(40 * time.Millisecond)
	if _, ok := cache.Get("expiring"); ok {
		t.Error("Key quá TTL không được trả về")
	}
}
