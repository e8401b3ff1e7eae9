package channels

import "testing"

// Test chuẩn hóa số điện thoại về định dạng quốc tế
func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+923001234567", "+923001234567"},  // Đã chuẩn thì giữ nguyên
		{"03001234567", "+923001234567"},    // Số nội địa đổi 0 thành +92
		{"0300 123 4567", "+923001234567"},  // Bỏ khoảng trắng
		{"0300-123-4567", "+923001234567"},  // Bỏ dấu gạch
		{"(0300) 1234567", "+923001234567"}, // Bỏ ngoặc
		{"923001234567", "+923001234567"},   // Thiếu + thì thêm vào
		{"  +92 300 1234567  ", "+923001234567"},
	}

	for _, tc := range cases {
		got, err := NormalizePhone(tc.in)
		if err != nil {
			t.Errorf("NormalizePhone(%q) trả về lỗi: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, muốn %q", tc.in, got, tc.want)
		}
	}
}

// Test số điện thoại rỗng bị từ chối
func TestNormalizePhone_Rong(t *testing.T) {
	if _, err := NormalizePhone(""); err == nil {
		t.Error("Số rỗng phải trả về lỗi")
	}
	if _, err := NormalizePhone("   "); err == nil {
		t.Error("Số toàn khoảng trắng phải trả về lỗi")
	}
}
