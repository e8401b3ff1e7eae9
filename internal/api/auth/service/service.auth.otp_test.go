package authsvc

import (
	"regexp"
	"testing"
)

// Test OTP sinh ra luôn là 6 chữ số
func TestGenerateOTP(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 100; i++ {
		otp, err := GenerateOTP()
		if err != nil {
			t.Fatalf("GenerateOTP trả về lỗi: %v", err)
		}
		if !pattern.MatchString(otp) {
			t.Fatalf("OTP %q không phải 6 chữ số", otp)
		}
	}
}

// Test băm OTP: ổn định, khác OTP gốc, sha256 hex 64 ký tự
func TestHashOTP(t *testing.T) {
	hash := HashOTP("123456")

	if hash == "123456" {
		t.Error("Bản băm không được trùng OTP gốc")
	}
	if len(hash) != 64 {
		t.Errorf("Bản băm sha256 hex phải dài 64 ký tự, nhận %d", len(hash))
	}
	if HashOTP("123456") != hash {
		t.Error("Băm cùng OTP phải cho cùng kết quả")
	}
	if HashOTP("123457") == hash {
		t.Error("OTP khác nhau phải cho bản băm khác nhau")
	}

	// Giá trị biết trước của sha256("123456")
	want := "8d969eef6ecad3c29a3a629280e686cf0c3f5d5a86aff3ca12020c923adc6c92"
	if hash != want {
		t.Errorf("HashOTP(123456) = %s, muốn %s", hash, want)
	}
}
