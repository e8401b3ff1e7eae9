package authsvc

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

// Thời gian sống của OTP tính bằng mili giây (10 phút)
const OTPExpiryMillis = 10 * 60 * 1000

// GenerateOTP sinh mã OTP 6 chữ số bằng crypto/rand
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("sinh OTP thất bại: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// HashOTP băm OTP bằng sha256, trả về chuỗi hex.
// Chỉ lưu bản băm trong database, không bao giờ lưu OTP gốc.
func HashOTP(otp string) string {
	sum := sha256.Sum256([]byte(otp))
	return hex.EncodeToString(sum[:])
}
