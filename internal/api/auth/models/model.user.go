// Package authmodels chứa các model thuộc domain xác thực.
package authmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User đại diện cho một người dùng của hệ thống.
// Password và các trường OTP không bao giờ được serialize ra JSON.
type User struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email" bson:"email"`
	Password      string             `json:"-" bson:"password"`
	Role          string             `json:"role" bson:"role"`
	Lifecycle     string             `json:"lifecycle" bson:"lifecycle"`
	EmailVerified bool               `json:"emailVerified" bson:"emailVerified"`

	// OTP xác thực email (sha256 hex) và hạn dùng (mili giây)
	VerificationOTP       string `json:"-" bson:"verificationOtp,omitempty"`
	VerificationOTPExpiry int64  `json:"-" bson:"verificationOtpExpiry,omitempty"`

	// OTP đặt lại mật khẩu (sha256 hex) và hạn dùng (mili giây)
	PasswordResetOTP       string `json:"-" bson:"passwordResetOtp,omitempty"`
	PasswordResetOTPExpiry int64  `json:"-" bson:"passwordResetOtpExpiry,omitempty"`

	// Danh sách refresh token đang còn hiệu lực của user
	RefreshTokens []string `json:"-" bson:"refreshTokens,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
