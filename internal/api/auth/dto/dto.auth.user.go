// Package authdto chứa các cấu trúc input cho domain xác thực.
package authdto

// UserSignupInput dữ liệu đăng ký tài khoản
type UserSignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"` // Rỗng = Technician; Admin chỉ được gán cho user đầu tiên
}

// UserLoginInput dữ liệu đăng nhập
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput dữ liệu làm mới access token
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// VerifyEmailInput dữ liệu xác thực email bằng OTP
type VerifyEmailInput struct {
	UserID string `json:"userId" validate:"required"`
	OTP    string `json:"otp" validate:"required,len=6"`
}

// SendVerificationOTPInput yêu cầu gửi lại OTP xác thực email
type SendVerificationOTPInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPasswordInput yêu cầu OTP đặt lại mật khẩu
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput dữ liệu đặt lại mật khẩu bằng OTP
type ResetPasswordInput struct {
	UserID      string `json:"userId" validate:"required"`
	OTP         string `json:"otp" validate:"required,len=6"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
