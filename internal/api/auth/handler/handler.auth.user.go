// Package authhdl xử lý các request HTTP thuộc domain xác thực.
package authhdl

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "momentum_pos/internal/api/auth/dto"
	authsvc "momentum_pos/internal/api/auth/service"
	basehdl "momentum_pos/internal/api/base/handler"
	"momentum_pos/internal/api/middleware"
	"momentum_pos/internal/common"
)

// UserHandler xử lý các request đăng ký, đăng nhập, OTP và profile
type UserHandler struct {
	basehdl.BaseHandler
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler(base basehdl.BaseHandler, userService *authsvc.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// HandleSignup đăng ký tài khoản mới
func (h *UserHandler) HandleSignup(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserSignupInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		user, err := h.userService.Signup(c.Context(), &input)
		if err != nil {
			return h.HandleError(c, err)
		}

		return h.HandleCreated(c, "Đăng ký thành công, vui lòng kiểm tra email để xác thực", fiber.Map{
			"user": user,
		})
	})
}

// HandleLogin đăng nhập bằng email và mật khẩu
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		result, err := h.userService.Login(c.Context(), &input)
		if err != nil {
			// Email chưa xác thực: 403 kèm cờ requiresVerification để client chuyển sang màn OTP
			var notVerified *authsvc.EmailNotVerifiedError
			if errors.As(err, &notVerified) {
				return basehdl.JSONResponse(c, common.StatusForbidden, fiber.Map{
					"success":              false,
					"error":                notVerified.Error(),
					"requiresVerification": true,
					"data":                 fiber.Map{"userId": notVerified.UserID},
				})
			}
			return h.HandleError(c, err)
		}

		return h.HandleSuccess(c, "Đăng nhập thành công", fiber.Map{
			"user":         result.User,
			"accessToken":  result.AccessToken,
			"refreshToken": result.RefreshToken,
		})
	})
}

// HandleRefresh cấp access token mới từ refresh token
func (h *UserHandler) HandleRefresh(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.RefreshTokenInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		accessToken, err := h.userService.Refresh(c.Context(), input.RefreshToken)
		if err != nil {
			return h.HandleError(c, err)
		}

		return h.HandleSuccess(c, "Làm mới token thành công", fiber.Map{
			"accessToken": accessToken,
		})
	})
}

// HandleVerifyEmail xác thực email bằng OTP
func (h *UserHandler) HandleVerifyEmail(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.VerifyEmailInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		user, err := h.userService.VerifyEmail(c.Context(), &input)
		if err != nil {
			return h.HandleError(c, err)
		}

		return h.HandleSuccess(c, "Xác thực email thành công", fiber.Map{"user": user})
	})
}

// HandleSendVerificationOTP gửi lại OTP xác thực email
func (h *UserHandler) HandleSendVerificationOTP(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.SendVerificationOTPInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		if err := h.userService.SendVerificationOTP(c.Context(), input.Email); err != nil {
			return h.HandleError(c, err)
		}

		return h.HandleSuccess(c, "Đã gửi mã OTP xác thực qua email", nil)
	})
}

// HandleForgotPassword gửi OTP đặt lại mật khẩu qua email
func (h *UserHandler) HandleForgotPassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.ForgotPasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		if err := h.userService.ForgotPassword(c.Context(), input.Email); err != nil {
			return h.HandleError(c, err)
		}

		return h.HandleSuccess(c, "Đã gửi mã OTP đặt lại mật khẩu qua email", nil)
	})
}

// HandleResetPassword đặt lại mật khẩu bằng OTP
func (h *UserHandler) HandleResetPassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.ResetPasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		if err := h.userService.ResetPassword(c.Context(), &input); err != nil {
			return h.HandleError(c, err)
		}

		return h.HandleSuccess(c, "Đặt lại mật khẩu thành công, vui lòng đăng nhập lại", nil)
	})
}

// HandleGetMe lấy thông tin user đang đăng nhập
func (h *UserHandler) HandleGetMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.currentUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}

		user, err := h.userService.FindOneById(c.Context(), userID)
		if err != nil {
			return h.HandleError(c, err)
		}

		return h.HandleSuccess(c, common.MsgSuccess, fiber.Map{"user": user})
	})
}

// HandleDeleteMe vô hiệu hóa tài khoản của chính user
func (h *UserHandler) HandleDeleteMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.currentUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}

		if err := h.userService.DeleteMe(c.Context(), userID); err != nil {
			return h.HandleError(c, err)
		}

		return h.HandleSuccess(c, "Tài khoản đã bị xóa", nil)
	})
}

// currentUserID lấy ObjectID của user đã xác thực từ Locals
func (h *UserHandler) currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	raw, _ := c.Locals(middleware.LocalUserID).(string)
	if raw == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	userID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return userID, nil
}
