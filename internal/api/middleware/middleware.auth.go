// Package middleware chứa các middleware xác thực và phân quyền cho HTTP layer.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	authsvc "momentum_pos/internal/api/auth/service"
	"momentum_pos/internal/api/authz"
	basehdl "momentum_pos/internal/api/base/handler"
	"momentum_pos/internal/common"
)

// Các key trong Locals của request đã xác thực
const (
	LocalUserID   = "user_id"
	LocalUserRole = "user_role"
)

// RequireAuth xác thực Bearer access token và lưu user_id/user_role vào Locals.
// Token thiếu/hết hạn/không hợp lệ trả về 401.
func RequireAuth(tokens *authsvc.TokenService) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return unauthorized(c, common.MsgTokenMissing)
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			var appErr *common.Error
			if errors.As(err, &appErr) {
				return unauthorized(c, appErr.Message)
			}
			return unauthorized(c, common.MsgTokenInvalid)
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserRole, claims.Role)
		return c.Next()
	}
}

// RequirePermission kiểm tra role của request có được thực hiện action trên
// resource không theo bảng phân quyền. Phải đứng sau RequireAuth.
func RequirePermission(resource string, action string) fiber.Handler {
	return func(c fiber.Ctx) error {
		role, _ := c.Locals(LocalUserRole).(string)
		if role == "" {
			return unauthorized(c, common.MsgUnauthorized)
		}
		if !authz.Can(role, resource, action) {
			return basehdl.JSONResponse(c, common.StatusForbidden, fiber.Map{
				"success": false,
				"error":   common.MsgForbidden,
			})
		}
		return c.Next()
	}
}

func unauthorized(c fiber.Ctx, message string) error {
	return basehdl.JSONResponse(c, common.StatusUnauthorized, fiber.Map{
		"success": false,
		"error":   message,
	})
}
