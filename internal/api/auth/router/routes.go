// Package router đăng ký các route thuộc domain xác thực.
package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "momentum_pos/internal/api/auth/handler"
	authsvc "momentum_pos/internal/api/auth/service"
	basehdl "momentum_pos/internal/api/base/handler"
	"momentum_pos/internal/api/middleware"
	"momentum_pos/internal/app"
)

// Register đăng ký các route /auth lên group api
func Register(api fiber.Router, a *app.App, base basehdl.BaseHandler, tokens *authsvc.TokenService) {
	userService := authsvc.NewUserService(a, tokens)
	h := authhdl.NewUserHandler(base, userService)

	requireAuth := middleware.RequireAuth(tokens)

	auth := api.Group("/auth")
	auth.Post("/signup", h.HandleSignup)
	auth.Post("/login", h.HandleLogin)
	auth.Post("/refresh", h.HandleRefresh)
	auth.Post("/verify-email", h.HandleVerifyEmail)
	auth.Post("/send-verification-otp", h.HandleSendVerificationOTP)
	auth.Post("/forgot-password", h.HandleForgotPassword)
	auth.Post("/reset-password", h.HandleResetPassword)

	// Các route cần xác thực
	auth.Get("/me", h.HandleGetMe, requireAuth)
	auth.Delete("/delete-me", h.HandleDeleteMe, requireAuth)
}
