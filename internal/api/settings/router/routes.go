// Package router đăng ký các route thuộc domain cấu hình.
package router

import (
	"github.com/gofiber/fiber/v3"

	authsvc "momentum_pos/internal/api/auth/service"
	"momentum_pos/internal/api/authz"
	basehdl "momentum_pos/internal/api/base/handler"
	"momentum_pos/internal/api/middleware"
	settinghdl "momentum_pos/internal/api/settings/handler"
	settingsvc "momentum_pos/internal/api/settings/service"
	"momentum_pos/internal/app"
)

// Register đăng ký các route /settings lên group api
func Register(api fiber.Router, a *app.App, base basehdl.BaseHandler, tokens *authsvc.TokenService) {
	settingsService := settingsvc.NewSettingsService(a)
	h := settinghdl.NewSettingsHandler(base, settingsService)

	can := middleware.RequirePermission

	settings := api.Group("/settings")
	settings.Use(middleware.RequireAuth(tokens))
	settings.Get("/", h.HandleGet, can(authz.ResourceSettings, authz.ActionRead))
	settings.Put("/", h.HandleUpdate, can(authz.ResourceSettings, authz.ActionUpdate))
	settings.Put("/tax", h.HandleUpdateTax, can(authz.ResourceSettings, authz.ActionUpdate))
	settings.Put("/notifications", h.HandleUpdateNotifications, can(authz.ResourceSettings, authz.ActionUpdate))
}
