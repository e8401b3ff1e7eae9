// Package router lắp ráp toàn bộ route của API.
package router

import (
	"github.com/gofiber/fiber/v3"

	authrouter "momentum_pos/internal/api/auth/router"
	authsvc "momentum_pos/internal/api/auth/service"
	basehdl "momentum_pos/internal/api/base/handler"
	catalogrouter "momentum_pos/internal/api/catalog/router"
	notificationrouter "momentum_pos/internal/api/notification/router"
	reportsrouter "momentum_pos/internal/api/reports/router"
	settingsrouter "momentum_pos/internal/api/settings/router"
	"momentum_pos/internal/api/system"
	workshoprouter "momentum_pos/internal/api/workshop/router"
	"momentum_pos/internal/app"
)

// SetupRoutes đăng ký toàn bộ route của ứng dụng lên fiber app
func SetupRoutes(fapp *fiber.App, a *app.App) {
	base := basehdl.NewBaseHandler(a.Validate, a.Config.DevMode)
	tokens := authsvc.NewTokenService(a.Config)

	api := fapp.Group("/api")

	systemHandler := system.NewHandler(base, a)
	api.Get("/health", systemHandler.HandleHealth)

	authrouter.Register(api, a, base, tokens)
	workshoprouter.Register(api, a, base, tokens)
	catalogrouter.Register(api, a, base, tokens)
	notificationrouter.Register(api, a, base, tokens)
	reportsrouter.Register(api, a, base, tokens)
	settingsrouter.Register(api, a, base, tokens)
}
