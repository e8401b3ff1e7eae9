// Package router đăng ký các route thuộc domain danh mục.
package router

import (
	"github.com/gofiber/fiber/v3"

	authsvc "momentum_pos/internal/api/auth/service"
	basehdl "momentum_pos/internal/api/base/handler"
	cathdl "momentum_pos/internal/api/catalog/handler"
	catsvc "momentum_pos/internal/api/catalog/service"
	"momentum_pos/internal/api/middleware"
	"momentum_pos/internal/app"
)

// Register đăng ký các route /catalog lên group api.
// Kiểm tra quyền sở hữu và quyền Admin trên item default nằm trong service
// vì cần đọc document.
func Register(api fiber.Router, a *app.App, base basehdl.BaseHandler, tokens *authsvc.TokenService) {
	itemService := catsvc.NewCatalogItemService(a)
	h := cathdl.NewCatalogItemHandler(base, itemService)

	catalog := api.Group("/catalog")
	catalog.Use(middleware.RequireAuth(tokens))
	catalog.Get("/", h.HandleList)
	catalog.Get("/type/:type", h.HandleListByType)
	catalog.Post("/", h.HandleCreate)
	catalog.Put("/:id", h.HandleUpdate)
	catalog.Delete("/:id", h.HandleDelete)
}
