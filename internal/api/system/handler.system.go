// Package system cung cấp endpoint kiểm tra sức khỏe hệ thống.
package system

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "momentum_pos/internal/api/base/handler"
	"momentum_pos/internal/app"
	"momentum_pos/internal/common"
)

// Handler xử lý các request hệ thống
type Handler struct {
	basehdl.BaseHandler
	app       *app.App
	startedAt time.Time
}

// NewHandler tạo instance mới của system Handler
func NewHandler(base basehdl.BaseHandler, a *app.App) *Handler {
	return &Handler{BaseHandler: base, app: a, startedAt: time.Now()}
}

// HandleHealth trả về trạng thái tiến trình và kết nối MongoDB
func (h *Handler) HandleHealth(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data := fiber.Map{
			"status":        "ok",
			"uptimeSeconds": int64(time.Since(h.startedAt).Seconds()),
			"realtime": fiber.Map{
				"online": h.app.Hub.OnlineCount(),
			},
		}

		if err := h.app.MongoClient.Ping(c.Context(), nil); err != nil {
			data["status"] = "degraded"
			data["database"] = "down"
			return basehdl.JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
				"success": false,
				"error":   common.MsgDatabaseError,
				"data":    data,
			})
		}
		data["database"] = "up"
		return h.HandleSuccess(c, common.MsgSuccess, data)
	})
}
