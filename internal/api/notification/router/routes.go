// Package router đăng ký các route thuộc domain thông báo.
package router

import (
	"github.com/gofiber/fiber/v3"

	authsvc "momentum_pos/internal/api/auth/service"
	"momentum_pos/internal/api/authz"
	basehdl "momentum_pos/internal/api/base/handler"
	"momentum_pos/internal/api/middleware"
	notifhdl "momentum_pos/internal/api/notification/handler"
	notifsvc "momentum_pos/internal/api/notification/service"
	"momentum_pos/internal/app"
)

// Register đăng ký các route /notifications lên group api
func Register(api fiber.Router, a *app.App, base basehdl.BaseHandler, tokens *authsvc.TokenService) {
	notificationService := notifsvc.NewNotificationService(a)
	h := notifhdl.NewNotificationHandler(base, notificationService)

	can := middleware.RequirePermission

	notifications := api.Group("/notifications")
	notifications.Use(middleware.RequireAuth(tokens))
	notifications.Get("/", h.HandleList, can(authz.ResourceNotifications, authz.ActionRead))
	notifications.Get("/stats", h.HandleStats, can(authz.ResourceNotifications, authz.ActionRead))
	notifications.Get("/service-reminders", h.HandleServiceReminders, can(authz.ResourceNotifications, authz.ActionRead))
	notifications.Get("/history", h.HandleHistory, can(authz.ResourceNotifications, authz.ActionRead))
	notifications.Post("/send-email", h.HandleSendEmail, can(authz.ResourceNotifications, authz.ActionSend))
	notifications.Post("/send-whatsapp", h.HandleSendWhatsApp, can(authz.ResourceNotifications, authz.ActionSend))
	notifications.Post("/send-bulk", h.HandleSendBulk, can(authz.ResourceNotifications, authz.ActionSend))
}
