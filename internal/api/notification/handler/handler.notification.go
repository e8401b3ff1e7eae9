// Package notifhdl xử lý các request HTTP của domain thông báo.
package notifhdl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "momentum_pos/internal/api/base/handler"
	notifsvc "momentum_pos/internal/api/notification/service"
	"momentum_pos/internal/common"
)

// NotificationHandler xử lý các request nhắc bảo dưỡng và gửi thông báo
type NotificationHandler struct {
	basehdl.BaseHandler
	notificationService *notifsvc.NotificationService
}

// NewNotificationHandler tạo instance mới của NotificationHandler
func NewNotificationHandler(base basehdl.BaseHandler, notificationService *notifsvc.NotificationService) *NotificationHandler {
	return &NotificationHandler{BaseHandler: base, notificationService: notificationService}
}

// sendInput là body của các request gửi email/WhatsApp
type sendInput struct {
	CustomerID     string `json:"customerId" validate:"required"`
	VehicleID      string `json:"vehicleId" validate:"required"`
	NotificationID string `json:"notificationId"`
}

// bulkInput là body của request gửi hàng loạt
type bulkInput struct {
	Type   string `json:"type" validate:"required"`
	Method string `json:"method" validate:"required"`
}

func (h *NotificationHandler) parseSendInput(c fiber.Ctx) (primitive.ObjectID, primitive.ObjectID, error) {
	var input sendInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	customerID, err := primitive.ObjectIDFromHex(input.CustomerID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, common.ErrInvalidID
	}
	vehicleID, err := primitive.ObjectIDFromHex(input.VehicleID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, common.ErrInvalidID
	}
	return customerID, vehicleID, nil
}

// HandleList trả về danh sách nhắc bảo dưỡng suy ra từ các xe đến hạn
func (h *NotificationHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		reminders, err := h.notificationService.ListReminders(c.Context(), time.Now())
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, reminders)
	})
}

// HandleStats trả về số liệu tổng hợp của màn thông báo
func (h *NotificationHandler) HandleStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		stats, err := h.notificationService.Stats(c.Context(), time.Now())
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, stats)
	})
}

// HandleServiceReminders trả về danh sách nhắc bảo dưỡng chi tiết
func (h *NotificationHandler) HandleServiceReminders(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		rows, err := h.notificationService.ServiceReminders(c.Context(), time.Now())
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, rows)
	})
}

// HandleSendEmail gửi nhắc bảo dưỡng qua email.
// Luôn trả về HTTP 200, trường success phản ánh kết quả của kênh email.
func (h *NotificationHandler) HandleSendEmail(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		customerID, vehicleID, err := h.parseSendInput(c)
		if err != nil {
			return h.HandleError(c, err)
		}

		result, err := h.notificationService.SendEmail(c.Context(), customerID, vehicleID, time.Now())
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleDeliveryResult(c, result.Success, result.Message, result.Notification)
	})
}

// HandleSendWhatsApp gửi nhắc bảo dưỡng qua WhatsApp.
// Luôn trả về HTTP 200, trường success phản ánh kết quả của kênh WhatsApp.
func (h *NotificationHandler) HandleSendWhatsApp(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		customerID, vehicleID, err := h.parseSendInput(c)
		if err != nil {
			return h.HandleError(c, err)
		}

		result, err := h.notificationService.SendWhatsApp(c.Context(), customerID, vehicleID, time.Now())
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleDeliveryResult(c, result.Success, result.Message, result.Notification)
	})
}

// HandleSendBulk gửi nhắc bảo dưỡng hàng loạt
func (h *NotificationHandler) HandleSendBulk(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input bulkInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}

		result, err := h.notificationService.SendBulk(c.Context(), input.Type, input.Method, time.Now())
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleDeliveryResult(c, result.Failed == 0, "Đã xử lý gửi hàng loạt", result)
	})
}

// HandleHistory trả về lịch sử gửi thông báo
func (h *NotificationHandler) HandleHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		limit, _ := strconv.ParseInt(c.Query("limit", "50"), 10, 64)
		history, err := h.notificationService.History(c.Context(), c.Query("customerId"), c.Query("vehicleId"), limit)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, history)
	})
}
