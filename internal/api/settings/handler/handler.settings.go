// Package settinghdl xử lý các request HTTP của domain cấu hình.
package settinghdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "momentum_pos/internal/api/base/handler"
	"momentum_pos/internal/api/middleware"
	settingdto "momentum_pos/internal/api/settings/dto"
	settingsvc "momentum_pos/internal/api/settings/service"
	"momentum_pos/internal/common"
)

// SettingsHandler xử lý các request cấu hình của người dùng đang đăng nhập
type SettingsHandler struct {
	basehdl.BaseHandler
	settingsService *settingsvc.SettingsService
}

// NewSettingsHandler tạo instance mới của SettingsHandler
func NewSettingsHandler(base basehdl.BaseHandler, settingsService *settingsvc.SettingsService) *SettingsHandler {
	return &SettingsHandler{BaseHandler: base, settingsService: settingsService}
}

func currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	raw, _ := c.Locals(middleware.LocalUserID).(string)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return id, nil
}

// HandleGet trả về cấu hình của người dùng, tự tạo mặc định nếu chưa có
func (h *SettingsHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := currentUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}
		settings, err := h.settingsService.Get(c.Context(), userID)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, settings)
	})
}

// HandleUpdate cập nhật từng phần cấu hình
func (h *SettingsHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := currentUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}
		var input settingdto.SettingsUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		settings, err := h.settingsService.Update(c.Context(), userID, &input)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, "Đã cập nhật cấu hình", settings)
	})
}

// HandleUpdateTax cập nhật riêng thuế suất
func (h *SettingsHandler) HandleUpdateTax(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := currentUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}
		var input settingdto.TaxUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		settings, err := h.settingsService.UpdateTax(c.Context(), userID, &input)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, "Đã cập nhật thuế suất", settings)
	})
}

// HandleUpdateNotifications cập nhật riêng cấu hình nhắc bảo dưỡng
func (h *SettingsHandler) HandleUpdateNotifications(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := currentUserID(c)
		if err != nil {
			return h.HandleError(c, err)
		}
		var input settingdto.NotificationsUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		settings, err := h.settingsService.UpdateNotifications(c.Context(), userID, &input)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, "Đã cập nhật cấu hình thông báo", settings)
	})
}
