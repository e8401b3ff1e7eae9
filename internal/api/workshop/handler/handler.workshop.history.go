package shophdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "momentum_pos/internal/api/base/handler"
	shopdto "momentum_pos/internal/api/workshop/dto"
	shopsvc "momentum_pos/internal/api/workshop/service"
	"momentum_pos/internal/common"
)

// ServiceHistoryHandler xử lý các request lịch sử bảo dưỡng
type ServiceHistoryHandler struct {
	basehdl.BaseHandler
	historyService *shopsvc.ServiceHistoryService
}

// NewServiceHistoryHandler tạo instance mới của ServiceHistoryHandler
func NewServiceHistoryHandler(base basehdl.BaseHandler, historyService *shopsvc.ServiceHistoryService) *ServiceHistoryHandler {
	return &ServiceHistoryHandler{BaseHandler: base, historyService: historyService}
}

// HandleList trả về lịch sử bảo dưỡng
func (h *ServiceHistoryHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := paginationParams(c)
		result, err := h.historyService.List(c.Context(), c.Query("vehicleId"), c.Query("customerId"), page, limit)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, result)
	})
}

// HandleGetById trả về một bản ghi lịch sử theo id
func (h *ServiceHistoryHandler) HandleGetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		record, err := h.historyService.FindOneById(c.Context(), id)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, record)
	})
}

// HandleCreate ghi một lần bảo dưỡng vào lịch sử
func (h *ServiceHistoryHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input shopdto.ServiceHistoryCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		record, err := h.historyService.Create(c.Context(), &input)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleCreated(c, common.MsgCreated, record)
	})
}
