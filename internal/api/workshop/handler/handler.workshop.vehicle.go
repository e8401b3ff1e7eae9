package shophdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "momentum_pos/internal/api/base/handler"
	shopdto "momentum_pos/internal/api/workshop/dto"
	shopsvc "momentum_pos/internal/api/workshop/service"
	"momentum_pos/internal/common"
)

// VehicleHandler xử lý các request CRUD xe
type VehicleHandler struct {
	basehdl.BaseHandler
	vehicleService *shopsvc.VehicleService
}

// NewVehicleHandler tạo instance mới của VehicleHandler
func NewVehicleHandler(base basehdl.BaseHandler, vehicleService *shopsvc.VehicleService) *VehicleHandler {
	return &VehicleHandler{BaseHandler: base, vehicleService: vehicleService}
}

// HandleList trả về danh sách xe
func (h *VehicleHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := paginationParams(c)
		result, err := h.vehicleService.List(c.Context(), c.Query("customerId"), c.Query("status"), c.Query("search"), page, limit)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, result)
	})
}

// HandleGetById trả về một xe theo id
func (h *VehicleHandler) HandleGetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		vehicle, err := h.vehicleService.FindOneById(c.Context(), id)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, vehicle)
	})
}

// HandleCreate tạo xe mới
func (h *VehicleHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input shopdto.VehicleCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		vehicle, err := h.vehicleService.Create(c.Context(), &input)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleCreated(c, common.MsgCreated, vehicle)
	})
}

// HandleUpdate cập nhật xe
func (h *VehicleHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		var input shopdto.VehicleUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		vehicle, err := h.vehicleService.Update(c.Context(), id, &input)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, vehicle)
	})
}

// HandleDelete xóa mềm xe
func (h *VehicleHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		if err := h.vehicleService.Delete(c.Context(), id); err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, "Đã xóa xe", nil)
	})
}
