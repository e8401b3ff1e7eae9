package shophdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "momentum_pos/internal/api/base/handler"
	"momentum_pos/internal/api/middleware"
	shopdto "momentum_pos/internal/api/workshop/dto"
	shopsvc "momentum_pos/internal/api/workshop/service"
	"momentum_pos/internal/common"
)

// CustomerHandler xử lý các request CRUD khách hàng
type CustomerHandler struct {
	basehdl.BaseHandler
	customerService *shopsvc.CustomerService
}

// NewCustomerHandler tạo instance mới của CustomerHandler
func NewCustomerHandler(base basehdl.BaseHandler, customerService *shopsvc.CustomerService) *CustomerHandler {
	return &CustomerHandler{BaseHandler: base, customerService: customerService}
}

// HandleList trả về danh sách khách hàng
func (h *CustomerHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := paginationParams(c)
		result, err := h.customerService.List(c.Context(), c.Query("search"), page, limit)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, result)
	})
}

// HandleGetById trả về một khách hàng theo id
func (h *CustomerHandler) HandleGetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		customer, err := h.customerService.FindOneById(c.Context(), id)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, customer)
	})
}

// HandleCreate tạo khách hàng mới
func (h *CustomerHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input shopdto.CustomerCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		customer, err := h.customerService.Create(c.Context(), &input)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleCreated(c, common.MsgCreated, customer)
	})
}

// HandleUpdate cập nhật khách hàng
func (h *CustomerHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		var input shopdto.CustomerUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		customer, err := h.customerService.Update(c.Context(), id, &input)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, customer)
	})
}

// HandleDelete xóa mềm khách hàng, Admin xóa kèm các xe
func (h *CustomerHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		role, _ := c.Locals(middleware.LocalUserRole).(string)
		if err := h.customerService.Delete(c.Context(), id, role); err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, "Đã xóa khách hàng", nil)
	})
}
