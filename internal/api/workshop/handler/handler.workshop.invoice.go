package shophdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "momentum_pos/internal/api/base/handler"
	shopdto "momentum_pos/internal/api/workshop/dto"
	shopsvc "momentum_pos/internal/api/workshop/service"
	"momentum_pos/internal/common"
)

// InvoiceHandler xử lý các request CRUD hóa đơn
type InvoiceHandler struct {
	basehdl.BaseHandler
	invoiceService *shopsvc.InvoiceService
}

// NewInvoiceHandler tạo instance mới của InvoiceHandler
func NewInvoiceHandler(base basehdl.BaseHandler, invoiceService *shopsvc.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{BaseHandler: base, invoiceService: invoiceService}
}

// HandleList trả về danh sách hóa đơn
func (h *InvoiceHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := paginationParams(c)
		result, err := h.invoiceService.List(c.Context(), c.Query("status"), c.Query("customerId"), c.Query("search"), page, limit)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, result)
	})
}

// HandleGetById trả về một hóa đơn theo id
func (h *InvoiceHandler) HandleGetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		invoice, err := h.invoiceService.FindOneById(c.Context(), id)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, invoice)
	})
}

// HandleCreate tạo hóa đơn mới
func (h *InvoiceHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input shopdto.InvoiceCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		invoice, err := h.invoiceService.Create(c.Context(), &input)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleCreated(c, common.MsgCreated, invoice)
	})
}

// HandleUpdate cập nhật hóa đơn
func (h *InvoiceHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		var input shopdto.InvoiceUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		invoice, err := h.invoiceService.Update(c.Context(), id, &input)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, invoice)
	})
}

// HandleDelete xóa mềm hóa đơn
func (h *InvoiceHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		if err := h.invoiceService.Delete(c.Context(), id); err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, "Đã xóa hóa đơn", nil)
	})
}
