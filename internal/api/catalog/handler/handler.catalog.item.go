// Package cathdl xử lý các request HTTP của domain danh mục.
package cathdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "momentum_pos/internal/api/base/handler"
	catdto "momentum_pos/internal/api/catalog/dto"
	catsvc "momentum_pos/internal/api/catalog/service"
	"momentum_pos/internal/api/middleware"
	"momentum_pos/internal/common"
)

// CatalogItemHandler xử lý các request CRUD item danh mục
type CatalogItemHandler struct {
	basehdl.BaseHandler
	itemService *catsvc.CatalogItemService
}

// NewCatalogItemHandler tạo instance mới của CatalogItemHandler
func NewCatalogItemHandler(base basehdl.BaseHandler, itemService *catsvc.CatalogItemService) *CatalogItemHandler {
	return &CatalogItemHandler{BaseHandler: base, itemService: itemService}
}

// actor dựng Actor từ Locals của request đã xác thực
func (h *CatalogItemHandler) actor(c fiber.Ctx) (catsvc.Actor, error) {
	raw, _ := c.Locals(middleware.LocalUserID).(string)
	userID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return catsvc.Actor{}, common.ErrTokenInvalid
	}
	role, _ := c.Locals(middleware.LocalUserRole).(string)
	return catsvc.Actor{UserID: userID, Role: role}, nil
}

// HandleList trả về các item actor được thấy
func (h *CatalogItemHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := h.actor(c)
		if err != nil {
			return h.HandleError(c, err)
		}
		items, err := h.itemService.List(c.Context(), actor)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, items)
	})
}

// HandleListByType trả về các item theo loại service|product
func (h *CatalogItemHandler) HandleListByType(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := h.actor(c)
		if err != nil {
			return h.HandleError(c, err)
		}
		items, err := h.itemService.ListByType(c.Context(), actor, c.Params("type"))
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, items)
	})
}

// HandleCreate tạo item danh mục mới
func (h *CatalogItemHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := h.actor(c)
		if err != nil {
			return h.HandleError(c, err)
		}
		var input catdto.CatalogItemCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		item, err := h.itemService.Create(c.Context(), actor, &input)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleCreated(c, common.MsgCreated, item)
	})
}

// HandleUpdate cập nhật item danh mục
func (h *CatalogItemHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := h.actor(c)
		if err != nil {
			return h.HandleError(c, err)
		}
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		var input catdto.CatalogItemUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		item, err := h.itemService.Update(c.Context(), actor, id, &input)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, item)
	})
}

// HandleDelete xóa item danh mục (default: deactivate, local: xóa cứng)
func (h *CatalogItemHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := h.actor(c)
		if err != nil {
			return h.HandleError(c, err)
		}
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		if err := h.itemService.Delete(c.Context(), actor, id); err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, "Đã xóa item danh mục", nil)
	})
}
