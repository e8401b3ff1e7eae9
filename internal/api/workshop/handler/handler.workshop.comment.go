package shophdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "momentum_pos/internal/api/base/handler"
	shopdto "momentum_pos/internal/api/workshop/dto"
	shopsvc "momentum_pos/internal/api/workshop/service"
	"momentum_pos/internal/common"
)

// CommentHandler xử lý các request bình luận trên job
type CommentHandler struct {
	basehdl.BaseHandler
	commentService *shopsvc.CommentService
}

// NewCommentHandler tạo instance mới của CommentHandler
func NewCommentHandler(base basehdl.BaseHandler, commentService *shopsvc.CommentService) *CommentHandler {
	return &CommentHandler{BaseHandler: base, commentService: commentService}
}

// HandleCreate tạo bình luận mới
func (h *CommentHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input shopdto.CommentCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		comment, err := h.commentService.Create(c.Context(), &input)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleCreated(c, common.MsgCreated, comment)
	})
}

// HandleDelete xóa mềm bình luận
func (h *CommentHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		if err := h.commentService.Delete(c.Context(), id); err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, "Đã xóa bình luận", nil)
	})
}
