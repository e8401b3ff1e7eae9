package shophdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "momentum_pos/internal/api/base/handler"
	shopdto "momentum_pos/internal/api/workshop/dto"
	shopsvc "momentum_pos/internal/api/workshop/service"
	"momentum_pos/internal/common"
)

// JobHandler xử lý các request CRUD job sửa chữa
type JobHandler struct {
	basehdl.BaseHandler
	jobService     *shopsvc.JobService
	commentService *shopsvc.CommentService
}

// NewJobHandler tạo instance mới của JobHandler
func NewJobHandler(base basehdl.BaseHandler, jobService *shopsvc.JobService, commentService *shopsvc.CommentService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService, commentService: commentService}
}

// HandleList trả về danh sách job
func (h *JobHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := paginationParams(c)
		result, err := h.jobService.List(c.Context(), c.Query("status"), c.Query("customerId"), c.Query("search"), page, limit)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, result)
	})
}

// HandleGetById trả về một job theo id
func (h *JobHandler) HandleGetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		job, err := h.jobService.FindOneById(c.Context(), id)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, job)
	})
}

// HandleCreate tạo job mới
func (h *JobHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input shopdto.JobCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		job, err := h.jobService.Create(c.Context(), &input)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleCreated(c, common.MsgCreated, job)
	})
}

// HandleUpdate cập nhật job
func (h *JobHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		var input shopdto.JobUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleError(c, err)
		}
		job, err := h.jobService.Update(c.Context(), id, &input)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, job)
	})
}

// HandleDelete xóa cứng job
func (h *JobHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		if err := h.jobService.Delete(c.Context(), id); err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, "Đã xóa job", nil)
	})
}

// HandleListComments trả về bình luận của một job
func (h *JobHandler) HandleListComments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			return h.HandleError(c, err)
		}
		comments, err := h.commentService.ListByJob(c.Context(), id)
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, comments)
	})
}
