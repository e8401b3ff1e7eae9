package basehdl

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"momentum_pos/internal/common"
	"momentum_pos/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// BaseHandler chứa các tiện ích dùng chung cho mọi handler domain.
// DevMode bật thì error response kèm details để debug.
type BaseHandler struct {
	Validate *validator.Validate
	DevMode  bool
}

// NewBaseHandler tạo BaseHandler với validator đã cấu hình
func NewBaseHandler(validate *validator.Validate, devMode bool) BaseHandler {
	return BaseHandler{Validate: validate, DevMode: devMode}
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()
			logger.WithRequest(c).WithField("panic", r).Error("Panic recovered trong handler")

			h.HandleError(c, common.NewError(
				common.ErrCodeInternalServer,
				common.MsgInternalError,
				common.StatusInternalServerError,
				fmt.Sprintf("%v", r),
			))
		}
	}()
	return handler()
}

// HandleSuccess trả về response thành công với format thống nhất
// {success: true, message, data}
func (h *BaseHandler) HandleSuccess(c fiber.Ctx, message string, data interface{}) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// HandleCreated trả về response 201 cho thao tác tạo mới
func (h *BaseHandler) HandleCreated(c fiber.Ctx, message string, data interface{}) error {
	return JSONResponse(c, common.StatusCreated, fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// HandleDeliveryResult trả về kết quả gửi qua kênh ngoài (email/WhatsApp).
// Luôn là HTTP 200 - thất bại của kênh ngoài KHÔNG phải lỗi 5xx của server,
// client đọc trường success để biết kết quả.
func (h *BaseHandler) HandleDeliveryResult(c fiber.Ctx, success bool, message string, data interface{}) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"success": success,
		"message": message,
		"data":    data,
	})
}

// HandleError xử lý và chuẩn hóa error response trả về cho client
// {success: false, error}
func (h *BaseHandler) HandleError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		body := fiber.Map{
			"success": false,
			"error":   customErr.Message,
		}
		if h.DevMode && customErr.Details != nil {
			body["details"] = customErr.Details
		}
		return JSONResponse(c, customErr.StatusCode, body)
	}

	// Lỗi chưa phân loại - trả về 500 với message chung, không lộ chi tiết
	logger.WithRequest(c).WithError(err).Error("Unhandled error")
	body := fiber.Map{
		"success": false,
		"error":   common.MsgInternalError,
	}
	if h.DevMode {
		body["details"] = err.Error()
	}
	return JSONResponse(c, common.StatusInternalServerError, body)
}

// ParseRequestBody parse và validate request body vào struct đích
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, out interface{}) error {
	if err := json.Unmarshal(c.Body(), out); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, "Body không phải JSON hợp lệ", common.StatusBadRequest, err.Error())
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(out); err != nil {
			return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
		}
	}
	return nil
}

// ParseObjectID parse một ObjectID từ path param, trả về 400 nếu malformed
func ParseObjectID(c fiber.Ctx, param string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(param))
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidID
	}
	return id, nil
}
