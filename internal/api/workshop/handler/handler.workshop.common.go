// Package shophdl xử lý các request HTTP của domain xưởng.
package shophdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
)

// paginationParams đọc page/limit từ query string, giá trị hỏng rơi về mặc định
func paginationParams(c fiber.Ctx) (page int64, limit int64) {
	page, _ = strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ = strconv.ParseInt(c.Query("limit", "50"), 10, 64)
	return page, limit
}
