// Package reporthdl xử lý các request HTTP của domain báo cáo.
package reporthdl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "momentum_pos/internal/api/base/handler"
	reportsvc "momentum_pos/internal/api/reports/service"
	"momentum_pos/internal/common"
)

// ReportsHandler xử lý các request báo cáo và dashboard
type ReportsHandler struct {
	basehdl.BaseHandler
	reportsService *reportsvc.ReportsService
}

// NewReportsHandler tạo instance mới của ReportsHandler
func NewReportsHandler(base basehdl.BaseHandler, reportsService *reportsvc.ReportsService) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, reportsService: reportsService}
}

// HandleFinancialOverview trả về số liệu tài chính tổng hợp theo kỳ
func (h *ReportsHandler) HandleFinancialOverview(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		overview, err := h.reportsService.FinancialOverview(c.Context(), c.Query("period"), time.Now())
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, overview)
	})
}

// HandleRevenueTrend trả về doanh thu theo tháng
func (h *ReportsHandler) HandleRevenueTrend(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		months, _ := strconv.Atoi(c.Query("months", "6"))
		trend, err := h.reportsService.RevenueTrend(c.Context(), months, time.Now())
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, trend)
	})
}

// HandlePaymentMethods trả về tỷ trọng các phương thức thanh toán
func (h *ReportsHandler) HandlePaymentMethods(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		rows, err := h.reportsService.PaymentMethods(c.Context(), c.Query("period"), time.Now())
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, rows)
	})
}

// HandlePopularServices trả về các dịch vụ được làm nhiều nhất
func (h *ReportsHandler) HandlePopularServices(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		rows, err := h.reportsService.PopularServices(c.Context(), c.Query("period"), time.Now())
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, rows)
	})
}

// HandleDailyPerformance trả về hiệu suất từng ngày
func (h *ReportsHandler) HandleDailyPerformance(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		days, _ := strconv.Atoi(c.Query("days", "7"))
		rows, err := h.reportsService.DailyPerformance(c.Context(), days, time.Now())
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, rows)
	})
}

// HandleDashboardSummary trả về số liệu tổng quan cho màn hình chính
func (h *ReportsHandler) HandleDashboardSummary(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		summary, err := h.reportsService.DashboardSummary(c.Context(), time.Now())
		if err != nil {
			return h.HandleError(c, err)
		}
		return h.HandleSuccess(c, common.MsgSuccess, summary)
	})
}
