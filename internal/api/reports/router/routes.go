// Package router đăng ký các route thuộc domain báo cáo.
package router

import (
	"github.com/gofiber/fiber/v3"

	authsvc "momentum_pos/internal/api/auth/service"
	"momentum_pos/internal/api/authz"
	basehdl "momentum_pos/internal/api/base/handler"
	"momentum_pos/internal/api/middleware"
	reporthdl "momentum_pos/internal/api/reports/handler"
	reportsvc "momentum_pos/internal/api/reports/service"
	"momentum_pos/internal/app"
)

// Register đăng ký các route /reports và /dashboard lên group api
func Register(api fiber.Router, a *app.App, base basehdl.BaseHandler, tokens *authsvc.TokenService) {
	reportsService := reportsvc.NewReportsService(a)
	h := reporthdl.NewReportsHandler(base, reportsService)

	requireAuth := middleware.RequireAuth(tokens)
	canRead := middleware.RequirePermission(authz.ResourceReports, authz.ActionRead)

	reports := api.Group("/reports")
	reports.Use(requireAuth)
	reports.Get("/financial-overview", h.HandleFinancialOverview, canRead)
	reports.Get("/revenue-trend", h.HandleRevenueTrend, canRead)
	reports.Get("/payment-methods", h.HandlePaymentMethods, canRead)
	reports.Get("/popular-services", h.HandlePopularServices, canRead)
	reports.Get("/daily-performance", h.HandleDailyPerformance, canRead)

	dashboard := api.Group("/dashboard")
	dashboard.Use(requireAuth)
	dashboard.Get("/summary", h.HandleDashboardSummary, canRead)
}
