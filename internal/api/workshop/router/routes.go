// Package router đăng ký các route thuộc domain xưởng.
package router

import (
	"github.com/gofiber/fiber/v3"

	authsvc "momentum_pos/internal/api/auth/service"
	"momentum_pos/internal/api/authz"
	basehdl "momentum_pos/internal/api/base/handler"
	"momentum_pos/internal/api/middleware"
	shophdl "momentum_pos/internal/api/workshop/handler"
	shopsvc "momentum_pos/internal/api/workshop/service"
	"momentum_pos/internal/app"
)

// Register đăng ký các route /customers, /vehicles, /jobs, /invoices,
// /service-history, /comments lên group api. Mọi route đều yêu cầu xác thực,
// quyền ghi/xóa kiểm tra theo bảng phân quyền.
func Register(api fiber.Router, a *app.App, base basehdl.BaseHandler, tokens *authsvc.TokenService) {
	customerService := shopsvc.NewCustomerService(a)
	vehicleService := shopsvc.NewVehicleService(a)
	jobService := shopsvc.NewJobService(a, vehicleService)
	invoiceService := shopsvc.NewInvoiceService(a, vehicleService)
	historyService := shopsvc.NewServiceHistoryService(a)
	commentService := shopsvc.NewCommentService(a)

	customerHandler := shophdl.NewCustomerHandler(base, customerService)
	vehicleHandler := shophdl.NewVehicleHandler(base, vehicleService)
	jobHandler := shophdl.NewJobHandler(base, jobService, commentService)
	invoiceHandler := shophdl.NewInvoiceHandler(base, invoiceService)
	historyHandler := shophdl.NewServiceHistoryHandler(base, historyService)
	commentHandler := shophdl.NewCommentHandler(base, commentService)

	requireAuth := middleware.RequireAuth(tokens)
	can := middleware.RequirePermission

	customers := api.Group("/customers")
	customers.Use(requireAuth)
	customers.Get("/", customerHandler.HandleList, can(authz.ResourceCustomers, authz.ActionRead))
	customers.Get("/:id", customerHandler.HandleGetById, can(authz.ResourceCustomers, authz.ActionRead))
	customers.Post("/", customerHandler.HandleCreate, can(authz.ResourceCustomers, authz.ActionCreate))
	customers.Put("/:id", customerHandler.HandleUpdate, can(authz.ResourceCustomers, authz.ActionUpdate))
	customers.Delete("/:id", customerHandler.HandleDelete, can(authz.ResourceCustomers, authz.ActionDelete))

	vehicles := api.Group("/vehicles")
	vehicles.Use(requireAuth)
	vehicles.Get("/", vehicleHandler.HandleList, can(authz.ResourceVehicles, authz.ActionRead))
	vehicles.Get("/:id", vehicleHandler.HandleGetById, can(authz.ResourceVehicles, authz.ActionRead))
	vehicles.Post("/", vehicleHandler.HandleCreate, can(authz.ResourceVehicles, authz.ActionCreate))
	vehicles.Put("/:id", vehicleHandler.HandleUpdate, can(authz.ResourceVehicles, authz.ActionUpdate))
	vehicles.Delete("/:id", vehicleHandler.HandleDelete, can(authz.ResourceVehicles, authz.ActionDelete))

	jobs := api.Group("/jobs")
	jobs.Use(requireAuth)
	jobs.Get("/", jobHandler.HandleList, can(authz.ResourceJobs, authz.ActionRead))
	jobs.Get("/:id", jobHandler.HandleGetById, can(authz.ResourceJobs, authz.ActionRead))
	jobs.Get("/:id/comments", jobHandler.HandleListComments, can(authz.ResourceComments, authz.ActionRead))
	jobs.Post("/", jobHandler.HandleCreate, can(authz.ResourceJobs, authz.ActionCreate))
	jobs.Put("/:id", jobHandler.HandleUpdate, can(authz.ResourceJobs, authz.ActionUpdate))
	jobs.Delete("/:id", jobHandler.HandleDelete, can(authz.ResourceJobs, authz.ActionDelete))

	invoices := api.Group("/invoices")
	invoices.Use(requireAuth)
	invoices.Get("/", invoiceHandler.HandleList, can(authz.ResourceInvoices, authz.ActionRead))
	invoices.Get("/:id", invoiceHandler.HandleGetById, can(authz.ResourceInvoices, authz.ActionRead))
	invoices.Post("/", invoiceHandler.HandleCreate, can(authz.ResourceInvoices, authz.ActionCreate))
	invoices.Put("/:id", invoiceHandler.HandleUpdate, can(authz.ResourceInvoices, authz.ActionUpdate))
	invoices.Delete("/:id", invoiceHandler.HandleDelete, can(authz.ResourceInvoices, authz.ActionDelete))

	history := api.Group("/service-history")
	history.Use(requireAuth)
	history.Get("/", historyHandler.HandleList, can(authz.ResourceServiceHistory, authz.ActionRead))
	history.Get("/:id", historyHandler.HandleGetById, can(authz.ResourceServiceHistory, authz.ActionRead))
	history.Post("/", historyHandler.HandleCreate, can(authz.ResourceServiceHistory, authz.ActionCreate))

	comments := api.Group("/comments")
	comments.Use(requireAuth)
	comments.Post("/", commentHandler.HandleCreate, can(authz.ResourceComments, authz.ActionCreate))
	comments.Delete("/:id", commentHandler.HandleDelete, can(authz.ResourceComments, authz.ActionDelete))
}
