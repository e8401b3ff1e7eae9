// Package shopdto chứa các cấu trúc input cho domain xưởng.
// Các trường update dùng con trỏ để phân biệt "không gửi" với "gửi giá trị zero"
// (partial merge chỉ áp dụng các trường được gửi).
package shopdto

import (
	shopmodels "momentum_pos/internal/api/workshop/models"
)

// CustomerCreateInput dữ liệu tạo khách hàng
type CustomerCreateInput struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// CustomerUpdateInput dữ liệu cập nhật khách hàng (partial)
type CustomerUpdateInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// VehicleCreateInput dữ liệu tạo xe
type VehicleCreateInput struct {
	CustomerID  string `json:"customerId" validate:"required"`
	Make        string `json:"make" validate:"required"`
	Model       string `json:"model" validate:"required"`
	Year        int    `json:"year" validate:"required"`
	PlateNo     string `json:"plateNo" validate:"required"`
	Mileage     int64  `json:"mileage"`
	LastService int64  `json:"lastService"`
	NextService int64  `json:"nextService"`
	OilType     string `json:"oilType"`
	Status      string `json:"status"`
}

// VehicleUpdateInput dữ liệu cập nhật xe (partial)
type VehicleUpdateInput struct {
	Make        *string `json:"make"`
	Model       *string `json:"model"`
	Year        *int    `json:"year"`
	PlateNo     *string `json:"plateNo"`
	Mileage     *int64  `json:"mileage"`
	LastService *int64  `json:"lastService"`
	NextService *int64  `json:"nextService"`
	OilType     *string `json:"oilType"`
	Status      *string `json:"status"`
}

// JobCreateInput dữ liệu tạo job sửa chữa
type JobCreateInput struct {
	CustomerID         string                      `json:"customerId" validate:"required"`
	VehicleID          string                      `json:"vehicleId"` // Có thì snapshot lấy từ xe
	Vehicle            *shopmodels.VehicleSnapshot `json:"vehicle"`   // Không có vehicleId thì snapshot gửi trực tiếp
	Title              string                      `json:"title" validate:"required"`
	Description        string                      `json:"description"`
	Status             string                      `json:"status"`
	Technician         string                      `json:"technician"`
	EstimatedTimeHours float64                     `json:"estimatedTimeHours"`
	Amount             float64                     `json:"amount"`
}

// JobUpdateInput dữ liệu cập nhật job (partial)
type JobUpdateInput struct {
	Title              *string  `json:"title"`
	Description        *string  `json:"description"`
	Status             *string  `json:"status"`
	Technician         *string  `json:"technician"`
	EstimatedTimeHours *float64 `json:"estimatedTimeHours"`
	Amount             *float64 `json:"amount"`
}

// InvoiceCreateInput dữ liệu tạo hóa đơn
type InvoiceCreateInput struct {
	CustomerID    string                      `json:"customerId" validate:"required"`
	JobID         string                      `json:"jobId"`
	Date          int64                       `json:"date"`
	VehicleID     string                      `json:"vehicleId"`
	Vehicle       *shopmodels.VehicleSnapshot `json:"vehicle"`
	Items         []shopmodels.InvoiceItem    `json:"items" validate:"required,min=1,dive"`
	Subtotal      *float64                    `json:"subtotal"`
	Tax           float64                     `json:"tax"`
	Discount      float64                     `json:"discount"`
	Amount        *float64                    `json:"amount"`
	Status        string                      `json:"status"`
	PaymentMethod string                      `json:"paymentMethod"`
	Technician    string                      `json:"technician"`
	Supervisor    string                      `json:"supervisor"`
	Notes         string                      `json:"notes"`
}

// InvoiceUpdateInput dữ liệu cập nhật hóa đơn (partial).
// Gửi items mới thì subtotal/amount được tính lại.
type InvoiceUpdateInput struct {
	Items         []shopmodels.InvoiceItem `json:"items" validate:"omitempty,min=1,dive"`
	Tax           *float64                 `json:"tax"`
	Discount      *float64                 `json:"discount"`
	Status        *string                  `json:"status"`
	PaymentMethod *string                  `json:"paymentMethod"`
	Technician    *string                  `json:"technician"`
	Supervisor    *string                  `json:"supervisor"`
	Notes         *string                  `json:"notes"`
	Date          *int64                   `json:"date"`
}

// ServiceHistoryCreateInput dữ liệu ghi lịch sử bảo dưỡng
type ServiceHistoryCreateInput struct {
	VehicleID   string  `json:"vehicleId" validate:"required"`
	JobID       string  `json:"jobId"`
	CustomerID  string  `json:"customerId" validate:"required"`
	ServiceDate int64   `json:"serviceDate" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Cost        float64 `json:"cost"`
	Technician  string  `json:"technician"`
	Mileage     int64   `json:"mileage"`
	Notes       string  `json:"notes"`
}

// CommentCreateInput dữ liệu tạo bình luận trên job
type CommentCreateInput struct {
	JobID          string                         `json:"jobId" validate:"required"`
	Author         string                         `json:"author" validate:"required"`
	AuthorInitials string                         `json:"authorInitials"`
	Role           string                         `json:"role"`
	Text           string                         `json:"text" validate:"required"`
	Attachments    []shopmodels.CommentAttachment `json:"attachments"`
}
