package shopmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái thanh toán của hóa đơn
const (
	InvoiceStatusPending   = "Pending"
	InvoiceStatusPaid      = "Paid"
	InvoiceStatusCancelled = "Cancelled"
)

// Phương thức thanh toán
const (
	PaymentMethodCash   = "Cash"
	PaymentMethodCard   = "Card/POS"
	PaymentMethodOnline = "Online Transfer"
	PaymentMethodCheque = "Cheque"
	PaymentMethodOther  = "Other"
)

// PaymentMethods liệt kê các phương thức thanh toán theo thứ tự hiển thị
var PaymentMethods = []string{
	PaymentMethodCash,
	PaymentMethodCard,
	PaymentMethodOnline,
	PaymentMethodCheque,
	PaymentMethodOther,
}

// ValidInvoiceStatus kiểm tra trạng thái hóa đơn có hợp lệ không
func ValidInvoiceStatus(status string) bool {
	switch status {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod kiểm tra phương thức thanh toán có hợp lệ không
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodOnline, PaymentMethodCheque, PaymentMethodOther:
		return true
	}
	return false
}

// InvoiceItem là một dòng trên hóa đơn
type InvoiceItem struct {
	Description string  `json:"description" bson:"description"`
	Quantity    float64 `json:"quantity" bson:"quantity"` // >= 1
	Price       float64 `json:"price" bson:"price"`       // >= 0
}

// Invoice đại diện cho một hóa đơn của xưởng
type Invoice struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerID    primitive.ObjectID `json:"customerId" bson:"customerId"`
	JobID         primitive.ObjectID `json:"jobId,omitempty" bson:"jobId,omitempty"`
	InvoiceNumber string             `json:"invoiceNumber" bson:"invoiceNumber"` // Unique sparse, dạng INV-000001
	Date          int64              `json:"date" bson:"date"`                   // Mili giây
	Vehicle       VehicleSnapshot    `json:"vehicle" bson:"vehicle"`
	Items         []InvoiceItem      `json:"items" bson:"items"`
	Subtotal      float64            `json:"subtotal" bson:"subtotal"`
	Tax           float64            `json:"tax,omitempty" bson:"tax,omitempty"`
	Discount      float64            `json:"discount,omitempty" bson:"discount,omitempty"`
	Amount        float64            `json:"amount" bson:"amount"` // subtotal + tax - discount
	Status        string             `json:"status" bson:"status"`
	PaymentMethod string             `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	Technician    string             `json:"technician,omitempty" bson:"technician,omitempty"`
	Supervisor    string             `json:"supervisor,omitempty" bson:"supervisor,omitempty"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Lifecycle     string             `json:"lifecycle" bson:"lifecycle"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
