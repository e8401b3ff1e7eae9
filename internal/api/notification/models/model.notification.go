// Package notifmodels chứa model thông báo nhắc bảo dưỡng.
package notifmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại thông báo
const (
	TypeServiceReminder = "service_reminder"
	TypeServiceOverdue  = "service_overdue"
	TypePaymentReminder = "payment_reminder"
	TypeGeneral         = "general"
)

// Mức ưu tiên
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Trạng thái gửi
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Notification là bản ghi dedup theo cặp (customerId, vehicleId): mỗi cặp có
// đúng một document, được upsert khi gửi. Các cờ emailSent/whatsappSent giữ
// trạng thái đã gửi qua từng kênh.
type Notification struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerID     primitive.ObjectID `json:"customerId" bson:"customerId"`
	VehicleID      primitive.ObjectID `json:"vehicleId" bson:"vehicleId"`
	Type           string             `json:"type" bson:"type"`
	Title          string             `json:"title,omitempty" bson:"title,omitempty"`
	Message        string             `json:"message,omitempty" bson:"message,omitempty"`
	EmailSent      bool               `json:"emailSent" bson:"emailSent"`
	EmailSentAt    int64              `json:"emailSentAt,omitempty" bson:"emailSentAt,omitempty"`
	WhatsappSent   bool               `json:"whatsappSent" bson:"whatsappSent"`
	WhatsappSentAt int64              `json:"whatsappSentAt,omitempty" bson:"whatsappSentAt,omitempty"`
	DueDate        int64              `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	Priority       string             `json:"priority,omitempty" bson:"priority,omitempty"`
	Status         string             `json:"status" bson:"status"`
	Error          string             `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
