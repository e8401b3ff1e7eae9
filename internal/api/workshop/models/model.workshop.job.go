package shopmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của job sửa chữa
const (
	JobStatusPending    = "PENDING"
	JobStatusInProgress = "IN_PROGRESS"
	JobStatusCompleted  = "COMPLETED"
	JobStatusDelivered  = "DELIVERED"
)

// ValidJobStatus kiểm tra status có hợp lệ không
func ValidJobStatus(status string) bool {
	switch status {
	case JobStatusPending, JobStatusInProgress, JobStatusCompleted, JobStatusDelivered:
		return true
	}
	return false
}

// Job đại diện cho một job sửa chữa trong xưởng
type Job struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerID         primitive.ObjectID `json:"customerId" bson:"customerId"`
	Vehicle            VehicleSnapshot    `json:"vehicle" bson:"vehicle"`
	Title              string             `json:"title" bson:"title"`
	Description        string             `json:"description,omitempty" bson:"description,omitempty"`
	Status             string             `json:"status" bson:"status"`
	Technician         string             `json:"technician,omitempty" bson:"technician,omitempty"`
	EstimatedTimeHours float64            `json:"estimatedTimeHours,omitempty" bson:"estimatedTimeHours,omitempty"`
	Amount             float64            `json:"amount,omitempty" bson:"amount,omitempty"`
	CreatedAt          int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt          int64              `json:"updatedAt" bson:"updatedAt"`
}
