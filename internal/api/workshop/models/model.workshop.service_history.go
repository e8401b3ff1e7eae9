package shopmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceHistory ghi lại một lần bảo dưỡng/sửa chữa đã hoàn thành của xe
type ServiceHistory struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID   primitive.ObjectID `json:"vehicleId" bson:"vehicleId"`
	JobID       primitive.ObjectID `json:"jobId,omitempty" bson:"jobId,omitempty"`
	CustomerID  primitive.ObjectID `json:"customerId" bson:"customerId"`
	ServiceDate int64              `json:"serviceDate" bson:"serviceDate"` // Mili giây
	Description string             `json:"description" bson:"description"`
	Cost        float64            `json:"cost" bson:"cost"`
	Technician  string             `json:"technician,omitempty" bson:"technician,omitempty"`
	Mileage     int64              `json:"mileage,omitempty" bson:"mileage,omitempty"`
	Notes       string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
