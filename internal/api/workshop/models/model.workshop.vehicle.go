package shopmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái vận hành của xe
const (
	VehicleStatusActive   = "Active"
	VehicleStatusDue      = "Due"
	VehicleStatusInactive = "Inactive"
)

// Vehicle đại diện cho một xe của khách hàng
type Vehicle struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerID  primitive.ObjectID `json:"customerId" bson:"customerId"`
	Make        string             `json:"make" bson:"make"`
	Model       string             `json:"model" bson:"model"`
	Year        int                `json:"year" bson:"year"`
	PlateNo     string             `json:"plateNo" bson:"plateNo"` // Unique
	Mileage     int64              `json:"mileage,omitempty" bson:"mileage,omitempty"`
	LastService int64              `json:"lastService,omitempty" bson:"lastService,omitempty"` // Mili giây
	NextService int64              `json:"nextService,omitempty" bson:"nextService,omitempty"` // Mili giây
	OilType     string             `json:"oilType,omitempty" bson:"oilType,omitempty"`
	Status      string             `json:"status" bson:"status"`
	Lifecycle   string             `json:"lifecycle" bson:"lifecycle"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// VehicleSnapshot là bản chụp thông tin xe tại thời điểm tạo job/hóa đơn.
// Snapshot giữ nguyên khi xe bị sửa đổi hoặc xóa sau này.
type VehicleSnapshot struct {
	Make    string `json:"make" bson:"make"`
	Model   string `json:"model" bson:"model"`
	Year    int    `json:"year" bson:"year"`
	PlateNo string `json:"plateNo" bson:"plateNo"`
}
