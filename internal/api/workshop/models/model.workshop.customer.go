// Package shopmodels chứa các model nghiệp vụ của xưởng: khách hàng, xe,
// job sửa chữa, hóa đơn, lịch sử bảo dưỡng, bình luận.
package shopmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer đại diện cho một khách hàng của xưởng
type Customer struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Phone     string             `json:"phone" bson:"phone"` // Unique
	Email     string             `json:"email,omitempty" bson:"email,omitempty"`
	Address   string             `json:"address,omitempty" bson:"address,omitempty"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Lifecycle string             `json:"lifecycle" bson:"lifecycle"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
