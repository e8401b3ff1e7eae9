// Package catmodels chứa model danh mục phụ tùng và dịch vụ.
package catmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại item trong danh mục
const (
	ItemTypeService = "service"
	ItemTypeProduct = "product"
)

// Phạm vi hiển thị của item: default dùng chung toàn hệ thống, local thuộc về
// một tài khoản.
const (
	VisibilityDefault = "default"
	VisibilityLocal   = "local"
)

// ValidItemType kiểm tra loại item có hợp lệ không
func ValidItemType(itemType string) bool {
	return itemType == ItemTypeService || itemType == ItemTypeProduct
}

// Loại sub-option của item dịch vụ
const (
	SubOptionTypeText        = "text"
	SubOptionTypeSelect      = "select"
	SubOptionTypeMultiselect = "multiselect"
)

// SubOption là một tùy chọn con của item dịch vụ (ví dụ loại dầu, cấp bảo dưỡng)
type SubOption struct {
	Key     string   `json:"key" bson:"key"`
	Label   string   `json:"label" bson:"label"`
	Type    string   `json:"type" bson:"type"` // text | select | multiselect
	Options []string `json:"options,omitempty" bson:"options,omitempty"`
}

// CatalogItem đại diện cho một phụ tùng hoặc dịch vụ trong danh mục.
// Bất biến: visibility=default thì accountId rỗng; visibility=local thì
// accountId là người tạo.
type CatalogItem struct {
	ID                     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                   string             `json:"name" bson:"name"`
	Type                   string             `json:"type" bson:"type"` // service | product
	Description            string             `json:"description,omitempty" bson:"description,omitempty"`
	Cost                   float64            `json:"cost" bson:"cost"`
	BasePrice              float64            `json:"basePrice,omitempty" bson:"basePrice,omitempty"`
	DefaultDurationMinutes int                `json:"defaultDurationMinutes,omitempty" bson:"defaultDurationMinutes,omitempty"`
	EstimatedTime          string             `json:"estimatedTime,omitempty" bson:"estimatedTime,omitempty"`
	SubOptions             []SubOption        `json:"subOptions,omitempty" bson:"subOptions,omitempty"`
	AllowComments          bool               `json:"allowComments,omitempty" bson:"allowComments,omitempty"`
	AllowedParts           []string           `json:"allowedParts,omitempty" bson:"allowedParts,omitempty"`
	Quantity               int64              `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Unit                   string             `json:"unit,omitempty" bson:"unit,omitempty"`
	Visibility             string             `json:"visibility" bson:"visibility"` // default | local
	AccountID              primitive.ObjectID `json:"accountId,omitempty" bson:"accountId,omitempty"`
	Lifecycle              string             `json:"lifecycle" bson:"lifecycle"`
	CreatedAt              int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt              int64              `json:"updatedAt" bson:"updatedAt"`
}
