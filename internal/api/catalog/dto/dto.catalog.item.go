// Package catdto chứa các cấu trúc input cho domain danh mục.
package catdto

import (
	catmodels "momentum_pos/internal/api/catalog/models"
)

// CatalogItemCreateInput dữ liệu tạo item danh mục
type CatalogItemCreateInput struct {
	Name                   string                `json:"name" validate:"required"`
	Type                   string                `json:"type" validate:"required"`
	Description            string                `json:"description"`
	Cost                   *float64              `json:"cost" validate:"required"`
	BasePrice              float64               `json:"basePrice"`
	DefaultDurationMinutes int                   `json:"defaultDurationMinutes"`
	EstimatedTime          string                `json:"estimatedTime"`
	SubOptions             []catmodels.SubOption `json:"subOptions"`
	AllowComments          bool                  `json:"allowComments"`
	AllowedParts           []string              `json:"allowedParts"`
	Quantity               int64                 `json:"quantity"`
	Unit                   string                `json:"unit"`
	Visibility             string                `json:"visibility"` // Rỗng = local; default chỉ Admin
}

// CatalogItemUpdateInput dữ liệu cập nhật item danh mục (partial)
type CatalogItemUpdateInput struct {
	Name                   *string               `json:"name"`
	Description            *string               `json:"description"`
	Cost                   *float64              `json:"cost"`
	BasePrice              *float64              `json:"basePrice"`
	DefaultDurationMinutes *int                  `json:"defaultDurationMinutes"`
	EstimatedTime          *string               `json:"estimatedTime"`
	SubOptions             []catmodels.SubOption `json:"subOptions"`
	AllowComments          *bool                 `json:"allowComments"`
	AllowedParts           []string              `json:"allowedParts"`
	Quantity               *int64                `json:"quantity"`
	Unit                   *string               `json:"unit"`
}
