// Package database - tạo index cho các collection khi khởi động.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexSpec mô tả một index cần tạo cho collection
type IndexSpec struct {
	Keys   bson.D // Các field của index theo thứ tự
	Name   string // Tên index
	Unique bool
	Sparse bool
}

// CreateIndexes tạo danh sách index cho một collection, bỏ qua lỗi "đã tồn tại".
func CreateIndexes(ctx context.Context, col *mongo.Collection, specs []IndexSpec) error {
	for _, spec := range specs {
		opts := options.Index().SetName(spec.Name)
		if spec.Unique {
			opts.SetUnique(true)
		}
		if spec.Sparse {
			opts.SetSparse(true)
		}
		if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    spec.Keys,
			Options: opts,
		}); err != nil && !isIndexExistsError(err) {
			return err
		}
	}
	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
