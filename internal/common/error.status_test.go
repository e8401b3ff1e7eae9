package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

// Test lỗi trùng unique key (code 11000) được chuyển thành ErrDuplicate 400.
// Đây là đường đi khi tạo khách hàng với số điện thoại đã dùng hoặc xe với
// biển số đã có: unique index chặn, WriteException được map về 400.
func TestConvertMongoError_TrungUniqueKey(t *testing.T) {
	writeErr := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{
				Code:    11000,
				Message: "E11000 duplicate key error collection: momentum.customers index: idx_customers_phone dup key: { phone: \"03001234567\" }",
			},
		},
	}

	err := ConvertMongoError(writeErr)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("ConvertMongoError(11000) = %v, muốn ErrDuplicate", err)
	}

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatalf("Lỗi phải là *Error, nhận %T", err)
	}
	if appErr.StatusCode != StatusBadRequest {
		t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, StatusBadRequest)
	}
}

// Test các nhánh chuyển đổi còn lại của ConvertMongoError
func TestConvertMongoError(t *testing.T) {
	if ConvertMongoError(nil) != nil {
		t.Error("Lỗi nil phải giữ nguyên nil")
	}

	if err := ConvertMongoError(mongo.ErrNoDocuments); !errors.Is(err, ErrNotFound) {
		t.Errorf("ErrNoDocuments phải chuyển thành ErrNotFound, nhận %v", err)
	}

	// Lỗi đã phân loại không được convert lần nữa
	if err := ConvertMongoError(ErrForbidden); !errors.Is(err, ErrForbidden) {
		t.Errorf("Lỗi đã phân loại phải giữ nguyên, nhận %v", err)
	}

	// Lỗi không nhận dạng được rơi về lỗi truy vấn chung 500
	err := ConvertMongoError(fmt.Errorf("socket was unexpectedly closed"))
	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatalf("Lỗi phải là *Error, nhận %T", err)
	}
	if appErr.StatusCode != StatusInternalServerError {
		t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, StatusInternalServerError)
	}
}
