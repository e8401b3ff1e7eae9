package shopsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	basesvc "momentum_pos/internal/api/base/service"
	shopdto "momentum_pos/internal/api/workshop/dto"
	shopmodels "momentum_pos/internal/api/workshop/models"
	"momentum_pos/internal/common"
	"momentum_pos/internal/realtime"
)

// khachHangRong giả lập collection khách hàng không có bản ghi nào khớp
func khachHangRong(mt *mtest.T) {
	mt.AddMockResponses(mtest.CreateCursorResponse(0, "momentum_test.customers", mtest.FirstBatch))
}

func testDatabase(mt *mtest.T) *mongo.Database {
	return mt.Client.Database("momentum_test")
}

// Test tạo job với customerId đúng định dạng nhưng không tồn tại phải trả 404,
// không được ghi job
func TestJobService_TaoJobKhachHangKhongTonTai(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("khách hàng không tồn tại", func(mt *mtest.T) {
		db := testDatabase(mt)
		hub := realtime.NewHub()
		defer hub.Close()

		s := &JobService{
			BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.Job](db.Collection("jobs")),
			customers:            basesvc.NewBaseServiceMongo[shopmodels.Customer](db.Collection("customers")),
			vehicles: &VehicleService{
				BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.Vehicle](db.Collection("vehicles")),
				customers:            basesvc.NewBaseServiceMongo[shopmodels.Customer](db.Collection("customers")),
			},
			hub: hub,
		}

		khachHangRong(mt)

		_, err := s.Create(context.Background(), &shopdto.JobCreateInput{
			CustomerID: primitive.NewObjectID().Hex(),
			Title:      "Thay nhớt động cơ",
			Vehicle:    &shopmodels.VehicleSnapshot{Make: "Toyota", Model: "Corolla", Year: 2020, PlateNo: "ABC-123"},
		})
		require.Error(mt, err)

		var appErr *common.Error
		require.True(mt, errors.As(err, &appErr), "lỗi phải là *common.Error, nhận %T", err)
		assert.Equal(mt, common.StatusNotFound, appErr.StatusCode)
	})
}

// Test tạo hóa đơn với customerId không tồn tại phải trả 404 trước khi ghi
func TestInvoiceService_TaoHoaDonKhachHangKhongTonTai(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("khách hàng không tồn tại", func(mt *mtest.T) {
		db := testDatabase(mt)
		hub := realtime.NewHub()
		defer hub.Close()

		s := &InvoiceService{
			BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.Invoice](db.Collection("invoices")),
			customers:            basesvc.NewBaseServiceMongo[shopmodels.Customer](db.Collection("customers")),
			vehicles: &VehicleService{
				BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.Vehicle](db.Collection("vehicles")),
				customers:            basesvc.NewBaseServiceMongo[shopmodels.Customer](db.Collection("customers")),
			},
			hub: hub,
		}

		khachHangRong(mt)

		_, err := s.Create(context.Background(), &shopdto.InvoiceCreateInput{
			CustomerID: primitive.NewObjectID().Hex(),
			Items: []shopmodels.InvoiceItem{
				{Description: "Thay nhớt", Quantity: 1, Price: 1500},
			},
		})
		require.Error(mt, err)

		var appErr *common.Error
		require.True(mt, errors.As(err, &appErr), "lỗi phải là *common.Error, nhận %T", err)
		assert.Equal(mt, common.StatusNotFound, appErr.StatusCode)
	})
}
