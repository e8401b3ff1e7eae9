// Package shopsvc chứa nghiệp vụ của xưởng: khách hàng, xe, job, hóa đơn,
// lịch sử bảo dưỡng, bình luận.
package shopsvc

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"momentum_pos/internal/api/authz"
	basemodels "momentum_pos/internal/api/base/models"
	basesvc "momentum_pos/internal/api/base/service"
	shopdto "momentum_pos/internal/api/workshop/dto"
	shopmodels "momentum_pos/internal/api/workshop/models"
	"momentum_pos/internal/app"
	"momentum_pos/internal/common"
	"momentum_pos/internal/realtime"
)

// CustomerService chứa nghiệp vụ khách hàng
type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[shopmodels.Customer]
	vehicles *basesvc.BaseServiceMongoImpl[shopmodels.Vehicle]
	hub      *realtime.Hub
}

// NewCustomerService tạo mới CustomerService từ App container
func NewCustomerService(a *app.App) *CustomerService {
	return &CustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.Customer](a.Col(app.MongoColNames.Customers)),
		vehicles:             basesvc.NewBaseServiceMongo[shopmodels.Vehicle](a.Col(app.MongoColNames.Vehicles)),
		hub:                  a.Hub,
	}
}

// requireCustomer báo 404 khi id khách hàng không trỏ tới bản ghi nào.
// Các service tạo bản ghi tham chiếu khách hàng (xe, job, hóa đơn) đều gọi
// hàm này trước khi ghi.
func requireCustomer(ctx context.Context, customers *basesvc.BaseServiceMongoImpl[shopmodels.Customer], id primitive.ObjectID) error {
	if _, err := customers.FindOneById(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy khách hàng", common.StatusNotFound, nil)
		}
		return err
	}
	return nil
}

// List trả về danh sách khách hàng active, tìm kiếm regex trên name/phone/email
func (s *CustomerService) List(ctx context.Context, search string, page int64, limit int64) (*basemodels.PaginateResult[shopmodels.Customer], error) {
	filter := bson.M{"lifecycle": basemodels.LifecycleActive}
	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"name": regex},
			{"phone": regex},
			{"email": regex},
		}
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// Create tạo khách hàng mới. Trùng số điện thoại bị unique index chặn (400).
func (s *CustomerService) Create(ctx context.Context, input *shopdto.CustomerCreateInput) (*shopmodels.Customer, error) {
	customer := shopmodels.Customer{
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		Notes:     input.Notes,
		Lifecycle: basemodels.LifecycleActive,
	}

	created, err := s.InsertOne(ctx, customer)
	if err != nil {
		return nil, err
	}

	s.hub.Broadcast(realtime.Event{Event: "customerUpdated", Type: "created", Data: created})
	return &created, nil
}

// Update cập nhật các trường được gửi của khách hàng
func (s *CustomerService) Update(ctx context.Context, id primitive.ObjectID, input *shopdto.CustomerUpdateInput) (*shopmodels.Customer, error) {
	set := map[string]interface{}{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Address != nil {
		set["address"] = *input.Address
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}

	s.hub.Broadcast(realtime.Event{Event: "customerUpdated", Type: "updated", Data: updated})
	return &updated, nil
}

// Delete xóa mềm khách hàng (lifecycle = deactivated).
// Khi caller là Admin, toàn bộ xe của khách hàng cũng bị xóa mềm theo.
func (s *CustomerService) Delete(ctx context.Context, id primitive.ObjectID, actorRole string) error {
	customer, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"lifecycle": basemodels.LifecycleDeactivated},
	})
	if err != nil {
		return err
	}

	if actorRole == authz.RoleAdmin {
		filter := bson.M{"customerId": id, "lifecycle": basemodels.LifecycleActive}
		vehicles, err := s.vehicles.Find(ctx, filter, nil)
		if err != nil {
			return err
		}
		for _, v := range vehicles {
			if _, err := s.vehicles.UpdateById(ctx, v.ID, &basesvc.UpdateData{
				Set: map[string]interface{}{"lifecycle": basemodels.LifecycleDeactivated},
			}); err != nil {
				logrus.WithError(err).WithField("vehicle_id", v.ID.Hex()).Error("Delete customer: Không xóa mềm được xe")
			}
		}
		logrus.WithFields(logrus.Fields{"customer_id": id.Hex(), "vehicles": len(vehicles)}).Info("Delete customer: Đã xóa mềm khách hàng và các xe")
	}

	s.hub.Broadcast(realtime.Event{Event: "customerUpdated", Type: "deleted", Data: customer})
	return nil
}
