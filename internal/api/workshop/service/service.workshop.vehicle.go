package shopsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "momentum_pos/internal/api/base/models"
	basesvc "momentum_pos/internal/api/base/service"
	shopdto "momentum_pos/internal/api/workshop/dto"
	shopmodels "momentum_pos/internal/api/workshop/models"
	"momentum_pos/internal/app"
	"momentum_pos/internal/common"
)

// VehicleService chứa nghiệp vụ xe của khách hàng
type VehicleService struct {
	*basesvc.BaseServiceMongoImpl[shopmodels.Vehicle]
	customers *basesvc.BaseServiceMongoImpl[shopmodels.Customer]
}

// NewVehicleService tạo mới VehicleService từ App container
func NewVehicleService(a *app.App) *VehicleService {
	return &VehicleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.Vehicle](a.Col(app.MongoColNames.Vehicles)),
		customers:            basesvc.NewBaseServiceMongo[shopmodels.Customer](a.Col(app.MongoColNames.Customers)),
	}
}

// List trả về danh sách xe active, lọc theo customerId/status và tìm kiếm regex
func (s *VehicleService) List(ctx context.Context, customerID string, status string, search string, page int64, limit int64) (*basemodels.PaginateResult[shopmodels.Vehicle], error) {
	filter := bson.M{"lifecycle": basemodels.LifecycleActive}
	if customerID != "" {
		id, err := primitive.ObjectIDFromHex(customerID)
		if err != nil {
			return nil, common.ErrInvalidID
		}
		filter["customerId"] = id
	}
	if status != "" {
		filter["status"] = status
	}
	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"plateNo": regex},
			{"make": regex},
			{"model": regex},
		}
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// Create tạo xe mới. Khách hàng phải tồn tại, biển số bị unique index chặn trùng.
func (s *VehicleService) Create(ctx context.Context, input *shopdto.VehicleCreateInput) (*shopmodels.Vehicle, error) {
	customerID, err := primitive.ObjectIDFromHex(input.CustomerID)
	if err != nil {
		return nil, common.ErrInvalidID
	}

	if err := requireCustomer(ctx, s.customers, customerID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = shopmodels.VehicleStatusActive
	}

	vehicle := shopmodels.Vehicle{
		CustomerID:  customerID,
		Make:        input.Make,
		Model:       input.Model,
		Year:        input.Year,
		PlateNo:     input.PlateNo,
		Mileage:     input.Mileage,
		LastService: input.LastService,
		NextService: input.NextService,
		OilType:     input.OilType,
		Status:      status,
		Lifecycle:   basemodels.LifecycleActive,
	}

	created, err := s.InsertOne(ctx, vehicle)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update cập nhật các trường được gửi của xe
func (s *VehicleService) Update(ctx context.Context, id primitive.ObjectID, input *shopdto.VehicleUpdateInput) (*shopmodels.Vehicle, error) {
	set := map[string]interface{}{}
	if input.Make != nil {
		set["make"] = *input.Make
	}
	if input.Model != nil {
		set["model"] = *input.Model
	}
	if input.Year != nil {
		set["year"] = *input.Year
	}
	if input.PlateNo != nil {
		set["plateNo"] = *input.PlateNo
	}
	if input.Mileage != nil {
		set["mileage"] = *input.Mileage
	}
	if input.LastService != nil {
		set["lastService"] = *input.LastService
	}
	if input.NextService != nil {
		set["nextService"] = *input.NextService
	}
	if input.OilType != nil {
		set["oilType"] = *input.OilType
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa mềm xe (lifecycle = deactivated)
func (s *VehicleService) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"lifecycle": basemodels.LifecycleDeactivated},
	})
	return err
}

// Snapshot trả về bản chụp thông tin xe dùng cho job/hóa đơn
func (s *VehicleService) Snapshot(ctx context.Context, id primitive.ObjectID) (*shopmodels.VehicleSnapshot, error) {
	vehicle, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shopmodels.VehicleSnapshot{
		Make:    vehicle.Make,
		Model:   vehicle.Model,
		Year:    vehicle.Year,
		PlateNo: vehicle.PlateNo,
	}, nil
}
