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

// ServiceHistoryService chứa nghiệp vụ lịch sử bảo dưỡng
type ServiceHistoryService struct {
	*basesvc.BaseServiceMongoImpl[shopmodels.ServiceHistory]
}

// NewServiceHistoryService tạo mới ServiceHistoryService từ App container
func NewServiceHistoryService(a *app.App) *ServiceHistoryService {
	return &ServiceHistoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.ServiceHistory](a.Col(app.MongoColNames.ServiceHistory)),
	}
}

// List trả về lịch sử bảo dưỡng, lọc theo vehicleId/customerId, mới nhất trước
func (s *ServiceHistoryService) List(ctx context.Context, vehicleID string, customerID string, page int64, limit int64) (*basemodels.PaginateResult[shopmodels.ServiceHistory], error) {
	filter := bson.M{}
	if vehicleID != "" {
		id, err := primitive.ObjectIDFromHex(vehicleID)
		if err != nil {
			return nil, common.ErrInvalidID
		}
		filter["vehicleId"] = id
	}
	if customerID != "" {
		id, err := primitive.ObjectIDFromHex(customerID)
		if err != nil {
			return nil, common.ErrInvalidID
		}
		filter["customerId"] = id
	}
	opts := options.Find().SetSort(bson.D{{Key: "serviceDate", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// Create ghi một lần bảo dưỡng vào lịch sử
func (s *ServiceHistoryService) Create(ctx context.Context, input *shopdto.ServiceHistoryCreateInput) (*shopmodels.ServiceHistory, error) {
	vehicleID, err := primitive.ObjectIDFromHex(input.VehicleID)
	if err != nil {
		return nil, common.ErrInvalidID
	}
	customerID, err := primitive.ObjectIDFromHex(input.CustomerID)
	if err != nil {
		return nil, common.ErrInvalidID
	}
	var jobID primitive.ObjectID
	if input.JobID != "" {
		jobID, err = primitive.ObjectIDFromHex(input.JobID)
		if err != nil {
			return nil, common.ErrInvalidID
		}
	}

	record := shopmodels.ServiceHistory{
		VehicleID:   vehicleID,
		JobID:       jobID,
		CustomerID:  customerID,
		ServiceDate: input.ServiceDate,
		Description: input.Description,
		Cost:        input.Cost,
		Technician:  input.Technician,
		Mileage:     input.Mileage,
		Notes:       input.Notes,
	}

	created, err := s.InsertOne(ctx, record)
	if err != nil {
		return nil, err
	}
	return &created, nil
}
