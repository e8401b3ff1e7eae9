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
	"momentum_pos/internal/realtime"
)

// JobService chứa nghiệp vụ job sửa chữa
type JobService struct {
	*basesvc.BaseServiceMongoImpl[shopmodels.Job]
	customers *basesvc.BaseServiceMongoImpl[shopmodels.Customer]
	vehicles  *VehicleService
	hub       *realtime.Hub
}

// NewJobService tạo mới JobService từ App container
func NewJobService(a *app.App, vehicles *VehicleService) *JobService {
	return &JobService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.Job](a.Col(app.MongoColNames.Jobs)),
		customers:            basesvc.NewBaseServiceMongo[shopmodels.Customer](a.Col(app.MongoColNames.Customers)),
		vehicles:             vehicles,
		hub:                  a.Hub,
	}
}

// List trả về danh sách job, lọc theo status/customerId và tìm kiếm theo title
func (s *JobService) List(ctx context.Context, status string, customerID string, search string, page int64, limit int64) (*basemodels.PaginateResult[shopmodels.Job], error) {
	filter := bson.M{}
	if status != "" {
		if !shopmodels.ValidJobStatus(status) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Trạng thái job không hợp lệ", common.StatusBadRequest, nil)
		}
		filter["status"] = status
	}
	if customerID != "" {
		id, err := primitive.ObjectIDFromHex(customerID)
		if err != nil {
			return nil, common.ErrInvalidID
		}
		filter["customerId"] = id
	}
	if search != "" {
		filter["title"] = bson.M{"$regex": search, "$options": "i"}
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// Create tạo job mới. Snapshot xe lấy từ vehicleId nếu có, không thì nhận trực tiếp.
func (s *JobService) Create(ctx context.Context, input *shopdto.JobCreateInput) (*shopmodels.Job, error) {
	customerID, err := primitive.ObjectIDFromHex(input.CustomerID)
	if err != nil {
		return nil, common.ErrInvalidID
	}
	if err := requireCustomer(ctx, s.customers, customerID); err != nil {
		return nil, err
	}

	var snapshot shopmodels.VehicleSnapshot
	if input.VehicleID != "" {
		vehicleID, err := primitive.ObjectIDFromHex(input.VehicleID)
		if err != nil {
			return nil, common.ErrInvalidID
		}
		snap, err := s.vehicles.Snapshot(ctx, vehicleID)
		if err != nil {
			return nil, err
		}
		snapshot = *snap
	} else if input.Vehicle != nil {
		snapshot = *input.Vehicle
	} else {
		return nil, common.NewError(common.ErrCodeValidationInput, "Thiếu thông tin xe của job", common.StatusBadRequest, nil)
	}

	status := input.Status
	if status == "" {
		status = shopmodels.JobStatusPending
	}
	if !shopmodels.ValidJobStatus(status) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Trạng thái job không hợp lệ", common.StatusBadRequest, nil)
	}

	job := shopmodels.Job{
		CustomerID:         customerID,
		Vehicle:            snapshot,
		Title:              input.Title,
		Description:        input.Description,
		Status:             status,
		Technician:         input.Technician,
		EstimatedTimeHours: input.EstimatedTimeHours,
		Amount:             input.Amount,
	}

	created, err := s.InsertOne(ctx, job)
	if err != nil {
		return nil, err
	}

	s.hub.Broadcast(realtime.Event{Event: "jobUpdated", Type: "created", Data: created})
	return &created, nil
}

// Update cập nhật các trường được gửi của job
func (s *JobService) Update(ctx context.Context, id primitive.ObjectID, input *shopdto.JobUpdateInput) (*shopmodels.Job, error) {
	set := map[string]interface{}{}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Status != nil {
		if !shopmodels.ValidJobStatus(*input.Status) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Trạng thái job không hợp lệ", common.StatusBadRequest, nil)
		}
		set["status"] = *input.Status
	}
	if input.Technician != nil {
		set["technician"] = *input.Technician
	}
	if input.EstimatedTimeHours != nil {
		set["estimatedTimeHours"] = *input.EstimatedTimeHours
	}
	if input.Amount != nil {
		set["amount"] = *input.Amount
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}

	s.hub.Broadcast(realtime.Event{Event: "jobUpdated", Type: "updated", Data: updated})
	return &updated, nil
}

// Delete xóa cứng job khỏi database
func (s *JobService) Delete(ctx context.Context, id primitive.ObjectID) error {
	job, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if err := s.DeleteById(ctx, id); err != nil {
		return err
	}
	s.hub.Broadcast(realtime.Event{Event: "jobUpdated", Type: "deleted", Data: job})
	return nil
}
