// Package settingsvc chứa nghiệp vụ cấu hình theo người dùng.
package settingsvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "momentum_pos/internal/api/base/service"
	settingdto "momentum_pos/internal/api/settings/dto"
	settingmodels "momentum_pos/internal/api/settings/models"
	"momentum_pos/internal/app"
	"momentum_pos/internal/common"
)

// SettingsService quản lý cấu hình, mỗi người dùng một bản ghi
type SettingsService struct {
	*basesvc.BaseServiceMongoImpl[settingmodels.Settings]
}

// NewSettingsService tạo instance mới của SettingsService
func NewSettingsService(a *app.App) *SettingsService {
	return &SettingsService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[settingmodels.Settings](a.Col(app.MongoColNames.Settings)),
	}
}

// Get trả về cấu hình của người dùng, tự tạo bản ghi mặc định nếu chưa có
func (s *SettingsService) Get(ctx context.Context, userID primitive.ObjectID) (settingmodels.Settings, error) {
	settings, err := s.FindOne(ctx, bson.M{"userId": userID}, nil)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return settings, err
	}

	defaults := settingmodels.DefaultSettings(userID)
	return s.Upsert(ctx, bson.M{"userId": userID}, &basesvc.UpdateData{
		SetOnInsert: map[string]interface{}{
			"workshop":      defaults.Workshop,
			"tax":           defaults.Tax,
			"notifications": defaults.Notifications,
			"email":         defaults.Email,
			"security":      defaults.Security,
		},
	})
}

// Update cập nhật từng phần cấu hình, section nào có trong body thì thay cả section
func (s *SettingsService) Update(ctx context.Context, userID primitive.ObjectID, input *settingdto.SettingsUpdateInput) (settingmodels.Settings, error) {
	// Đảm bảo bản ghi tồn tại trước khi cập nhật từng phần
	if _, err := s.Get(ctx, userID); err != nil {
		return settingmodels.Settings{}, err
	}

	set := map[string]interface{}{}
	if input.Workshop != nil {
		set["workshop"] = *input.Workshop
	}
	if input.Tax != nil {
		set["tax"] = *input.Tax
	}
	if input.Notifications != nil {
		set["notifications"] = *input.Notifications
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Security != nil {
		set["security"] = *input.Security
	}
	if len(set) == 0 {
		return settingmodels.Settings{}, common.NewError(common.ErrCodeValidationInput, "Không có section cấu hình nào để cập nhật", common.StatusBadRequest, nil)
	}

	return s.UpdateOne(ctx, bson.M{"userId": userID}, &basesvc.UpdateData{Set: set})
}

// UpdateTax cập nhật riêng thuế suất, trường nào nil thì giữ nguyên
func (s *SettingsService) UpdateTax(ctx context.Context, userID primitive.ObjectID, input *settingdto.TaxUpdateInput) (settingmodels.Settings, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return settingmodels.Settings{}, err
	}

	set := map[string]interface{}{}
	if input.Cash != nil {
		set["tax.cash"] = *input.Cash
	}
	if input.Card != nil {
		set["tax.card"] = *input.Card
	}
	if input.Online != nil {
		set["tax.online"] = *input.Online
	}
	if len(set) == 0 {
		return settingmodels.Settings{}, common.NewError(common.ErrCodeValidationInput, "Không có thuế suất nào để cập nhật", common.StatusBadRequest, nil)
	}

	return s.UpdateOne(ctx, bson.M{"userId": userID}, &basesvc.UpdateData{Set: set})
}

// UpdateNotifications cập nhật riêng cấu hình nhắc bảo dưỡng, trường nào nil thì giữ nguyên
func (s *SettingsService) UpdateNotifications(ctx context.Context, userID primitive.ObjectID, input *settingdto.NotificationsUpdateInput) (settingmodels.Settings, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return settingmodels.Settings{}, err
	}

	set := map[string]interface{}{}
	if input.ServiceDueReminders != nil {
		set["notifications.serviceDueReminders"] = *input.ServiceDueReminders
	}
	if input.ServiceDueDays != nil {
		set["notifications.serviceDueDays"] = *input.ServiceDueDays
	}
	if input.OverdueAlerts != nil {
		set["notifications.overdueAlerts"] = *input.OverdueAlerts
	}
	if input.OverdueDays != nil {
		set["notifications.overdueDays"] = *input.OverdueDays
	}
	if input.JobCompletion != nil {
		set["notifications.jobCompletion"] = *input.JobCompletion
	}
	if input.Whatsapp != nil {
		set["notifications.whatsapp"] = *input.Whatsapp
	}
	if len(set) == 0 {
		return settingmodels.Settings{}, common.NewError(common.ErrCodeValidationInput, "Không có cấu hình thông báo nào để cập nhật", common.StatusBadRequest, nil)
	}

	return s.UpdateOne(ctx, bson.M{"userId": userID}, &basesvc.UpdateData{Set: set})
}
