package notifsvc

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "momentum_pos/internal/api/base/models"
	basesvc "momentum_pos/internal/api/base/service"
	"momentum_pos/internal/api/notification/channels"
	notifmodels "momentum_pos/internal/api/notification/models"
	shopmodels "momentum_pos/internal/api/workshop/models"
	"momentum_pos/internal/app"
	"momentum_pos/internal/common"
	"momentum_pos/internal/utility"
)

// Reminder là một dòng nhắc bảo dưỡng suy ra từ xe, không lưu trong database
type Reminder struct {
	CustomerID    primitive.ObjectID `json:"customerId"`
	VehicleID     primitive.ObjectID `json:"vehicleId"`
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail,omitempty"`
	CustomerPhone string             `json:"customerPhone,omitempty"`
	Vehicle       string             `json:"vehicle"`
	PlateNo       string             `json:"plateNo"`
	NextService   int64              `json:"nextService"`
	DaysUntil     int                `json:"daysUntil"`
	Priority      string             `json:"priority"`
	Type          string             `json:"type"`
	EmailSent     bool               `json:"emailSent"`
	WhatsappSent  bool               `json:"whatsappSent"`
}

// ServiceReminderRow là một dòng chi tiết cho màn service reminders
type ServiceReminderRow struct {
	CustomerID   primitive.ObjectID `json:"customerId"`
	VehicleID    primitive.ObjectID `json:"vehicleId"`
	CustomerName string             `json:"customerName"`
	Vehicle      string             `json:"vehicle"`
	PlateNo      string             `json:"plateNo"`
	ServiceType  string             `json:"serviceType"`
	DueDate      int64              `json:"dueDate"`
	DaysUntil    int                `json:"daysUntil"`
	Priority     string             `json:"priority"` // Viết hoa chữ đầu: Low/Medium/High
	Status       string             `json:"status"`   // Pending | Overdue
}

// Stats là số liệu tổng hợp của màn thông báo
type Stats struct {
	PendingReminders int `json:"pendingReminders"`
	SentToday        int `json:"sentToday"`
	OverdueAlerts    int `json:"overdueAlerts"`
	Scheduled        int `json:"scheduled"`
}

// SendResult là kết quả gửi qua một kênh. Success=false không phải lỗi server,
// handler trả về HTTP 200 với success phản ánh kết quả kênh.
type SendResult struct {
	Success      bool                      `json:"success"`
	Message      string                    `json:"message"`
	Notification *notifmodels.Notification `json:"notification,omitempty"`
}

// BulkResult là kết quả gửi hàng loạt
type BulkResult struct {
	EmailSent    int      `json:"emailSent"`
	WhatsappSent int      `json:"whatsappSent"`
	Failed       int      `json:"failed"`
	Errors       []string `json:"errors,omitempty"`
}

// NotificationService chứa nghiệp vụ nhắc bảo dưỡng và gửi thông báo
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[notifmodels.Notification]
	vehicles  *basesvc.BaseServiceMongoImpl[shopmodels.Vehicle]
	customers *basesvc.BaseServiceMongoImpl[shopmodels.Customer]
	mailer    *channels.Mailer
	whatsapp  *channels.WhatsAppClient
}

// NewNotificationService tạo mới NotificationService từ App container
func NewNotificationService(a *app.App) *NotificationService {
	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[notifmodels.Notification](a.Col(app.MongoColNames.Notifications)),
		vehicles:             basesvc.NewBaseServiceMongo[shopmodels.Vehicle](a.Col(app.MongoColNames.Vehicles)),
		customers:            basesvc.NewBaseServiceMongo[shopmodels.Customer](a.Col(app.MongoColNames.Customers)),
		mailer:               a.Mailer,
		whatsapp:             a.WhatsApp,
	}
}

// dueVehicles trả về các xe active có lịch bảo dưỡng kế tiếp
func (s *NotificationService) dueVehicles(ctx context.Context) ([]shopmodels.Vehicle, error) {
	filter := bson.M{
		"lifecycle":   basemodels.LifecycleActive,
		"nextService": bson.M{"$gt": 0},
	}
	return s.vehicles.Find(ctx, filter, nil)
}

// customerMap nạp các khách hàng theo danh sách id, trả về map theo id
func (s *NotificationService) customerMap(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]shopmodels.Customer, error) {
	result := make(map[primitive.ObjectID]shopmodels.Customer, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	customers, err := s.customers.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		result[c.ID] = c
	}
	return result, nil
}

// sentFlags nạp bản ghi dedup cho các xe, trả về map theo vehicleId
func (s *NotificationService) sentFlags(ctx context.Context, vehicleIDs []primitive.ObjectID) (map[primitive.ObjectID]notifmodels.Notification, error) {
	result := make(map[primitive.ObjectID]notifmodels.Notification, len(vehicleIDs))
	if len(vehicleIDs) == 0 {
		return result, nil
	}
	records, err := s.Find(ctx, bson.M{"vehicleId": bson.M{"$in": vehicleIDs}}, nil)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		result[r.VehicleID] = r
	}
	return result, nil
}

func vehicleDesc(v *shopmodels.Vehicle) string {
	return fmt.Sprintf("%s %s %d", v.Make, v.Model, v.Year)
}

// ListReminders trả về danh sách nhắc bảo dưỡng suy ra từ các xe đến hạn,
// gộp với cờ đã gửi từ bản ghi dedup, xe quá hạn đứng trước.
func (s *NotificationService) ListReminders(ctx context.Context, now time.Time) ([]Reminder, error) {
	vehicles, err := s.dueVehicles(ctx)
	if err != nil {
		return nil, err
	}

	customerIDs := make([]primitive.ObjectID, 0, len(vehicles))
	vehicleIDs := make([]primitive.ObjectID, 0, len(vehicles))
	for _, v := range vehicles {
		customerIDs = append(customerIDs, v.CustomerID)
		vehicleIDs = append(vehicleIDs, v.ID)
	}

	customers, err := s.customerMap(ctx, customerIDs)
	if err != nil {
		return nil, err
	}
	flags, err := s.sentFlags(ctx, vehicleIDs)
	if err != nil {
		return nil, err
	}

	reminders := make([]Reminder, 0, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		customer, ok := customers[v.CustomerID]
		if !ok {
			continue
		}
		daysUntil := DaysUntil(v.NextService, now)
		reminder := Reminder{
			CustomerID:    v.CustomerID,
			VehicleID:     v.ID,
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
			CustomerPhone: customer.Phone,
			Vehicle:       vehicleDesc(v),
			PlateNo:       v.PlateNo,
			NextService:   v.NextService,
			DaysUntil:     daysUntil,
			Priority:      PriorityFor(daysUntil),
			Type:          TypeFor(daysUntil),
		}
		if record, ok := flags[v.ID]; ok {
			reminder.EmailSent = record.EmailSent
			reminder.WhatsappSent = record.WhatsappSent
		}
		reminders = append(reminders, reminder)
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return ReminderLess(reminders[i].DaysUntil, reminders[j].DaysUntil)
	})
	return reminders, nil
}

// Stats trả về số liệu tổng hợp: nhắc đang chờ, đã gửi hôm nay, quá hạn, đã lên lịch
func (s *NotificationService) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	reminders, err := s.ListReminders(ctx, now)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	for _, r := range reminders {
		if r.DaysUntil < 0 {
			stats.OverdueAlerts++
		}
		if !r.EmailSent && !r.WhatsappSent {
			stats.PendingReminders++
		} else {
			stats.Scheduled++
		}
	}

	startOfDay := utility.UnixMilli(utility.StartOfDay(now))
	sentToday, err := s.CountDocuments(ctx, bson.M{
		"status": notifmodels.StatusSent,
		"$or": []bson.M{
			{"emailSentAt": bson.M{"$gte": startOfDay}},
			{"whatsappSentAt": bson.M{"$gte": startOfDay}},
		},
	})
	if err != nil {
		return nil, err
	}
	stats.SentToday = int(sentToday)

	return stats, nil
}

// ServiceReminders trả về danh sách chi tiết với loại dịch vụ đoán từ xe,
// priority viết hoa chữ đầu và status Pending/Overdue.
func (s *NotificationService) ServiceReminders(ctx context.Context, now time.Time) ([]ServiceReminderRow, error) {
	vehicles, err := s.dueVehicles(ctx)
	if err != nil {
		return nil, err
	}

	customerIDs := make([]primitive.ObjectID, 0, len(vehicles))
	for _, v := range vehicles {
		customerIDs = append(customerIDs, v.CustomerID)
	}
	customers, err := s.customerMap(ctx, customerIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]ServiceReminderRow, 0, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		customer, ok := customers[v.CustomerID]
		if !ok {
			continue
		}
		daysUntil := DaysUntil(v.NextService, now)
		status := "Pending"
		if daysUntil < 0 {
			status = "Overdue"
		}
		rows = append(rows, ServiceReminderRow{
			CustomerID:   v.CustomerID,
			VehicleID:    v.ID,
			CustomerName: customer.Name,
			Vehicle:      vehicleDesc(v),
			PlateNo:      v.PlateNo,
			ServiceType:  ServiceTypeFor(v.OilType, v.LastService, now),
			DueDate:      v.NextService,
			DaysUntil:    daysUntil,
			Priority:     CapitalizePriority(PriorityFor(daysUntil)),
			Status:       status,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return ReminderLess(rows[i].DaysUntil, rows[j].DaysUntil)
	})
	return rows, nil
}

// CapitalizePriority viết hoa chữ đầu của mức ưu tiên (high -> High)
func CapitalizePriority(priority string) string {
	switch priority {
	case notifmodels.PriorityLow:
		return "Low"
	case notifmodels.PriorityMedium:
		return "Medium"
	case notifmodels.PriorityHigh:
		return "High"
	}
	return priority
}

// BuildSendUpdate dựng update document cho bản ghi dedup sau một lần gửi.
// Gửi thành công set cờ kênh + thời điểm + status=sent và xóa error cũ;
// thất bại set status=failed + error.
func BuildSendUpdate(channel string, success bool, sentAt int64, sendErr string, notifType string, dueDate int64, priority string, title string, message string) *basesvc.UpdateData {
	set := map[string]interface{}{
		"type":     notifType,
		"dueDate":  dueDate,
		"priority": priority,
		"title":    title,
		"message":  message,
	}
	update := &basesvc.UpdateData{Set: set}

	if success {
		set[channel+"Sent"] = true
		set[channel+"SentAt"] = sentAt
		set["status"] = notifmodels.StatusSent
		update.Unset = map[string]interface{}{"error": ""}
	} else {
		set["status"] = notifmodels.StatusFailed
		set["error"] = sendErr
	}
	return update
}

// loadSendTargets nạp và kiểm tra khách hàng + xe cho một lần gửi
func (s *NotificationService) loadSendTargets(ctx context.Context, customerID primitive.ObjectID, vehicleID primitive.ObjectID) (*shopmodels.Customer, *shopmodels.Vehicle, error) {
	customer, err := s.customers.FindOneById(ctx, customerID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy khách hàng", common.StatusNotFound, nil)
		}
		return nil, nil, err
	}
	vehicle, err := s.vehicles.FindOneById(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy xe", common.StatusNotFound, nil)
		}
		return nil, nil, err
	}
	return &customer, &vehicle, nil
}

// recordSend upsert bản ghi dedup theo (customerId, vehicleId) với kết quả gửi
func (s *NotificationService) recordSend(ctx context.Context, customerID primitive.ObjectID, vehicleID primitive.ObjectID, update *basesvc.UpdateData) (*notifmodels.Notification, error) {
	filter := bson.M{"customerId": customerID, "vehicleId": vehicleID}
	record, err := s.Upsert(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// SendEmail gửi nhắc bảo dưỡng qua email cho một cặp khách hàng/xe.
// Thất bại của kênh email trả về SendResult{Success:false}, không phải lỗi.
func (s *NotificationService) SendEmail(ctx context.Context, customerID primitive.ObjectID, vehicleID primitive.ObjectID, now time.Time) (*SendResult, error) {
	customer, vehicle, err := s.loadSendTargets(ctx, customerID, vehicleID)
	if err != nil {
		return nil, err
	}
	if customer.Email == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "Khách hàng không có địa chỉ email", common.StatusBadRequest, nil)
	}

	daysUntil := DaysUntil(vehicle.NextService, now)
	dueDate := time.UnixMilli(vehicle.NextService).Format("02/01/2006")
	subject, text, html := channels.BuildServiceReminderEmail(customer.Name, vehicleDesc(vehicle), dueDate, daysUntil)

	sendErr := s.mailer.Send(customer.Email, subject, text, html)

	update := BuildSendUpdate("email", sendErr == nil, utility.UnixMilli(now), errString(sendErr),
		TypeFor(daysUntil), vehicle.NextService, PriorityFor(daysUntil), subject, text)
	record, err := s.recordSend(ctx, customerID, vehicleID, update)
	if err != nil {
		return nil, err
	}

	if sendErr != nil {
		return &SendResult{Success: false, Message: "Gửi email thất bại: " + sendErr.Error(), Notification: record}, nil
	}
	return &SendResult{Success: true, Message: "Đã gửi email nhắc bảo dưỡng", Notification: record}, nil
}

// SendWhatsApp gửi nhắc bảo dưỡng qua WhatsApp cho một cặp khách hàng/xe
func (s *NotificationService) SendWhatsApp(ctx context.Context, customerID primitive.ObjectID, vehicleID primitive.ObjectID, now time.Time) (*SendResult, error) {
	customer, vehicle, err := s.loadSendTargets(ctx, customerID, vehicleID)
	if err != nil {
		return nil, err
	}
	if customer.Phone == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "Khách hàng không có số điện thoại", common.StatusBadRequest, nil)
	}

	daysUntil := DaysUntil(vehicle.NextService, now)
	dueDate := time.UnixMilli(vehicle.NextService).Format("02/01/2006")
	message := channels.BuildServiceReminderMessage(customer.Name, vehicleDesc(vehicle),
		ServiceTypeFor(vehicle.OilType, vehicle.LastService, now), dueDate, daysUntil)

	sendErr := s.whatsapp.Send(ctx, customer.Phone, message)

	update := BuildSendUpdate("whatsapp", sendErr == nil, utility.UnixMilli(now), errString(sendErr),
		TypeFor(daysUntil), vehicle.NextService, PriorityFor(daysUntil), "Nhắc bảo dưỡng", message)
	record, err := s.recordSend(ctx, customerID, vehicleID, update)
	if err != nil {
		return nil, err
	}

	if sendErr != nil {
		return &SendResult{Success: false, Message: "Gửi WhatsApp thất bại: " + sendErr.Error(), Notification: record}, nil
	}
	return &SendResult{Success: true, Message: "Đã gửi WhatsApp nhắc bảo dưỡng", Notification: record}, nil
}

// Các bộ lọc gửi hàng loạt
const (
	BulkTypeAll     = "all"
	BulkTypeOverdue = "overdue"
	BulkTypeDueSoon = "due_soon"
)

// Các kênh gửi hàng loạt
const (
	BulkMethodEmail    = "email"
	BulkMethodWhatsApp = "whatsapp"
	BulkMethodBoth     = "both"
)

// SendBulk gửi nhắc bảo dưỡng hàng loạt theo bộ lọc và kênh.
// Từng lần gửi thất bại được gom vào kết quả, không dừng cả đợt.
func (s *NotificationService) SendBulk(ctx context.Context, bulkType string, method string, now time.Time) (*BulkResult, error) {
	switch bulkType {
	case BulkTypeAll, BulkTypeOverdue, BulkTypeDueSoon:
	default:
		return nil, common.NewError(common.ErrCodeValidationInput, "Loại gửi hàng loạt không hợp lệ", common.StatusBadRequest, nil)
	}
	switch method {
	case BulkMethodEmail, BulkMethodWhatsApp, BulkMethodBoth:
	default:
		return nil, common.NewError(common.ErrCodeValidationInput, "Kênh gửi không hợp lệ", common.StatusBadRequest, nil)
	}

	reminders, err := s.ListReminders(ctx, now)
	if err != nil {
		return nil, err
	}

	result := &BulkResult{}
	for _, r := range reminders {
		if bulkType == BulkTypeOverdue && r.DaysUntil >= 0 {
			continue
		}
		if bulkType == BulkTypeDueSoon && (r.DaysUntil < 0 || r.DaysUntil > mediumPriorityDays) {
			continue
		}

		if method == BulkMethodEmail || method == BulkMethodBoth {
			sendResult, err := s.SendEmail(ctx, r.CustomerID, r.VehicleID, now)
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("%s (%s): %s", r.CustomerName, r.PlateNo, err.Error()))
			} else if sendResult.Success {
				result.EmailSent++
			} else {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("%s (%s): %s", r.CustomerName, r.PlateNo, sendResult.Message))
			}
		}
		if method == BulkMethodWhatsApp || method == BulkMethodBoth {
			sendResult, err := s.SendWhatsApp(ctx, r.CustomerID, r.VehicleID, now)
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("%s (%s): %s", r.CustomerName, r.PlateNo, err.Error()))
			} else if sendResult.Success {
				result.WhatsappSent++
			} else {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("%s (%s): %s", r.CustomerName, r.PlateNo, sendResult.Message))
			}
		}
	}
	return result, nil
}

// History trả về lịch sử gửi, lọc theo khách hàng/xe, mới nhất trước
func (s *NotificationService) History(ctx context.Context, customerID string, vehicleID string, limit int64) ([]notifmodels.Notification, error) {
	filter := bson.M{}
	if customerID != "" {
		id, err := primitive.ObjectIDFromHex(customerID)
		if err != nil {
			return nil, common.ErrInvalidID
		}
		filter["customerId"] = id
	}
	if vehicleID != "" {
		id, err := primitive.ObjectIDFromHex(vehicleID)
		if err != nil {
			return nil, common.ErrInvalidID
		}
		filter["vehicleId"] = id
	}
	if limit < 1 || limit > 1000 {
		limit = 50
	}
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}}).SetLimit(limit)
	return s.Find(ctx, filter, opts)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
