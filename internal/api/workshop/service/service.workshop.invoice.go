package shopsvc

import (
	"context"
	"fmt"

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
	"momentum_pos/internal/utility"
)

// ComputeSubtotal tính tổng tiền các dòng trên hóa đơn
func ComputeSubtotal(items []shopmodels.InvoiceItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Quantity * item.Price
	}
	return subtotal
}

// ComputeAmount tính tổng thanh toán: subtotal + tax - discount, không âm
func ComputeAmount(subtotal float64, tax float64, discount float64) float64 {
	amount := subtotal + tax - discount
	if amount < 0 {
		return 0
	}
	return amount
}

// FormatInvoiceNumber định dạng số hóa đơn dạng INV-000001
func FormatInvoiceNumber(seq int64) string {
	return fmt.Sprintf("INV-%06d", seq)
}

// InvoiceService chứa nghiệp vụ hóa đơn
type InvoiceService struct {
	*basesvc.BaseServiceMongoImpl[shopmodels.Invoice]
	customers *basesvc.BaseServiceMongoImpl[shopmodels.Customer]
	vehicles  *VehicleService
	hub       *realtime.Hub
}

// NewInvoiceService tạo mới InvoiceService từ App container
func NewInvoiceService(a *app.App, vehicles *VehicleService) *InvoiceService {
	return &InvoiceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.Invoice](a.Col(app.MongoColNames.Invoices)),
		customers:            basesvc.NewBaseServiceMongo[shopmodels.Customer](a.Col(app.MongoColNames.Customers)),
		vehicles:             vehicles,
		hub:                  a.Hub,
	}
}

// List trả về danh sách hóa đơn active, lọc status/customerId, tìm theo số hóa đơn
func (s *InvoiceService) List(ctx context.Context, status string, customerID string, search string, page int64, limit int64) (*basemodels.PaginateResult[shopmodels.Invoice], error) {
	filter := bson.M{"lifecycle": basemodels.LifecycleActive}
	if status != "" {
		if !shopmodels.ValidInvoiceStatus(status) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Trạng thái hóa đơn không hợp lệ", common.StatusBadRequest, nil)
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
		filter["invoiceNumber"] = bson.M{"$regex": search, "$options": "i"}
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// nextInvoiceNumber sinh số hóa đơn kế tiếp từ tổng số hóa đơn hiện có
func (s *InvoiceService) nextInvoiceNumber(ctx context.Context) (string, error) {
	count, err := s.CountDocuments(ctx, bson.M{})
	if err != nil {
		return "", err
	}
	return FormatInvoiceNumber(count + 1), nil
}

// Create tạo hóa đơn mới. Subtotal/amount tự tính khi không gửi,
// số hóa đơn được gán tự động.
func (s *InvoiceService) Create(ctx context.Context, input *shopdto.InvoiceCreateInput) (*shopmodels.Invoice, error) {
	customerID, err := primitive.ObjectIDFromHex(input.CustomerID)
	if err != nil {
		return nil, common.ErrInvalidID
	}
	if err := requireCustomer(ctx, s.customers, customerID); err != nil {
		return nil, err
	}

	for _, item := range input.Items {
		if item.Description == "" || item.Quantity < 1 || item.Price < 0 {
			return nil, common.NewError(common.ErrCodeValidationInput, "Dòng hóa đơn không hợp lệ", common.StatusBadRequest, nil)
		}
	}

	var jobID primitive.ObjectID
	if input.JobID != "" {
		jobID, err = primitive.ObjectIDFromHex(input.JobID)
		if err != nil {
			return nil, common.ErrInvalidID
		}
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
	}

	subtotal := ComputeSubtotal(input.Items)
	if input.Subtotal != nil {
		subtotal = *input.Subtotal
	}
	amount := ComputeAmount(subtotal, input.Tax, input.Discount)
	if input.Amount != nil {
		amount = *input.Amount
	}

	status := input.Status
	if status == "" {
		status = shopmodels.InvoiceStatusPending
	}
	if !shopmodels.ValidInvoiceStatus(status) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Trạng thái hóa đơn không hợp lệ", common.StatusBadRequest, nil)
	}
	if input.PaymentMethod != "" && !shopmodels.ValidPaymentMethod(input.PaymentMethod) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Phương thức thanh toán không hợp lệ", common.StatusBadRequest, nil)
	}

	invoiceNumber, err := s.nextInvoiceNumber(ctx)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date == 0 {
		date = utility.CurrentTimeInMilli()
	}

	invoice := shopmodels.Invoice{
		CustomerID:    customerID,
		JobID:         jobID,
		InvoiceNumber: invoiceNumber,
		Date:          date,
		Vehicle:       snapshot,
		Items:         input.Items,
		Subtotal:      subtotal,
		Tax:           input.Tax,
		Discount:      input.Discount,
		Amount:        amount,
		Status:        status,
		PaymentMethod: input.PaymentMethod,
		Technician:    input.Technician,
		Supervisor:    input.Supervisor,
		Notes:         input.Notes,
		Lifecycle:     basemodels.LifecycleActive,
	}

	created, err := s.InsertOne(ctx, invoice)
	if err != nil {
		return nil, err
	}

	s.hub.Broadcast(realtime.Event{Event: "invoiceUpdated", Type: "created", Data: created})
	return &created, nil
}

// Update cập nhật hóa đơn. Gửi items/tax/discount mới thì subtotal và amount
// được tính lại từ dữ liệu sau cập nhật.
func (s *InvoiceService) Update(ctx context.Context, id primitive.ObjectID, input *shopdto.InvoiceUpdateInput) (*shopmodels.Invoice, error) {
	current, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	set := map[string]interface{}{}

	items := current.Items
	tax := current.Tax
	discount := current.Discount
	recalc := false

	if input.Items != nil {
		for _, item := range input.Items {
			if item.Description == "" || item.Quantity < 1 || item.Price < 0 {
				return nil, common.NewError(common.ErrCodeValidationInput, "Dòng hóa đơn không hợp lệ", common.StatusBadRequest, nil)
			}
		}
		items = input.Items
		set["items"] = input.Items
		recalc = true
	}
	if input.Tax != nil {
		tax = *input.Tax
		set["tax"] = *input.Tax
		recalc = true
	}
	if input.Discount != nil {
		discount = *input.Discount
		set["discount"] = *input.Discount
		recalc = true
	}
	if recalc {
		subtotal := ComputeSubtotal(items)
		set["subtotal"] = subtotal
		set["amount"] = ComputeAmount(subtotal, tax, discount)
	}

	if input.Status != nil {
		if !shopmodels.ValidInvoiceStatus(*input.Status) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Trạng thái hóa đơn không hợp lệ", common.StatusBadRequest, nil)
		}
		set["status"] = *input.Status
	}
	if input.PaymentMethod != nil {
		if *input.PaymentMethod != "" && !shopmodels.ValidPaymentMethod(*input.PaymentMethod) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Phương thức thanh toán không hợp lệ", common.StatusBadRequest, nil)
		}
		set["paymentMethod"] = *input.PaymentMethod
	}
	if input.Technician != nil {
		set["technician"] = *input.Technician
	}
	if input.Supervisor != nil {
		set["supervisor"] = *input.Supervisor
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}
	if input.Date != nil {
		set["date"] = *input.Date
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}

	s.hub.Broadcast(realtime.Event{Event: "invoiceUpdated", Type: "updated", Data: updated})
	return &updated, nil
}

// Delete xóa mềm hóa đơn (lifecycle = deactivated)
func (s *InvoiceService) Delete(ctx context.Context, id primitive.ObjectID) error {
	invoice, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"lifecycle": basemodels.LifecycleDeactivated},
	})
	if err != nil {
		return err
	}
	s.hub.Broadcast(realtime.Event{Event: "invoiceUpdated", Type: "deleted", Data: invoice})
	return nil
}
