package app

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"momentum_pos/internal/database"
)

// collectionIndexes là các index cần có của từng collection
var collectionIndexes = map[string][]database.IndexSpec{
	MongoColNames.Users: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Name: "idx_users_email", Unique: true},
	},
	MongoColNames.Customers: {
		{Keys: bson.D{{Key: "phone", Value: 1}}, Name: "idx_customers_phone", Unique: true},
		{Keys: bson.D{{Key: "name", Value: 1}}, Name: "idx_customers_name"},
	},
	MongoColNames.Vehicles: {
		{Keys: bson.D{{Key: "plateNo", Value: 1}}, Name: "idx_vehicles_plate_no", Unique: true},
		{Keys: bson.D{{Key: "customerId", Value: 1}}, Name: "idx_vehicles_customer_id"},
		{Keys: bson.D{{Key: "nextService", Value: 1}}, Name: "idx_vehicles_next_service"},
	},
	MongoColNames.Jobs: {
		{Keys: bson.D{{Key: "customerId", Value: 1}}, Name: "idx_jobs_customer_id"},
		{Keys: bson.D{{Key: "status", Value: 1}}, Name: "idx_jobs_status"},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}, Name: "idx_jobs_created_at"},
	},
	MongoColNames.Invoices: {
		{Keys: bson.D{{Key: "invoiceNumber", Value: 1}}, Name: "idx_invoices_invoice_number", Unique: true, Sparse: true},
		{Keys: bson.D{{Key: "customerId", Value: 1}}, Name: "idx_invoices_customer_id"},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "date", Value: -1}}, Name: "idx_invoices_status_date"},
	},
	MongoColNames.ServiceHistory: {
		{Keys: bson.D{{Key: "vehicleId", Value: 1}, {Key: "serviceDate", Value: -1}}, Name: "idx_service_history_vehicle_date"},
	},
	MongoColNames.Comments: {
		{Keys: bson.D{{Key: "jobId", Value: 1}, {Key: "createdAt", Value: 1}}, Name: "idx_comments_job_created"},
	},
	MongoColNames.CatalogItems: {
		{Keys: bson.D{{Key: "visibility", Value: 1}, {Key: "accountId", Value: 1}}, Name: "idx_catalog_visibility_account"},
		{Keys: bson.D{{Key: "type", Value: 1}}, Name: "idx_catalog_type"},
	},
	MongoColNames.Notifications: {
		{Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "vehicleId", Value: 1}}, Name: "idx_notifications_customer_vehicle", Unique: true},
	},
	MongoColNames.Settings: {
		{Keys: bson.D{{Key: "userId", Value: 1}}, Name: "idx_settings_user_id", Unique: true},
	},
}

// EnsureIndexes tạo index cho toàn bộ collection đã đăng ký
func (a *App) EnsureIndexes(ctx context.Context) error {
	for name, specs := range collectionIndexes {
		if err := database.CreateIndexes(ctx, a.Col(name), specs); err != nil {
			return err
		}
	}
	return nil
}
