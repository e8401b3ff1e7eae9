// Package app chứa App container - nơi tập trung mọi handle dùng chung của ứng dụng
// (config, mongo client, collection registry, mailer, whatsapp, redis, realtime hub).
// App được khởi tạo tường minh ở cmd/server và truyền xuống các service/handler,
// không dùng biến global.
package app

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"momentum_pos/config"
	"momentum_pos/internal/api/notification/channels"
	"momentum_pos/internal/logger"
	"momentum_pos/internal/realtime"
	"momentum_pos/internal/registry"
)

// ColNames chứa tên các collection trong MongoDB
type ColNames struct {
	Users          string
	Customers      string
	Vehicles       string
	Jobs           string
	Invoices       string
	ServiceHistory string
	Comments       string
	CatalogItems   string
	Notifications  string
	Settings       string
}

// MongoColNames là danh sách tên collection chuẩn của hệ thống
var MongoColNames = ColNames{
	Users:          "users",
	Customers:      "customers",
	Vehicles:       "vehicles",
	Jobs:           "jobs",
	Invoices:       "invoices",
	ServiceHistory: "service_history",
	Comments:       "comments",
	CatalogItems:   "catalog_items",
	Notifications:  "notifications",
	Settings:       "settings",
}

// App là container chứa mọi phụ thuộc dùng chung của ứng dụng
type App struct {
	Config      *config.Configuration
	MongoClient *mongo.Client
	DB          *mongo.Database
	Collections *registry.Registry[*mongo.Collection]
	Validate    *validator.Validate
	Mailer      *channels.Mailer
	WhatsApp    *channels.WhatsAppClient
	Redis       *redis.Client // nil nếu không cấu hình Redis
	Hub         *realtime.Hub
}

// New khởi tạo App container từ config và mongo client đã kết nối.
// Mọi collection handle được đăng ký sẵn vào registry tại đây.
func New(cfg *config.Configuration, client *mongo.Client) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config không được nil")
	}
	if client == nil {
		return nil, fmt.Errorf("mongo client không được nil")
	}

	db := client.Database(cfg.MongoDB_DBName)

	cols := registry.NewRegistry[*mongo.Collection]()
	for _, name := range []string{
		MongoColNames.Users,
		MongoColNames.Customers,
		MongoColNames.Vehicles,
		MongoColNames.Jobs,
		MongoColNames.Invoices,
		MongoColNames.ServiceHistory,
		MongoColNames.Comments,
		MongoColNames.CatalogItems,
		MongoColNames.Notifications,
		MongoColNames.Settings,
	} {
		if _, err := cols.Register(name, db.Collection(name)); err != nil {
			return nil, fmt.Errorf("đăng ký collection %s thất bại: %w", name, err)
		}
	}

	a := &App{
		Config:      cfg,
		MongoClient: client,
		DB:          db,
		Collections: cols,
		Validate:    validator.New(),
		Mailer:      channels.NewMailer(cfg),
		WhatsApp:    channels.NewWhatsAppClient(cfg),
		Hub:         realtime.NewHub(),
	}

	if cfg.RedisURI != "" {
		opts, err := redis.ParseURL(cfg.RedisURI)
		if err != nil {
			return nil, fmt.Errorf("REDIS_URI không hợp lệ: %w", err)
		}
		a.Redis = redis.NewClient(opts)
		if err := a.Redis.Ping(context.Background()).Err(); err != nil {
			// Redis chỉ là cache, không chặn khởi động khi không kết nối được
			logger.WithModule("app").WithError(err).Warn("Không kết nối được Redis, chạy không cache")
			a.Redis = nil
		}
	}

	return a, nil
}

// Col trả về collection handle đã đăng ký, panic nếu tên chưa đăng ký.
// Chỉ gọi trong giai đoạn khởi tạo service.
func (a *App) Col(name string) *mongo.Collection {
	return a.Collections.MustGet(name)
}

// Close giải phóng các tài nguyên của App
func (a *App) Close(ctx context.Context) {
	if a.Hub != nil {
		a.Hub.Close()
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.MongoClient != nil {
		_ = a.MongoClient.Disconnect(ctx)
	}
}
