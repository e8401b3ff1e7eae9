// Package settingmodels định nghĩa dữ liệu cấu hình theo từng người dùng.
package settingmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkshopSettings là thông tin chung của xưởng
type WorkshopSettings struct {
	Name     string `json:"name" bson:"name"`
	Address  string `json:"address,omitempty" bson:"address,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Currency string `json:"currency" bson:"currency"`
}

// TaxSettings là thuế suất (%) theo từng phương thức thanh toán
type TaxSettings struct {
	Cash   float64 `json:"cash" bson:"cash"`
	Card   float64 `json:"card" bson:"card"`
	Online float64 `json:"online" bson:"online"`
}

// NotificationSettings là cấu hình nhắc bảo dưỡng và cảnh báo
type NotificationSettings struct {
	ServiceDueReminders bool `json:"serviceDueReminders" bson:"serviceDueReminders"`
	ServiceDueDays      int  `json:"serviceDueDays" bson:"serviceDueDays"`
	OverdueAlerts       bool `json:"overdueAlerts" bson:"overdueAlerts"`
	OverdueDays         int  `json:"overdueDays" bson:"overdueDays"`
	JobCompletion       bool `json:"jobCompletion" bson:"jobCompletion"`
	Whatsapp            bool `json:"whatsapp" bson:"whatsapp"`
}

// EmailSettings là cấu hình gửi email thông báo
type EmailSettings struct {
	Enabled   bool   `json:"enabled" bson:"enabled"`
	FromName  string `json:"fromName,omitempty" bson:"fromName,omitempty"`
	ReplyTo   string `json:"replyTo,omitempty" bson:"replyTo,omitempty"`
	Signature string `json:"signature,omitempty" bson:"signature,omitempty"`
}

// SecuritySettings là cấu hình bảo mật phiên đăng nhập
type SecuritySettings struct {
	SessionTimeoutMinutes int  `json:"sessionTimeoutMinutes" bson:"sessionTimeoutMinutes"`
	RequireOTPOnLogin     bool `json:"requireOtpOnLogin" bson:"requireOtpOnLogin"`
}

// Settings là cấu hình của một người dùng, mỗi userId một bản ghi
type Settings struct {
	ID            primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	UserID        primitive.ObjectID   `json:"userId" bson:"userId"` // Unique
	Workshop      WorkshopSettings     `json:"workshop" bson:"workshop"`
	Tax           TaxSettings          `json:"tax" bson:"tax"`
	Notifications NotificationSettings `json:"notifications" bson:"notifications"`
	Email         EmailSettings        `json:"email" bson:"email"`
	Security      SecuritySettings     `json:"security" bson:"security"`
	CreatedAt     int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64                `json:"updatedAt" bson:"updatedAt"`
}

// DefaultSettings trả về cấu hình mặc định cho một người dùng mới
func DefaultSettings(userID primitive.ObjectID) Settings {
	return Settings{
		UserID: userID,
		Workshop: WorkshopSettings{
			Name:     "Momentum Auto Workshop",
			Currency: "PKR",
		},
		Tax: TaxSettings{},
		Notifications: NotificationSettings{
			ServiceDueReminders: true,
			ServiceDueDays:      7,
			OverdueAlerts:       true,
			OverdueDays:         3,
			JobCompletion:       true,
			Whatsapp:            false,
		},
		Email: EmailSettings{
			Enabled: true,
		},
		Security: SecuritySettings{
			SessionTimeoutMinutes: 30,
		},
	}
}
