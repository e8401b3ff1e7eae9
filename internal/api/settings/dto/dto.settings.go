// Package settingdto định nghĩa body của các request cấu hình.
package settingdto

import (
	settingmodels "momentum_pos/internal/api/settings/models"
)

// SettingsUpdateInput cập nhật từng phần cấu hình, section nào nil thì giữ nguyên
type SettingsUpdateInput struct {
	Workshop      *settingmodels.WorkshopSettings     `json:"workshop"`
	Tax           *settingmodels.TaxSettings          `json:"tax"`
	Notifications *settingmodels.NotificationSettings `json:"notifications"`
	Email         *settingmodels.EmailSettings        `json:"email"`
	Security      *settingmodels.SecuritySettings     `json:"security"`
}

// TaxUpdateInput cập nhật riêng thuế suất theo phương thức thanh toán
type TaxUpdateInput struct {
	Cash   *float64 `json:"cash" validate:"omitempty,gte=0,lte=100"`
	Card   *float64 `json:"card" validate:"omitempty,gte=0,lte=100"`
	Online *float64 `json:"online" validate:"omitempty,gte=0,lte=100"`
}

// NotificationsUpdateInput cập nhật riêng cấu hình nhắc bảo dưỡng
type NotificationsUpdateInput struct {
	ServiceDueReminders *bool `json:"serviceDueReminders"`
	ServiceDueDays      *int  `json:"serviceDueDays" validate:"omitempty,gte=1,lte=90"`
	OverdueAlerts       *bool `json:"overdueAlerts"`
	OverdueDays         *int  `json:"overdueDays" validate:"omitempty,gte=1,lte=90"`
	JobCompletion       *bool `json:"jobCompletion"`
	Whatsapp            *bool `json:"whatsapp"`
}
