package channels

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"momentum_pos/config"
	"momentum_pos/internal/logger"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// WhatsAppClient gửi tin nhắn WhatsApp qua Twilio Messages API.
// Không cấu hình credentials thì chạy dev-mode: log nội dung và trả về thành công.
type WhatsAppClient struct {
	accountSID string
	authToken  string
	from       string
	httpClient *http.Client
}

// NewWhatsAppClient tạo client WhatsApp từ cấu hình Twilio
func NewWhatsAppClient(cfg *config.Configuration) *WhatsAppClient {
	return &WhatsAppClient{
		accountSID: cfg.TwilioAccountSID,
		authToken:  cfg.TwilioAuthToken,
		from:       cfg.TwilioWhatsAppFrom,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured cho biết Twilio đã được cấu hình chưa
func (w *WhatsAppClient) Configured() bool {
	return w.accountSID != "" && w.authToken != "" && w.from != ""
}

// Send gửi một tin nhắn WhatsApp tới số điện thoại đích.
// Số điện thoại được chuẩn hóa về định dạng quốc tế trước khi gửi.
func (w *WhatsAppClient) Send(ctx context.Context, phone string, body string) error {
	to, err := NormalizePhone(phone)
	if err != nil {
		return err
	}

	if !w.Configured() {
		// Dev-mode: log nội dung thay vì gửi thật
		logger.WithModule("whatsapp").WithFields(map[string]interface{}{
			"to":   to,
			"body": body,
		}).Info("📱 [WHATSAPP] Twilio chưa cấu hình, log nội dung (dev-mode)")
		return nil
	}

	apiURL := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioAPIBase, w.accountSID)
	form := url.Values{}
	form.Set("From", "whatsapp:"+w.from)
	form.Set("To", "whatsapp:"+to)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("tạo request Twilio thất bại: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(w.accountSID, w.authToken)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		logger.WithModule("whatsapp").WithError(err).WithField("to", to).Error("📱 [WHATSAPP] Gửi tin nhắn thất bại")
		return fmt.Errorf("gọi Twilio API thất bại: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.WithModule("whatsapp").WithFields(map[string]interface{}{
			"to":     to,
			"status": resp.StatusCode,
			"body":   string(respBody),
		}).Error("📱 [WHATSAPP] Twilio trả về lỗi")
		return fmt.Errorf("twilio trả về status %d", resp.StatusCode)
	}

	logger.WithModule("whatsapp").WithField("to", to).Info("📱 [WHATSAPP] Gửi tin nhắn thành công")
	return nil
}

// NormalizePhone chuẩn hóa số điện thoại về định dạng quốc tế E.164.
// Số bắt đầu bằng 0 được coi là số nội địa Pakistan (+92).
func NormalizePhone(phone string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, strings.TrimSpace(phone))

	if cleaned == "" {
		return "", fmt.Errorf("số điện thoại rỗng")
	}

	switch {
	case strings.HasPrefix(cleaned, "+"):
		return cleaned, nil
	case strings.HasPrefix(cleaned, "0"):
		return "+92" + cleaned[1:], nil
	default:
		return "+" + cleaned, nil
	}
}

// BuildServiceReminderMessage dựng nội dung tin nhắn WhatsApp nhắc bảo dưỡng
func BuildServiceReminderMessage(customerName string, vehicleDesc string, serviceType string, dueDate string, daysUntil int) string {
	var statusLine string
	if daysUntil < 0 {
		statusLine = fmt.Sprintf("⚠️ Xe của bạn đã QUÁ HẠN bảo dưỡng %d ngày!", -daysUntil)
	} else if daysUntil == 0 {
		statusLine = "🔔 Xe của bạn đến hạn bảo dưỡng HÔM NAY!"
	} else {
		statusLine = fmt.Sprintf("🔔 Xe của bạn đến hạn bảo dưỡng sau %d ngày.", daysUntil)
	}

	return fmt.Sprintf(
		"Xin chào %s,\n\n%s\n\n🚗 Xe: %s\n🔧 Dịch vụ: %s\n📅 Ngày hẹn: %s\n\nVui lòng đặt lịch hẹn với chúng tôi.\n\nMomentum AutoWorks",
		customerName, statusLine, vehicleDesc, serviceType, dueDate,
	)
}
