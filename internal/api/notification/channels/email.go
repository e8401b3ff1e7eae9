// Package channels chứa các kênh gửi thông báo ra ngoài (email, WhatsApp).
// Mỗi kênh là một client được khởi tạo tường minh từ config và truyền vào service.
package channels

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"momentum_pos/config"
	"momentum_pos/internal/logger"
)

// Mailer là client gửi email qua SMTP
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewMailer tạo Mailer từ cấu hình SMTP
func NewMailer(cfg *config.Configuration) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}
}

// Configured cho biết SMTP đã được cấu hình chưa
func (m *Mailer) Configured() bool {
	return m.host != ""
}

// Send gửi một email với nội dung text và HTML
func (m *Mailer) Send(to string, subject string, textBody string, htmlBody string) error {
	if !m.Configured() {
		// Dev-mode: SMTP chưa cấu hình, log nội dung thay vì gửi
		logger.WithModule("email").WithFields(map[string]interface{}{
			"to":      to,
			"subject": subject,
			"body":    textBody,
		}).Info("📧 [EMAIL] SMTP chưa cấu hình, log nội dung (dev-mode)")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	if htmlBody != "" {
		msg.AddAlternative("text/html", htmlBody)
	}

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		logger.WithModule("email").WithError(err).WithField("to", to).Error("📧 [EMAIL] Gửi email thất bại")
		return err
	}

	logger.WithModule("email").WithField("to", to).Info("📧 [EMAIL] Gửi email thành công")
	return nil
}

// BuildOTPEmail dựng nội dung email OTP (xác thực email / reset mật khẩu)
func BuildOTPEmail(name string, otp string, purpose string) (subject string, text string, html string) {
	subject = fmt.Sprintf("%s - Momentum POS", purpose)
	text = fmt.Sprintf("Mã OTP của bạn là %s. Mã hết hạn sau 10 phút.", otp)
	html = fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background-color: #c53032; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0;">
    <h1 style="margin: 0;">Momentum POS</h1>
  </div>
  <div style="background-color: #f9f9f9; padding: 30px; border-radius: 0 0 8px 8px;">
    <h2 style="color: #333; margin-top: 0;">%s</h2>
    <p style="color: #666; line-height: 1.6;">Xin chào %s,</p>
    <p style="color: #666; line-height: 1.6;">Mã OTP của bạn là:</p>
    <div style="background-color: white; border: 2px dashed #c53032; border-radius: 8px; padding: 20px; text-align: center; margin: 30px 0;">
      <h1 style="color: #c53032; font-size: 36px; letter-spacing: 8px; margin: 0;">%s</h1>
    </div>
    <p style="color: #666; line-height: 1.6;">Mã này hết hạn sau 10 phút.</p>
  </div>
</div>`, purpose, name, otp)
	return subject, text, html
}

// BuildServiceReminderEmail dựng nội dung email nhắc bảo dưỡng xe
func BuildServiceReminderEmail(customerName string, vehicleDesc string, dueDate string, daysUntil int) (subject string, text string, html string) {
	var statusLine string
	if daysUntil < 0 {
		subject = "Cảnh báo quá hạn bảo dưỡng - Momentum AutoWorks"
		statusLine = fmt.Sprintf("Xe %s của bạn đã QUÁ HẠN bảo dưỡng %d ngày.", vehicleDesc, -daysUntil)
	} else {
		subject = "Nhắc lịch bảo dưỡng - Momentum AutoWorks"
		statusLine = fmt.Sprintf("Xe %s của bạn đến hạn bảo dưỡng sau %d ngày.", vehicleDesc, daysUntil)
	}

	text = fmt.Sprintf("Xin chào %s,\n\n%s\nNgày hẹn bảo dưỡng: %s\n\nVui lòng đặt lịch hẹn với chúng tôi.\n\nMomentum AutoWorks Team", customerName, statusLine, dueDate)
	html = fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background-color: #c53032; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0;">
    <h1 style="margin: 0;">Momentum AutoWorks</h1>
  </div>
  <div style="background-color: #f9f9f9; padding: 30px; border-radius: 0 0 8px 8px;">
    <p style="color: #666; line-height: 1.6;">Xin chào %s,</p>
    <p style="color: #666; line-height: 1.6;">%s</p>
    <p style="color: #333; font-weight: bold;">Ngày hẹn bảo dưỡng: %s</p>
    <p style="color: #666; line-height: 1.6;">Vui lòng đặt lịch hẹn với chúng tôi để xe luôn được bảo dưỡng đúng hạn.</p>
  </div>
</div>`, customerName, statusLine, dueDate)
	return subject, text, html
}
