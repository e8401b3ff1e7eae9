package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Toàn bộ cấu hình được đọc từ biến môi trường (file config/env/<GO_ENV>.env).
type Configuration struct {
	Address         string `env:"ADDRESS" envDefault:":8080"`          // Địa chỉ server HTTP
	RealtimeAddress string `env:"REALTIME_ADDRESS" envDefault:":8081"` // Địa chỉ server websocket (realtime)

	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`      // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"momentum"` // Tên cơ sở dữ liệu

	JwtAccessSecret   string `env:"JWT_ACCESS_SECRET,required"`          // Bí mật ký access token
	JwtRefreshSecret  string `env:"JWT_REFRESH_SECRET,required"`         // Bí mật ký refresh token
	JwtAccessExpire   int    `env:"JWT_ACCESS_EXPIRE" envDefault:"15"`   // Thời gian sống access token (phút)
	JwtRefreshExpire  int    `env:"JWT_REFRESH_EXPIRE" envDefault:"43200"` // Thời gian sống refresh token (phút, mặc định 30 ngày)

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials

	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Thời gian window (giây)
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Bật/tắt rate limiting

	// SMTP Configuration - dùng cho email OTP và service reminder
	SMTPHost     string `env:"SMTP_HOST"`                                      // SMTP host
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`                     // SMTP port
	SMTPUser     string `env:"SMTP_USER"`                                      // SMTP user
	SMTPPassword string `env:"SMTP_PASSWORD"`                                  // SMTP password
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"noreply@momentumauto.com"` // Địa chỉ gửi

	// Twilio WhatsApp Configuration (optional - không cấu hình thì chạy dev-mode)
	TwilioAccountSID   string `env:"TWILIO_ACCOUNT_SID"`   // Twilio Account SID
	TwilioAuthToken    string `env:"TWILIO_AUTH_TOKEN"`    // Twilio Auth Token
	TwilioWhatsAppFrom string `env:"TWILIO_WHATSAPP_FROM"` // Số WhatsApp gửi đi

	// Redis Configuration (optional - dùng cache dashboard summary)
	RedisURI string `env:"REDIS_URI"` // URI kết nối Redis, rỗng = không cache

	// Frontend URL
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"` // URL frontend

	// Chế độ development - bật thì error response kèm details
	DevMode bool `env:"DEV_MODE" envDefault:"false"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`    // Mức log
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`   // Định dạng log (text/json)
	LogOutput string `env:"LOG_OUTPUT" envDefault:"stdout"` // Đầu ra log (stdout/file/both)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// Không tìm thấy file env cũng không sao - biến môi trường có thể đã được set sẵn
			fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
