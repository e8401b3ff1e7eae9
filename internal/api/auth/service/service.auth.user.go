package authsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "momentum_pos/internal/api/auth/dto"
	models "momentum_pos/internal/api/auth/models"
	"momentum_pos/internal/api/authz"
	basemodels "momentum_pos/internal/api/base/models"
	basesvc "momentum_pos/internal/api/base/service"
	"momentum_pos/internal/api/notification/channels"
	"momentum_pos/internal/app"
	"momentum_pos/internal/common"
	"momentum_pos/internal/utility"
)

// Chi phí băm bcrypt cho mật khẩu
const bcryptCost = 12

// EmailNotVerifiedError báo hiệu user đăng nhập đúng nhưng email chưa xác thực.
// Handler dùng lỗi này để trả về 403 kèm cờ requiresVerification.
type EmailNotVerifiedError struct {
	UserID string
}

func (e *EmailNotVerifiedError) Error() string {
	return "Email chưa được xác thực"
}

// LoginResult là kết quả đăng nhập thành công
type LoginResult struct {
	User         models.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// UserService chứa các nghiệp vụ người dùng: đăng ký, đăng nhập, OTP, token
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
	tokens *TokenService
	mailer *channels.Mailer
}

// NewUserService tạo mới UserService từ App container
func NewUserService(a *app.App, tokens *TokenService) *UserService {
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](a.Col(app.MongoColNames.Users)),
		tokens:               tokens,
		mailer:               a.Mailer,
	}
}

// Signup đăng ký tài khoản mới.
// User đầu tiên của hệ thống trở thành Admin; các đăng ký public còn lại chỉ
// được chọn Supervisor/Technician/Cashier (mặc định Technician).
// Email xác thực gửi thất bại sẽ rollback user vừa tạo.
func (s *UserService) Signup(ctx context.Context, input *authdto.UserSignupInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := utility.ValidateEmail(email); err != nil {
		return nil, err
	}

	exists, err := s.DocumentExists(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Email đã được đăng ký", common.StatusBadRequest, nil)
	}

	total, err := s.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	role := input.Role
	if total == 0 {
		// User đầu tiên của hệ thống là Admin
		role = authz.RoleAdmin
	} else {
		if role == "" {
			role = authz.RoleTechnician
		}
		if !authz.IsPublicRole(role) {
			return nil, common.NewError(common.ErrCodeAuthRole, "Role không được phép khi đăng ký", common.StatusBadRequest, nil)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err.Error())
	}

	otp, err := GenerateOTP()
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err.Error())
	}

	user := models.User{
		Name:                  strings.TrimSpace(input.Name),
		Email:                 email,
		Password:              string(hashed),
		Role:                  role,
		Lifecycle:             basemodels.LifecycleActive,
		EmailVerified:         false,
		VerificationOTP:       HashOTP(otp),
		VerificationOTPExpiry: utility.CurrentTimeInMilli() + OTPExpiryMillis,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	subject, text, html := channels.BuildOTPEmail(created.Name, otp, "Xác thực email")
	if err := s.mailer.Send(created.Email, subject, text, html); err != nil {
		// Gửi email thất bại thì rollback user vừa tạo
		if delErr := s.DeleteById(ctx, created.ID); delErr != nil {
			logrus.WithError(delErr).WithField("user_id", created.ID.Hex()).Error("Signup: Không rollback được user sau lỗi gửi email")
		}
		return nil, common.NewError(common.ErrCodeDelivery, "Không gửi được email xác thực, vui lòng thử lại", common.StatusInternalServerError, err.Error())
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "role": created.Role}).Info("Signup: Đăng ký tài khoản thành công")
	return &created, nil
}

// Login xác thực email/mật khẩu và cấp cặp access + refresh token.
// Refresh token được append vào user doc để có thể thu hồi.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Lifecycle != basemodels.LifecycleActive {
		return nil, common.NewError(common.ErrCodeAuthRole, "Tài khoản đã bị vô hiệu hóa", common.StatusForbidden, nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, &EmailNotVerifiedError{UserID: user.ID.Hex()}
	}

	accessToken, err := s.tokens.SignAccessToken(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err.Error())
	}
	refreshToken, err := s.tokens.SignRefreshToken(user.ID.Hex())
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err.Error())
	}

	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Push: map[string]interface{}{"refreshTokens": refreshToken},
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "email": user.Email}).Info("Login: Đăng nhập thành công")
	return &LoginResult{User: updated, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh xác thực refresh token và cấp access token mới.
// Token phải còn nằm trong danh sách refreshTokens của user (chưa bị thu hồi).
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return "", common.ErrTokenInvalid
	}

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrTokenInvalid
		}
		return "", err
	}

	found := false
	for _, t := range user.RefreshTokens {
		if t == refreshToken {
			found = true
			break
		}
	}
	if !found {
		return "", common.ErrTokenInvalid
	}

	return s.tokens.SignAccessToken(user.ID.Hex(), user.Role)
}

// VerifyEmail xác thực email bằng OTP
func (s *UserService) VerifyEmail(ctx context.Context, input *authdto.VerifyEmailInput) (*models.User, error) {
	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return nil, common.ErrInvalidID
	}

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.EmailVerified {
		return &user, nil
	}

	if user.VerificationOTP == "" || user.VerificationOTP != HashOTP(input.OTP) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Mã OTP không chính xác", common.StatusBadRequest, nil)
	}
	if utility.CurrentTimeInMilli() > user.VerificationOTPExpiry {
		return nil, common.NewError(common.ErrCodeValidationInput, "Mã OTP đã hết hạn", common.StatusBadRequest, nil)
	}

	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"emailVerified": true},
		Unset: map[string]interface{}{
			"verificationOtp":       "",
			"verificationOtpExpiry": "",
		},
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("user_id", userID.Hex()).Info("VerifyEmail: Xác thực email thành công")
	return &updated, nil
}

// SendVerificationOTP sinh và gửi lại OTP xác thực email
func (s *UserService) SendVerificationOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUserNotFound
		}
		return err
	}

	if user.EmailVerified {
		return common.NewError(common.ErrCodeBusinessOperation, "Email đã được xác thực", common.StatusBadRequest, nil)
	}

	otp, err := GenerateOTP()
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err.Error())
	}

	if _, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"verificationOtp":       HashOTP(otp),
			"verificationOtpExpiry": utility.CurrentTimeInMilli() + OTPExpiryMillis,
		},
	}); err != nil {
		return err
	}

	subject, text, html := channels.BuildOTPEmail(user.Name, otp, "Xác thực email")
	if err := s.mailer.Send(user.Email, subject, text, html); err != nil {
		return common.NewError(common.ErrCodeDelivery, "Không gửi được email xác thực", common.StatusInternalServerError, err.Error())
	}
	return nil
}

// ForgotPassword sinh OTP đặt lại mật khẩu và gửi qua email.
// Email gửi thất bại sẽ xóa OTP vừa set để tránh OTP treo.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUserNotFound
		}
		return err
	}

	otp, err := GenerateOTP()
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err.Error())
	}

	if _, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"passwordResetOtp":       HashOTP(otp),
			"passwordResetOtpExpiry": utility.CurrentTimeInMilli() + OTPExpiryMillis,
		},
	}); err != nil {
		return err
	}

	subject, text, html := channels.BuildOTPEmail(user.Name, otp, "Đặt lại mật khẩu")
	if err := s.mailer.Send(user.Email, subject, text, html); err != nil {
		if _, clearErr := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
			Unset: map[string]interface{}{
				"passwordResetOtp":       "",
				"passwordResetOtpExpiry": "",
			},
		}); clearErr != nil {
			logrus.WithError(clearErr).WithField("user_id", user.ID.Hex()).Error("ForgotPassword: Không xóa được OTP sau lỗi gửi email")
		}
		return common.NewError(common.ErrCodeDelivery, "Không gửi được email đặt lại mật khẩu", common.StatusInternalServerError, err.Error())
	}
	return nil
}

// ResetPassword đặt lại mật khẩu bằng OTP.
// Toàn bộ refresh token bị thu hồi để buộc đăng nhập lại trên mọi thiết bị.
func (s *UserService) ResetPassword(ctx context.Context, input *authdto.ResetPasswordInput) error {
	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return common.ErrInvalidID
	}

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if user.PasswordResetOTP == "" || user.PasswordResetOTP != HashOTP(input.OTP) {
		return common.NewError(common.ErrCodeValidationInput, "Mã OTP không chính xác", common.StatusBadRequest, nil)
	}
	if utility.CurrentTimeInMilli() > user.PasswordResetOTPExpiry {
		return common.NewError(common.ErrCodeValidationInput, "Mã OTP đã hết hạn", common.StatusBadRequest, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcryptCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err.Error())
	}

	if _, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password":      string(hashed),
			"refreshTokens": []string{},
		},
		Unset: map[string]interface{}{
			"passwordResetOtp":       "",
			"passwordResetOtpExpiry": "",
		},
	}); err != nil {
		return err
	}

	logrus.WithField("user_id", userID.Hex()).Info("ResetPassword: Đặt lại mật khẩu thành công, thu hồi toàn bộ refresh token")
	return nil
}

// DeleteMe vô hiệu hóa tài khoản của chính user (lifecycle = deleted)
// và thu hồi toàn bộ refresh token.
func (s *UserService) DeleteMe(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"lifecycle":     basemodels.LifecycleDeleted,
			"refreshTokens": []string{},
		},
	})
	if err != nil {
		return err
	}
	logrus.WithField("user_id", userID.Hex()).Info("DeleteMe: Tài khoản đã bị xóa")
	return nil
}
