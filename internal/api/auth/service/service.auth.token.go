// Package authsvc chứa các service thuộc domain xác thực.
package authsvc

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"momentum_pos/config"
	"momentum_pos/internal/common"
)

// Loại token trong claims
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims là claims của JWT access/refresh token
type TokenClaims struct {
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	TokenType string `json:"tokenType"`
	jwt.RegisteredClaims
}

// TokenService ký và xác thực JWT access/refresh token (HS256)
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenService tạo TokenService từ cấu hình JWT
func NewTokenService(cfg *config.Configuration) *TokenService {
	return &TokenService{
		accessSecret:  []byte(cfg.JwtAccessSecret),
		refreshSecret: []byte(cfg.JwtRefreshSecret),
		accessTTL:     time.Duration(cfg.JwtAccessExpire) * time.Minute,
		refreshTTL:    time.Duration(cfg.JwtRefreshExpire) * time.Minute,
	}
}

// SignAccessToken ký access token chứa userId và role
func (s *TokenService) SignAccessToken(userID string, role string) (string, error) {
	return s.sign(userID, role, TokenTypeAccess, s.accessSecret, s.accessTTL)
}

// SignRefreshToken ký refresh token chỉ chứa userId
func (s *TokenService) SignRefreshToken(userID string) (string, error) {
	return s.sign(userID, "", TokenTypeRefresh, s.refreshSecret, s.refreshTTL)
}

func (s *TokenService) sign(userID string, role string, tokenType string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyAccessToken xác thực access token và trả về claims
func (s *TokenService) VerifyAccessToken(tokenString string) (*TokenClaims, error) {
	return s.verify(tokenString, TokenTypeAccess, s.accessSecret)
}

// VerifyRefreshToken xác thực refresh token và trả về claims
func (s *TokenService) VerifyRefreshToken(tokenString string) (*TokenClaims, error) {
	return s.verify(tokenString, TokenTypeRefresh, s.refreshSecret)
}

func (s *TokenService) verify(tokenString string, expectedType string, secret []byte) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid || claims.TokenType != expectedType || claims.UserID == "" {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
