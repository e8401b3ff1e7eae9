package authsvc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"momentum_pos/config"
	"momentum_pos/internal/common"
)

func newTestTokenService() *TokenService {
	return NewTokenService(&config.Configuration{
		JwtAccessSecret:  "access-secret-test",
		JwtRefreshSecret: "refresh-secret-test",
		JwtAccessExpire:  15,
		JwtRefreshExpire: 43200,
	})
}

// Test ký và xác thực access token round-trip
func TestTokenService_AccessRoundTrip(t *testing.T) {
	s := newTestTokenService()

	token, err := s.SignAccessToken("665f1c2b9a8d4e0012345678", "Admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "665f1c2b9a8d4e0012345678", claims.UserID)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

// Test ký và xác thực refresh token round-trip
func TestTokenService_RefreshRoundTrip(t *testing.T) {
	s := newTestTokenService()

	token, err := s.SignRefreshToken("665f1c2b9a8d4e0012345678")
	require.NoError(t, err)

	claims, err := s.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "665f1c2b9a8d4e0012345678", claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

// Test hai loại token không dùng lẫn được: access không verify bằng refresh và ngược lại
func TestTokenService_KhongDungLanLoaiToken(t *testing.T) {
	s := newTestTokenService()

	accessToken, err := s.SignAccessToken("665f1c2b9a8d4e0012345678", "Cashier")
	require.NoError(t, err)
	refreshToken, err := s.SignRefreshToken("665f1c2b9a8d4e0012345678")
	require.NoError(t, err)

	_, err = s.VerifyRefreshToken(accessToken)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid), "access token không được verify như refresh token")

	_, err = s.VerifyAccessToken(refreshToken)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid), "refresh token không được verify như access token")
}

// Test token giả mạo và token ký sai secret bị từ chối
func TestTokenService_TokenKhongHopLe(t *testing.T) {
	s := newTestTokenService()

	_, err := s.VerifyAccessToken("not-a-jwt")
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))

	other := NewTokenService(&config.Configuration{
		JwtAccessSecret:  "secret-khac",
		JwtRefreshSecret: "secret-khac-nua",
		JwtAccessExpire:  15,
		JwtRefreshExpire: 43200,
	})
	token, err := other.SignAccessToken("665f1c2b9a8d4e0012345678", "Admin")
	require.NoError(t, err)

	_, err = s.VerifyAccessToken(token)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid), "token ký bằng secret khác phải bị từ chối")
}

// Test token hết hạn trả về ErrTokenExpired
func TestTokenService_TokenHetHan(t *testing.T) {
	expired := NewTokenService(&config.Configuration{
		JwtAccessSecret:  "access-secret-test",
		JwtRefreshSecret: "refresh-secret-test",
		JwtAccessExpire:  -1, // Token sinh ra đã hết hạn
		JwtRefreshExpire: 43200,
	})

	token, err := expired.SignAccessToken("665f1c2b9a8d4e0012345678", "Admin")
	require.NoError(t, err)

	_, err = expired.VerifyAccessToken(token)
	assert.True(t, errors.Is(err, common.ErrTokenExpired))
}
