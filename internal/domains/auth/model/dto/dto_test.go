package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cowork/infras/jwt"
	"cowork/internal/domains/auth/model"
	"cowork/internal/domains/auth/model/dto"
	"cowork/shared/constant"
)

func TestTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var response dto.TokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestSignUpRequest_ToUserModel(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.SignUpRequest
		wantEmail string
		wantPhone *string
	}{
		{
			name:      "normalises the email and keeps the phone",
			req:       dto.SignUpRequest{Email: "  Jane@Example.COM ", Password: "secret-pass", Name: " Jane ", Phone: "+6281234"},
			wantEmail: "jane@example.com",
			wantPhone: stringPtr("+6281234"),
		},
		{
			name:      "blank phone is stored as null",
			req:       dto.SignUpRequest{Email: "jane@example.com", Password: "secret-pass", Name: "Jane"},
			wantEmail: "jane@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := tt.req.ToUserModel("hashed")

			assert.NotEmpty(t, user.ID)
			assert.Equal(t, tt.wantEmail, user.Email)
			assert.Equal(t, "hashed", user.Password)
			assert.Equal(t, constant.RoleUser, user.Role)
			assert.False(t, user.IsVerified)
			assert.True(t, user.Active)
			assert.Equal(t, tt.wantPhone, user.Phone)
			require.NotNil(t, user.Name)
			assert.Equal(t, "Jane", *user.Name)
			assert.Equal(t, constant.ContextGuest, user.CreatedBy)
		})
	}
}

func TestNewOTP(t *testing.T) {
	expiresAt := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)

	otp := dto.NewOTP("jane@example.com", model.PurposeReset, "hash", expiresAt)

	assert.NotEmpty(t, otp.ID)
	assert.Equal(t, model.PurposeReset, otp.Purpose)
	assert.Equal(t, 0, otp.Attempts)
	assert.Nil(t, otp.VerifiedAt)
	assert.Nil(t, otp.ConsumedAt)
	assert.False(t, otp.Expired(expiresAt.Add(-time.Second)))
	assert.True(t, otp.Expired(expiresAt))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.co", dto.NormalizeEmail(" A@B.co "))
}

func stringPtr(s string) *string {
	return &s
}
