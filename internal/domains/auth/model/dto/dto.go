package dto

import (
	"strings"
	"time"

	"cowork/infras/jwt"
	"cowork/internal/domains/auth/model"
	userModel "cowork/internal/domains/user/model"
	"cowork/shared"
	"cowork/shared/constant"
	gModel "cowork/shared/model"
	"cowork/shared/timezone"

	"github.com/google/uuid"
)

type SignUpRequest struct {
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name"     validate:"required,max=120"`
	Phone    string `json:"phone"    validate:"omitempty,max=20"`
}

func (r *SignUpRequest) ToUserModel(hashedPassword string) userModel.User {
	now := timezone.Now()

	name := strings.TrimSpace(r.Name)

	return userModel.User{
		ID:         uuid.NewString(),
		Email:      NormalizeEmail(r.Email),
		Password:   hashedPassword,
		Role:       constant.RoleUser,
		Name:       &name,
		Phone:      shared.NullIfEmpty(r.Phone),
		IsVerified: false,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

type SignInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SendOTPRequest struct {
	Email   string `json:"email"   validate:"required,email"`
	Purpose string `json:"purpose" validate:"required,oneof=signup login reset"`
}

type VerifyOTPRequest struct {
	Email   string `json:"email"   validate:"required,email"`
	Code    string `json:"code"    validate:"required,numeric,min=4,max=10"`
	Purpose string `json:"purpose" validate:"required,oneof=signup login reset"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email"            validate:"required,email"`
	NewPassword     string `json:"new_password"     validate:"required,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *TokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

// SignUpResponse reports whether the signup code went out. When it did not, the client asks for
// a new one through SendOTP.
type SignUpResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	CodeSent bool   `json:"code_sent"`
}

type SendOTPResponse struct {
	Email     string    `json:"email"`
	Purpose   string    `json:"purpose"`
	ExpiresAt time.Time `json:"expires_at"`
}

// VerifyOTPResponse carries tokens for the signup and login purposes. A verified reset code
// only unlocks ResetPassword.
type VerifyOTPResponse struct {
	Verified bool           `json:"verified"`
	Purpose  string         `json:"purpose"`
	Tokens   *TokenResponse `json:"tokens,omitempty"`
}

// OTPRequestedEvent is published for the mail sender. It is the only place the plain code travels.
type OTPRequestedEvent struct {
	Email     string    `json:"email"`
	Purpose   string    `json:"purpose"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewOTP(email, purpose, codeHash string, expiresAt time.Time) model.OTP {
	now := timezone.Now()

	return model.OTP{
		ID:        uuid.NewString(),
		Email:     email,
		Purpose:   purpose,
		CodeHash:  codeHash,
		ExpiresAt: expiresAt,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
