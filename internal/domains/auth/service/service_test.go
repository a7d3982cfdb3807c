package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cowork/config"
	"cowork/infras/jwt"
	jwtMocks "cowork/infras/jwt/mocks"
	"cowork/infras/kafka"
	kafkaMocks "cowork/infras/kafka/mocks"
	"cowork/infras/otel/mocks"
	authMocks "cowork/internal/domains/auth/mocks"
	"cowork/internal/domains/auth/model"
	"cowork/internal/domains/auth/model/dto"
	"cowork/internal/domains/auth/service"
	userMocks "cowork/internal/domains/user/mocks"
	userModel "cowork/internal/domains/user/model"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	"cowork/shared/identity"
	"cowork/shared/password"
	"cowork/shared/throttle"
	"cowork/shared/timezone"
)

const (
	testEmail    = "jane@example.com"
	testPassword = "correct-horse"
	testTopic    = "otp.requested"
)

type fixture struct {
	users *userMocks.MockUser
	codes *authMocks.MockOTP
	kafka *kafkaMocks.MockClient
	jwt   *jwtMocks.MockJWT
	svc   service.Auth
}

func newFixture(t *testing.T, limiter *throttle.Limiter) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.OTP.Length = 6
	cfg.OTP.TTLMinutes = 10
	cfg.OTP.ResetWindowMinutes = 15
	cfg.OTP.MinPasswordLength = 8
	cfg.OTP.MaxAttempts = 3
	cfg.Kafka.Topics.OTPRequested = testTopic

	if limiter == nil {
		limiter = throttle.New(60, 10)
	}

	f := fixture{
		users: userMocks.NewMockUser(ctrl),
		codes: authMocks.NewMockOTP(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
		jwt:   jwtMocks.NewMockJWT(ctrl),
	}
	f.svc = service.New(f.users, f.codes, limiter, f.kafka, f.jwt, cfg, mocks.NewOtel())

	return f
}

func mustHash(t *testing.T, value string) string {
	t.Helper()

	hash, err := password.Hash(value)
	require.NoError(t, err)

	return hash
}

func activeUser(t *testing.T) userModel.User {
	return userModel.User{
		ID:         "user-1",
		Email:      testEmail,
		Password:   mustHash(t, testPassword),
		Role:       constant.RoleUser,
		IsVerified: true,
		Active:     true,
	}
}

func tokenPair() *jwt.TokenPair {
	return &jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}
}

// expectIssue records the plain code published for the mail sender.
func (f fixture) expectIssue(t *testing.T, purpose string, published *string) {
	f.codes.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Contains(t, fields, model.FieldConsumedAt)

			return nil
		})

	var stored model.OTP

	f.codes.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, otp model.OTP) error {
			stored = otp

			assert.Equal(t, testEmail, otp.Email)
			assert.Equal(t, purpose, otp.Purpose)
			assert.WithinDuration(t, timezone.Now().Add(10*time.Minute), otp.ExpiresAt, 5*time.Second)

			return nil
		})

	f.kafka.EXPECT().SendMessages(gomock.Any(), testTopic, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			require.Len(t, messages, 1)
			assert.Equal(t, testEmail, messages[0].Key)

			event, ok := messages[0].Value.(dto.OTPRequestedEvent)
			require.True(t, ok)
			assert.Len(t, event.Code, 6)
			assert.NotEqual(t, event.Code, stored.CodeHash)
			assert.NoError(t, password.Verify(event.Code, stored.CodeHash))

			*published = event.Code

			return nil
		})
}

func TestAuthService_SignUp(t *testing.T) {
	t.Run("creates an unverified user and sends a signup code", func(t *testing.T) {
		f := newFixture(t, nil)

		f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.users.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, testEmail, user.Email)
				assert.False(t, user.IsVerified)
				assert.NoError(t, password.Verify(testPassword, user.Password))

				return nil
			})

		var code string
		f.expectIssue(t, model.PurposeSignup, &code)

		res, err := f.svc.SignUp(context.Background(), dto.SignUpRequest{
			Email:    "Jane@Example.com",
			Password: testPassword,
			Name:     "Jane",
		})

		require.NoError(t, err)
		assert.True(t, res.CodeSent)
		assert.Equal(t, testEmail, res.Email)
		assert.NotEmpty(t, code)
	})

	t.Run("email already registered", func(t *testing.T) {
		f := newFixture(t, nil)

		f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.SignUp(context.Background(), dto.SignUpRequest{Email: testEmail, Password: testPassword, Name: "Jane"})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.EqualError(t, err, service.MessageEmailTaken)
	})

	t.Run("password too short never reaches the database", func(t *testing.T) {
		f := newFixture(t, nil)

		_, err := f.svc.SignUp(context.Background(), dto.SignUpRequest{Email: testEmail, Password: "short", Name: "Jane"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.EqualError(t, err, fmt.Sprintf(service.MessagePasswordTooShort, 8))
	})

	t.Run("account is kept when the code cannot be delivered", func(t *testing.T) {
		f := newFixture(t, nil)

		f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.users.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.codes.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.codes.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.kafka.EXPECT().SendMessages(gomock.Any(), testTopic, gomock.Any()).Return(errors.New("broker down"))

		res, err := f.svc.SignUp(context.Background(), dto.SignUpRequest{Email: testEmail, Password: testPassword, Name: "Jane"})

		require.NoError(t, err)
		assert.False(t, res.CodeSent)
		assert.NotEmpty(t, res.UserID)
	})
}

func TestAuthService_SignIn(t *testing.T) {
	tests := []struct {
		name     string
		password string
		user     func(u userModel.User) userModel.User
		wantCode int
	}{
		{
			name:     "unknown email",
			password: testPassword,
			user:     func(userModel.User) userModel.User { return userModel.User{} },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong password",
			password: "wrong-password",
			user:     func(u userModel.User) userModel.User { return u },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "deactivated account",
			password: testPassword,
			user: func(u userModel.User) userModel.User {
				u.Active = false

				return u
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "unverified account",
			password: testPassword,
			user: func(u userModel.User) userModel.User {
				u.IsVerified = false

				return u
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)

			f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.user(activeUser(t)), nil)

			_, err := f.svc.SignIn(context.Background(), dto.SignInRequest{Email: testEmail, Password: tt.password})

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}

	t.Run("success issues tokens and records the login", func(t *testing.T) {
		f := newFixture(t, nil)
		user := activeUser(t)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		f.jwt.EXPECT().
			GenerateTokenPair(gomock.Any(), jwt.Subject{UserID: user.ID, Email: user.Email, Role: user.Role}).
			Return(tokenPair(), nil)
		f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, userModel.FieldLastLogin)

				return nil
			})

		res, err := f.svc.SignIn(context.Background(), dto.SignInRequest{Email: testEmail, Password: testPassword})

		require.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, "refresh", res.RefreshToken)
	})
}

func TestAuthService_SendOTP(t *testing.T) {
	t.Run("login code", func(t *testing.T) {
		f := newFixture(t, nil)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser(t), nil)

		var code string
		f.expectIssue(t, model.PurposeLogin, &code)

		res, err := f.svc.SendOTP(context.Background(), dto.SendOTPRequest{Email: testEmail, Purpose: model.PurposeLogin})

		require.NoError(t, err)
		assert.Equal(t, model.PurposeLogin, res.Purpose)
		assert.Len(t, code, 6)
	})

	t.Run("throttled per email and purpose", func(t *testing.T) {
		f := newFixture(t, throttle.New(1, 1))

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser(t), nil)

		var code string
		f.expectIssue(t, model.PurposeReset, &code)

		_, err := f.svc.SendOTP(context.Background(), dto.SendOTPRequest{Email: testEmail, Purpose: model.PurposeReset})
		require.NoError(t, err)

		_, err = f.svc.SendOTP(context.Background(), dto.SendOTPRequest{Email: testEmail, Purpose: model.PurposeReset})

		assert.Equal(t, http.StatusTooManyRequests, failure.GetCode(err))
	})

	rejections := []struct {
		name     string
		purpose  string
		user     func(u userModel.User) userModel.User
		wantCode int
	}{
		{
			name:     "unknown email",
			purpose:  model.PurposeReset,
			user:     func(userModel.User) userModel.User { return userModel.User{} },
			wantCode: http.StatusNotFound,
		},
		{
			name:     "signup code for a verified account",
			purpose:  model.PurposeSignup,
			user:     func(u userModel.User) userModel.User { return u },
			wantCode: http.StatusConflict,
		},
		{
			name:    "login code for a deactivated account",
			purpose: model.PurposeLogin,
			user: func(u userModel.User) userModel.User {
				u.Active = false

				return u
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)

			f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.user(activeUser(t)), nil)

			_, err := f.svc.SendOTP(context.Background(), dto.SendOTPRequest{Email: testEmail, Purpose: tt.purpose})

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func pendingCode(t *testing.T, purpose, code string, attempts int, expiresIn time.Duration) model.OTP {
	return model.OTP{
		ID:        "otp-1",
		Email:     testEmail,
		Purpose:   purpose,
		CodeHash:  mustHash(t, code),
		Attempts:  attempts,
		ExpiresAt: timezone.Now().Add(expiresIn),
	}
}

func TestAuthService_VerifyOTP(t *testing.T) {
	t.Run("no pending code", func(t *testing.T) {
		f := newFixture(t, nil)

		f.codes.EXPECT().Latest(gomock.Any(), gomock.Any()).Return(model.OTP{}, nil)

		_, err := f.svc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: testEmail, Code: "123456", Purpose: model.PurposeLogin})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.EqualError(t, err, service.MessageCodeInvalid)
	})

	t.Run("expired code", func(t *testing.T) {
		f := newFixture(t, nil)

		f.codes.EXPECT().Latest(gomock.Any(), gomock.Any()).Return(pendingCode(t, model.PurposeLogin, "123456", 0, -time.Minute), nil)

		_, err := f.svc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: testEmail, Code: "123456", Purpose: model.PurposeLogin})

		assert.EqualError(t, err, service.MessageCodeExpired)
	})

	t.Run("wrong code counts an attempt", func(t *testing.T) {
		f := newFixture(t, nil)

		f.codes.EXPECT().Latest(gomock.Any(), gomock.Any()).Return(pendingCode(t, model.PurposeLogin, "123456", 0, time.Minute), nil)
		f.codes.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, 1, fields[model.FieldAttempts])
				assert.NotContains(t, fields, model.FieldConsumedAt)

				return nil
			})

		_, err := f.svc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: testEmail, Code: "654321", Purpose: model.PurposeLogin})

		assert.EqualError(t, err, service.MessageCodeInvalid)
	})

	t.Run("last wrong attempt retires the code", func(t *testing.T) {
		f := newFixture(t, nil)

		f.codes.EXPECT().Latest(gomock.Any(), gomock.Any()).Return(pendingCode(t, model.PurposeLogin, "123456", 2, time.Minute), nil)
		f.codes.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, 3, fields[model.FieldAttempts])
				assert.Contains(t, fields, model.FieldConsumedAt)

				return nil
			})

		_, err := f.svc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: testEmail, Code: "654321", Purpose: model.PurposeLogin})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("reset code only unlocks the password change", func(t *testing.T) {
		f := newFixture(t, nil)

		f.codes.EXPECT().Latest(gomock.Any(), gomock.Any()).Return(pendingCode(t, model.PurposeReset, "123456", 0, time.Minute), nil)
		f.codes.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, model.FieldVerifiedAt)

				return nil
			})

		res, err := f.svc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: testEmail, Code: "123456", Purpose: model.PurposeReset})

		require.NoError(t, err)
		assert.True(t, res.Verified)
		assert.Nil(t, res.Tokens)
	})

	t.Run("signup code verifies the account and signs in", func(t *testing.T) {
		f := newFixture(t, nil)
		user := activeUser(t)
		user.IsVerified = false

		f.codes.EXPECT().Latest(gomock.Any(), gomock.Any()).Return(pendingCode(t, model.PurposeSignup, "123456", 0, time.Minute), nil)
		f.codes.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).Return(tokenPair(), nil)
		f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, true, fields[userModel.FieldIsVerified])
				assert.Contains(t, fields, userModel.FieldLastLogin)

				return nil
			})

		res, err := f.svc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: testEmail, Code: "123456", Purpose: model.PurposeSignup})

		require.NoError(t, err)
		require.NotNil(t, res.Tokens)
		assert.Equal(t, "access", res.Tokens.AccessToken)
	})

	t.Run("login code signs in", func(t *testing.T) {
		f := newFixture(t, nil)

		f.codes.EXPECT().Latest(gomock.Any(), gomock.Any()).Return(pendingCode(t, model.PurposeLogin, "123456", 0, time.Minute), nil)
		f.codes.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser(t), nil)
		f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).Return(tokenPair(), nil)
		f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.NotContains(t, fields, userModel.FieldIsVerified)

				return nil
			})

		res, err := f.svc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: testEmail, Code: "123456", Purpose: model.PurposeLogin})

		require.NoError(t, err)
		require.NotNil(t, res.Tokens)
	})

	t.Run("login code verifies an unverified account", func(t *testing.T) {
		f := newFixture(t, nil)
		user := activeUser(t)
		user.IsVerified = false

		f.codes.EXPECT().Latest(gomock.Any(), gomock.Any()).Return(pendingCode(t, model.PurposeLogin, "123456", 0, time.Minute), nil)
		f.codes.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).Return(tokenPair(), nil)
		f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, true, fields[userModel.FieldIsVerified])

				return nil
			})

		res, err := f.svc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: testEmail, Code: "123456", Purpose: model.PurposeLogin})

		require.NoError(t, err)
		require.NotNil(t, res.Tokens)
	})
}

func verifiedReset(verifiedAgo time.Duration) model.OTP {
	verifiedAt := timezone.Now().Add(-verifiedAgo)

	return model.OTP{ID: "otp-1", Email: testEmail, Purpose: model.PurposeReset, VerifiedAt: &verifiedAt}
}

func TestAuthService_ResetPassword(t *testing.T) {
	t.Run("passwords must match", func(t *testing.T) {
		f := newFixture(t, nil)

		err := f.svc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Email: testEmail, NewPassword: "new-password", ConfirmPassword: "other-password"})

		assert.EqualError(t, err, service.MessagePasswordMismatch)
	})

	t.Run("password too short", func(t *testing.T) {
		f := newFixture(t, nil)

		err := f.svc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Email: testEmail, NewPassword: "short", ConfirmPassword: "short"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	tests := []struct {
		name string
		otp  model.OTP
	}{
		{name: "no verified reset code", otp: model.OTP{}},
		{name: "verified outside the reset window", otp: verifiedReset(20 * time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)

			f.codes.EXPECT().Latest(gomock.Any(), gomock.Any()).Return(tt.otp, nil)

			err := f.svc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Email: testEmail, NewPassword: "new-password", ConfirmPassword: "new-password"})

			assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
			assert.EqualError(t, err, service.MessageResetNotVerified)
		})
	}

	t.Run("stores the new hash and consumes the code", func(t *testing.T) {
		f := newFixture(t, nil)

		f.codes.EXPECT().Latest(gomock.Any(), gomock.Any()).Return(verifiedReset(time.Minute), nil)
		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser(t), nil)
		f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				hash, ok := fields[userModel.FieldPassword].(string)
				require.True(t, ok)
				assert.NoError(t, password.Verify("new-password", hash))

				return nil
			})
		f.codes.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, model.FieldConsumedAt)

				return nil
			})

		err := f.svc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Email: testEmail, NewPassword: "new-password", ConfirmPassword: "new-password"})

		require.NoError(t, err)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("invalid token", func(t *testing.T) {
		f := newFixture(t, nil)

		f.jwt.EXPECT().RefreshTokens(gomock.Any(), "bad").Return(nil, jwt.ErrInvalidToken)

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("new pair", func(t *testing.T) {
		f := newFixture(t, nil)

		f.jwt.EXPECT().RefreshTokens(gomock.Any(), "good").Return(tokenPair(), nil)

		res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "good"})

		require.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	signedIn := identity.WithUser(context.Background(), identity.User{ID: "user-1", Email: testEmail, Role: constant.RoleUser})

	t.Run("requires a signed in user", func(t *testing.T) {
		f := newFixture(t, nil)

		err := f.svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{CurrentPassword: testPassword, NewPassword: "new-password"})

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("wrong current password", func(t *testing.T) {
		f := newFixture(t, nil)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser(t), nil)

		err := f.svc.ChangePassword(signedIn, dto.ChangePasswordRequest{CurrentPassword: "nope-nope", NewPassword: "new-password"})

		assert.EqualError(t, err, service.MessageWrongPassword)
	})

	t.Run("updates the hash", func(t *testing.T) {
		f := newFixture(t, nil)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser(t), nil)
		f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.ChangePassword(signedIn, dto.ChangePasswordRequest{CurrentPassword: testPassword, NewPassword: "new-password"})

		require.NoError(t, err)
	})
}
