package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Auth=MockAuthService

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"cowork/config"
	"cowork/infras/jwt"
	"cowork/infras/kafka"
	"cowork/infras/otel"
	"cowork/internal/domains/auth/model"
	"cowork/internal/domains/auth/model/dto"
	"cowork/internal/domains/auth/repository"
	userModel "cowork/internal/domains/user/model"
	userDto "cowork/internal/domains/user/model/dto"
	userRepo "cowork/internal/domains/user/repository"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	"cowork/shared/identity"
	"cowork/shared/metrics"
	"cowork/shared/password"
	gRepo "cowork/shared/repository"
	"cowork/shared/throttle"
	"cowork/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	MessageInvalidCredentials = "invalid email or password"
	MessageAccountDisabled    = "user account is deactivated"
	MessageNotVerified        = "please verify your email before signing in"
	MessageEmailTaken         = "email already registered"
	MessageAccountNotFound    = "no account found for this email"
	MessageAlreadyVerified    = "email is already verified"
	MessageTooManyRequests    = "too many code requests, please wait before trying again"
	MessageCodeInvalid        = "invalid or expired code"
	MessageCodeExpired        = "code has expired, please request a new one"
	MessageResetNotVerified   = "please verify the reset code before choosing a new password"
	MessagePasswordMismatch   = "passwords do not match"
	MessagePasswordTooShort   = "password must be at least %d characters"
	MessageWrongPassword      = "current password is incorrect"
	MessageSignIn             = "please sign in"
	MessageInvalidRefresh     = "invalid refresh token"
)

const defaultCodeLength = 6

type Auth interface {
	SignUp(ctx context.Context, req dto.SignUpRequest) (dto.SignUpResponse, error)
	SignIn(ctx context.Context, req dto.SignInRequest) (dto.TokenResponse, error)
	SendOTP(ctx context.Context, req dto.SendOTPRequest) (dto.SendOTPResponse, error)
	VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (dto.VerifyOTPResponse, error)
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	otpRepo    repository.OTP
	limiter    *throttle.Limiter
	kafka      kafka.Client
	jwtService jwt.JWT
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	userRepo userRepo.User,
	otpRepo repository.OTP,
	limiter *throttle.Limiter,
	kafka kafka.Client,
	jwt jwt.JWT,
	cfg *config.Config,
	otel otel.Otel,
) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		otpRepo:    otpRepo,
		limiter:    limiter,
		kafka:      kafka,
		jwtService: jwt,
		cfg:        cfg,
		otel:       otel,
	}
}

// SignUp creates an unverified account and mails a signup code.
func (s *serviceImpl) SignUp(ctx context.Context, req dto.SignUpRequest) (res dto.SignUpResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignUp")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.checkPasswordLength(req.Password); err != nil {
		return res, err
	}

	exists, err := s.userRepo.Exist(ctx, userDto.FilterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict(MessageEmailTaken) // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(hashedPassword)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict(MessageEmailTaken) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	res = dto.SignUpResponse{UserID: user.ID, Email: user.Email}

	// the first code counts towards the resend budget
	s.limiter.Allow(throttleKey(user.Email, model.PurposeSignup))

	if _, issueErr := s.issue(ctx, user.Email, model.PurposeSignup); issueErr != nil {
		log.Warn().Err(issueErr).Str("email", user.Email).Msg("account created but signup code was not sent")

		return res, nil
	}

	res.CodeSent = true

	return res, nil
}

func (s *serviceImpl) SignIn(ctx context.Context, req dto.SignInRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.Get(ctx, userDto.FilterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("sign in attempt with unknown email")

		return res, failure.Unauthorized(MessageInvalidCredentials) // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("sign in attempt with wrong password")

		return res, failure.Unauthorized(MessageInvalidCredentials) // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.Forbidden(MessageAccountDisabled) // nolint:wrapcheck
	}

	if !user.IsVerified {
		return res, failure.Forbidden(MessageNotVerified) // nolint:wrapcheck
	}

	return s.login(ctx, user, nil)
}

// SendOTP mails a fresh code for purpose. Older unused codes of the same purpose stop working.
func (s *serviceImpl) SendOTP(ctx context.Context, req dto.SendOTPRequest) (res dto.SendOTPResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendOTP")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := dto.NormalizeEmail(req.Email)

	if !s.limiter.Allow(throttleKey(email, req.Purpose)) {
		metrics.IncOTP(req.Purpose, "throttled")

		return res, failure.TooManyRequests(MessageTooManyRequests) // nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, userDto.FilterByEmail(email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound(MessageAccountNotFound) // nolint:wrapcheck
	}

	switch req.Purpose {
	case model.PurposeSignup:
		if user.IsVerified {
			return res, failure.Conflict(MessageAlreadyVerified) // nolint:wrapcheck
		}
	default:
		if !user.Active {
			return res, failure.Forbidden(MessageAccountDisabled) // nolint:wrapcheck
		}
	}

	return s.issue(ctx, email, req.Purpose)
}

func (s *serviceImpl) issue(ctx context.Context, email, purpose string) (res dto.SendOTPResponse, err error) {
	code, err := generateCode(s.cfg.OTP.Length)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate otp code")

		return res, fmt.Errorf("failed to generate otp code: %w", err)
	}

	codeHash, err := password.Hash(code)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash otp code")

		return res, fmt.Errorf("failed to hash otp code: %w", err)
	}

	now := timezone.Now()
	expiresAt := now.Add(time.Duration(s.cfg.OTP.TTLMinutes) * time.Minute)

	if err = s.otpRepo.Update(ctx, consumedFields(now), pendingCodes(email, purpose)); err != nil {
		log.Error().Err(err).Msg("failed to retire previous otp codes")

		return res, fmt.Errorf("failed to retire previous otp codes: %w", err)
	}

	if err = s.otpRepo.Insert(ctx, dto.NewOTP(email, purpose, codeHash, expiresAt)); err != nil {
		log.Error().Err(err).Msg("failed to store otp code")

		return res, fmt.Errorf("failed to store otp code: %w", err)
	}

	event := dto.OTPRequestedEvent{Email: email, Purpose: purpose, Code: code, ExpiresAt: expiresAt}

	if err = s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.OTPRequested, kafka.Message{Key: email, Value: event}); err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to publish otp code")

		return res, fmt.Errorf("failed to publish otp code: %w", err)
	}

	metrics.IncOTP(purpose, "sent")

	return dto.SendOTPResponse{Email: email, Purpose: purpose, ExpiresAt: expiresAt}, nil
}

// VerifyOTP checks the newest pending code. Signup and login codes sign the user in.
func (s *serviceImpl) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (res dto.VerifyOTPResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyOTP")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := dto.NormalizeEmail(req.Email)
	now := timezone.Now()

	otp, err := s.otpRepo.Latest(ctx, pendingCodes(email, req.Purpose))
	if err != nil {
		log.Error().Err(err).Msg("failed to get otp code")

		return res, fmt.Errorf("failed to get otp code: %w", err)
	}

	if otp.ID == constant.Empty {
		metrics.IncOTP(req.Purpose, "rejected")

		return res, failure.BadRequestFromString(MessageCodeInvalid) // nolint:wrapcheck
	}

	if otp.Expired(now) {
		metrics.IncOTP(req.Purpose, "expired")

		return res, failure.BadRequestFromString(MessageCodeExpired) // nolint:wrapcheck
	}

	byID := shared.FilterByID(otp.ID, model.FieldID, model.TableName)

	if verifyErr := password.Verify(req.Code, otp.CodeHash); verifyErr != nil {
		metrics.IncOTP(req.Purpose, "rejected")

		if err = s.otpRepo.Update(ctx, s.failedAttemptFields(otp, now), byID); err != nil {
			log.Error().Err(err).Msg("failed to record otp attempt")

			return res, fmt.Errorf("failed to record otp attempt: %w", err)
		}

		return res, failure.BadRequestFromString(MessageCodeInvalid) // nolint:wrapcheck
	}

	if err = s.otpRepo.Update(ctx, map[string]any{
		model.FieldVerifiedAt:    now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: constant.ContextGuest,
	}, byID); err != nil {
		log.Error().Err(err).Msg("failed to mark otp code verified")

		return res, fmt.Errorf("failed to mark otp code verified: %w", err)
	}

	metrics.IncOTP(req.Purpose, "verified")

	res = dto.VerifyOTPResponse{Verified: true, Purpose: req.Purpose}

	if req.Purpose == model.PurposeReset {
		return res, nil
	}

	user, err := s.userRepo.Get(ctx, userDto.FilterByEmail(email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound(MessageAccountNotFound) // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.Forbidden(MessageAccountDisabled) // nolint:wrapcheck
	}

	// A signup or login code proves the caller owns the email.
	var extra map[string]any
	if !user.IsVerified {
		extra = map[string]any{userModel.FieldIsVerified: true}
	}

	tokens, err := s.login(ctx, user, extra)
	if err != nil {
		return res, err
	}

	res.Tokens = &tokens

	return res, nil
}

// ResetPassword needs a reset code verified within the reset window. The code is consumed on success.
func (s *serviceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResetPassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.NewPassword != req.ConfirmPassword {
		return failure.BadRequestFromString(MessagePasswordMismatch) // nolint:wrapcheck
	}

	if err = s.checkPasswordLength(req.NewPassword); err != nil {
		return err
	}

	email := dto.NormalizeEmail(req.Email)
	now := timezone.Now()

	otp, err := s.otpRepo.Latest(ctx, verifiedResetCodes(email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reset code")

		return fmt.Errorf("failed to get reset code: %w", err)
	}

	window := time.Duration(s.cfg.OTP.ResetWindowMinutes) * time.Minute
	if otp.ID == constant.Empty || otp.VerifiedAt == nil || now.Sub(*otp.VerifiedAt) > window {
		return failure.Forbidden(MessageResetNotVerified) // nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, userDto.FilterByEmail(email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound(MessageAccountNotFound) // nolint:wrapcheck
	}

	if err = s.updatePassword(ctx, user.ID, req.NewPassword, user.ID); err != nil {
		return err
	}

	if err = s.otpRepo.Update(ctx, consumedFields(now), shared.FilterByID(otp.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to consume reset code")

		return fmt.Errorf("failed to consume reset code: %w", err)
	}

	return nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized(MessageInvalidRefresh) // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller, ok := identity.FromContext(ctx)
	if !ok {
		return failure.Unauthorized(MessageSignIn) // nolint:wrapcheck
	}

	if err = s.checkPasswordLength(req.NewPassword); err != nil {
		return err
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(caller.ID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound(userModel.EntityName) // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString(MessageWrongPassword) // nolint:wrapcheck
	}

	return s.updatePassword(ctx, user.ID, req.NewPassword, caller.Actor())
}

func (s *serviceImpl) login(ctx context.Context, user userModel.User, extra map[string]any) (res dto.TokenResponse, err error) {
	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, jwt.Subject{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	fields := shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}, user.ID)
	for key, value := range extra {
		fields[key] = value
	}

	if err = s.userRepo.Update(ctx, fields, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) updatePassword(ctx context.Context, userID, newPassword, actor string) error {
	hashedPassword, err := password.Hash(newPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	fields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashedPassword}, actor)

	if err = s.userRepo.Update(ctx, fields, shared.FilterByID(userID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *serviceImpl) checkPasswordLength(value string) error {
	if len(value) < s.cfg.OTP.MinPasswordLength {
		return failure.BadRequestFromString(fmt.Sprintf(MessagePasswordTooShort, s.cfg.OTP.MinPasswordLength)) // nolint:wrapcheck
	}

	return nil
}

// failedAttemptFields counts a wrong guess and retires the code once the attempts run out.
func (s *serviceImpl) failedAttemptFields(otp model.OTP, now time.Time) map[string]any {
	fields := map[string]any{
		model.FieldAttempts:      otp.Attempts + 1,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: constant.ContextGuest,
	}

	if s.cfg.OTP.MaxAttempts > 0 && otp.Attempts+1 >= s.cfg.OTP.MaxAttempts {
		fields[model.FieldConsumedAt] = now
	}

	return fields
}

func consumedFields(now time.Time) map[string]any {
	return map[string]any{
		model.FieldConsumedAt:    now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: constant.ContextGuest,
	}
}

func pendingCodes(email, purpose string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorEq, Value: email, Table: model.TableName},
			gDto.Filter{Field: model.FieldPurpose, Operator: gDto.FilterOperatorEq, Value: purpose, Table: model.TableName},
			gDto.Filter{Field: model.FieldVerifiedAt, Operator: gDto.FilterIsNull, Table: model.TableName},
			gDto.Filter{Field: model.FieldConsumedAt, Operator: gDto.FilterIsNull, Table: model.TableName},
		},
	}
}

func verifiedResetCodes(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorEq, Value: email, Table: model.TableName},
			gDto.Filter{Field: model.FieldPurpose, Operator: gDto.FilterOperatorEq, Value: model.PurposeReset, Table: model.TableName},
			gDto.Filter{Field: model.FieldVerifiedAt, Operator: gDto.FilterIsNotNull, Table: model.TableName},
			gDto.Filter{Field: model.FieldConsumedAt, Operator: gDto.FilterIsNull, Table: model.TableName},
		},
	}
}

func throttleKey(email, purpose string) string {
	return shared.BuildCacheKey("otp", purpose, email)
}

func generateCode(length int) (string, error) {
	if length <= 0 {
		length = defaultCodeLength
	}

	var code strings.Builder

	for range length {
		digit, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to read random digit: %w", err)
		}

		code.WriteByte(byte('0' + digit.Int64()))
	}

	return code.String(), nil
}
