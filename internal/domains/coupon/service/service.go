package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Coupon=MockCouponService

import (
	"context"
	"fmt"
	"strconv"

	"cowork/infras/otel"
	"cowork/internal/domains/coupon/model"
	"cowork/internal/domains/coupon/model/dto"
	"cowork/internal/domains/coupon/repository"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	"cowork/shared/identity"
	"cowork/shared/metrics"
	gRepo "cowork/shared/repository"
	"cowork/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	MessageInvalidCoupon = "Invalid coupon"
	MessageExpiredCoupon = "Expired coupon"
	MessageMinimumOrder  = "Minimum order not met"

	outcomeApplied  = "applied"
	outcomeInvalid  = "invalid"
	outcomeExpired  = "expired"
	outcomeMinOrder = "min_order"
)

type Coupon interface {
	Resolve(ctx context.Context, code string, subtotal float64) (dto.Resolution, error)
	Create(ctx context.Context, req dto.SaveCouponRequest) (dto.CouponResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCouponsResponse, error)
	Get(ctx context.Context, id string) (dto.CouponResponse, error)
	Update(ctx context.Context, req dto.SaveCouponRequest, id string) error
	UpdateStatus(ctx context.Context, id string, isActive bool) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Coupon
	otel otel.Otel
}

func New(repo repository.Coupon, otel otel.Otel) Coupon {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Resolve validates a code against the catalog and prices it against subtotal.
// Every rejection is a 400 carrying the message shown to the user.
func (s *serviceImpl) Resolve(ctx context.Context, code string, subtotal float64) (res dto.Resolution, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	normalized := model.NormalizeCode(code)
	if normalized == constant.Empty {
		metrics.IncCouponCheck(outcomeInvalid)

		return res, failure.BadRequestFromString(MessageInvalidCoupon) // nolint:wrapcheck
	}

	coupon, err := s.repo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCode,
				Operator: gDto.FilterOperatorEq,
				Value:    normalized,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to look up coupon")

		return res, fmt.Errorf("failed to look up coupon: %w", err)
	}

	switch {
	case coupon.ID == constant.Empty:
		metrics.IncCouponCheck(outcomeInvalid)

		return res, failure.BadRequestFromString(MessageInvalidCoupon) // nolint:wrapcheck
	case coupon.ExpiredOn(timezone.Today()):
		metrics.IncCouponCheck(outcomeExpired)

		return res, failure.BadRequestFromString(MessageExpiredCoupon) // nolint:wrapcheck
	case !coupon.IsActive:
		metrics.IncCouponCheck(outcomeInvalid)

		return res, failure.BadRequestFromString(MessageInvalidCoupon) // nolint:wrapcheck
	case coupon.MinOrderAmount != nil && subtotal < *coupon.MinOrderAmount:
		metrics.IncCouponCheck(outcomeMinOrder)

		return res, failure.BadRequestFromString(fmt.Sprintf("%s: requires at least ₹%s", // nolint:wrapcheck
			MessageMinimumOrder, strconv.FormatFloat(*coupon.MinOrderAmount, 'f', -1, 64)))
	}

	metrics.IncCouponCheck(outcomeApplied)

	res.FromModel(coupon, subtotal)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.SaveCouponRequest) (res dto.CouponResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	coupon, err := req.ToModel(identity.Actor(ctx))
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, coupon); err != nil {
		log.Error().Err(err).Msg("failed to create coupon")

		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("coupon code already exists") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create coupon: %w", err)
	}

	res.FromModel(coupon)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCouponsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count coupons: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get coupons")

		return res, fmt.Errorf("failed to get coupons: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CouponResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	coupon, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get coupon: %w", err)
	}

	if coupon.ID == constant.Empty {
		return res, failure.NotFound("coupon not found") // nolint:wrapcheck
	}

	res.FromModel(coupon)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.SaveCouponRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	fields, err := req.ToUpdate(identity.Actor(ctx))
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	return s.update(ctx, id, fields)
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, isActive bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.update(ctx, id, map[string]any{
		model.FieldIsActive:      isActive,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: identity.Actor(ctx),
	})
}

func (s *serviceImpl) update(ctx context.Context, id string, fields map[string]any) error {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if coupon exists: %w", err)
	}

	if !exist {
		return failure.NotFound("coupon not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update coupon")

		if gRepo.IsUniqueViolation(err) {
			return failure.Conflict("coupon code already exists") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to update coupon: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if coupon exists: %w", err)
	}

	if !exist {
		return failure.NotFound("coupon not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete coupon")

		return fmt.Errorf("failed to delete coupon: %w", err)
	}

	return nil
}
