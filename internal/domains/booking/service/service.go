package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cowork/config"
	"cowork/infras/kafka"
	"cowork/infras/otel"
	"cowork/internal/domains/booking/model"
	"cowork/internal/domains/booking/model/dto"
	"cowork/internal/domains/booking/repository"
	couponService "cowork/internal/domains/coupon/service"
	"cowork/internal/domains/pricing"
	workspaceModel "cowork/internal/domains/workspace/model"
	workspaceRepo "cowork/internal/domains/workspace/repository"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	"cowork/shared/identity"
	"cowork/shared/inflight"
	"cowork/shared/metrics"
	"cowork/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	MessageSignIn           = "please sign in to book a workspace"
	MessageStartInPast      = "start date cannot be in the past"
	MessageEndBeforeStart   = "end date cannot be before start date"
	MessageDurationNotFound = "duration type is not available for this workspace"
	MessageNotEnoughSeats   = "not enough seats left for the selected dates"
	MessageInFlight         = "a booking for this workspace is already being submitted"
	MessageUnpriceable      = "unable to price the selected period"

	rejectedPastStart   = "past_start"
	rejectedDateOrder   = "date_order"
	rejectedDuration    = "duration"
	rejectedCapacity    = "capacity"
	rejectedReservation = "reservation"
)

type Booking interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo          repository.Booking
	workspaceRepo workspaceRepo.Workspace
	coupon        couponService.Coupon
	guard         inflight.Guard
	kafka         kafka.Client
	cfg           *config.Config
	otel          otel.Otel
}

func New(
	repo repository.Booking,
	workspaceRepo workspaceRepo.Workspace,
	coupon couponService.Coupon,
	guard inflight.Guard,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:          repo,
		workspaceRepo: workspaceRepo,
		coupon:        coupon,
		guard:         guard,
		kafka:         kafka,
		cfg:           cfg,
		otel:          otel,
	}
}

// priced is a request checked against its workspace and run through the calculator.
type priced struct {
	workspace workspaceModel.Workspace
	quote     pricing.Quote
	remaining *int
}

func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p, err := s.price(ctx, req)
	if err != nil {
		return res, err
	}

	res = quoteResponse(req, p)

	if req.CouponCode == constant.Empty {
		return res, nil
	}

	resolution, err := s.coupon.Resolve(ctx, req.CouponCode, p.quote.Total)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	res.Coupon = &resolution
	res.Discount = resolution.Discount
	res.Total = resolution.Total

	return res, nil
}

func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, err := time.Parse(constant.DayFormat, req.StartDate)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	end := start
	if req.EndDate != constant.Empty {
		end, err = time.Parse(constant.DayFormat, req.EndDate)
		if err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}
	}

	if end.Before(start) {
		return res, failure.BadRequestFromString(MessageEndBeforeStart) // nolint:wrapcheck
	}

	workspace, err := s.activeWorkspace(ctx, req.WorkspaceID)
	if err != nil {
		return res, err
	}

	booked, err := s.repo.BookedSeats(ctx, workspace.ID, start, end)
	if err != nil {
		log.Error().Err(err).Str("workspace_id", workspace.ID).Msg("failed to sum booked seats")

		return res, fmt.Errorf("failed to sum booked seats: %w", err)
	}

	res.WorkspaceID = workspace.ID
	res.StartDate = start.Format(constant.DayFormat)
	res.EndDate = end.Format(constant.DayFormat)
	res.Capacity = workspace.Capacity
	res.BookedSeats = booked
	res.RemainingSeats = remainingSeats(workspace.Capacity, booked)
	res.Unlimited = workspace.Capacity == nil

	return res, nil
}

// Create stores one booking for the caller. Every precondition is checked before the single write;
// a repeated submission for the same workspace is refused while the first is still running.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, ok := identity.FromContext(ctx)
	if !ok {
		return res, failure.Unauthorized(MessageSignIn) // nolint:wrapcheck
	}

	release, err := s.guard.Acquire(ctx, shared.BuildCacheKey(model.EntityName, user.ID, req.WorkspaceID))
	if err != nil {
		if errors.Is(err, inflight.ErrInFlight) {
			return res, failure.Conflict(MessageInFlight) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to acquire booking guard")

		return res, fmt.Errorf("failed to acquire booking guard: %w", err)
	}
	defer release()

	p, err := s.price(ctx, req.QuoteRequest)
	if err != nil {
		return res, err
	}

	seats := req.SeatCount()
	if p.remaining != nil && seats > *p.remaining {
		metrics.IncBookingRejected(rejectedCapacity)

		return res, failure.BadRequestFromString(fmt.Sprintf("%s: %d remaining", MessageNotEnoughSeats, *p.remaining)) // nolint:wrapcheck
	}

	booking := model.Booking{
		ID:               uuid.NewString(),
		UserID:           user.ID,
		WorkspaceID:      p.workspace.ID,
		StartDate:        p.quote.StartDate,
		EndDate:          p.quote.EndDate,
		DurationType:     string(p.quote.DurationType),
		SeatsBooked:      p.quote.Seats,
		SubtotalAmount:   p.quote.Total,
		TotalAmount:      p.quote.Total,
		Notes:            shared.NullIfEmpty(req.Notes),
		PaymentReference: shared.NullIfEmpty(req.PaymentReference),
		Status:           model.StatusPending,
	}

	if req.CouponCode != constant.Empty {
		resolution, resolveErr := s.coupon.Resolve(ctx, req.CouponCode, p.quote.Total)
		if resolveErr != nil {
			return res, resolveErr // nolint:wrapcheck
		}

		booking.CouponCode = &resolution.Code
		booking.DiscountAmount = resolution.Discount
		booking.TotalAmount = resolution.Total
	}

	if booking.PaymentReference != nil {
		booking.Status = model.StatusConfirmed
	}

	now := timezone.Now()
	booking.CreatedAt = now
	booking.ModifiedAt = now
	booking.CreatedBy = user.Actor()
	booking.ModifiedBy = user.Actor()

	if err = s.store(ctx, booking); err != nil {
		return res, err
	}

	metrics.IncBookingCreated(booking.DurationType, booking.Status)

	go func() {
		c := context.WithoutCancel(ctx)

		var event dto.CreatedEvent
		event.FromModel(booking)

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingCreated, kafka.Message{Key: booking.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking created event")
		}
	}()

	booking.WorkspaceName = &p.workspace.Name
	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) store(ctx context.Context, booking model.Booking) error {
	if !s.cfg.Booking.TransactionalSeats {
		if err := s.repo.Insert(ctx, booking); err != nil {
			log.Error().Err(err).Msg("failed to create booking")

			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	}

	err := s.repo.ReserveSeats(ctx, booking)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrInsufficientSeats):
		metrics.IncBookingRejected(rejectedReservation)

		return failure.Conflict(MessageNotEnoughSeats) // nolint:wrapcheck
	case errors.Is(err, repository.ErrWorkspaceMissing):
		return failure.NotFound(workspaceModel.EntityName) // nolint:wrapcheck
	default:
		log.Error().Err(err).Msg("failed to reserve seats")

		return fmt.Errorf("failed to reserve seats: %w", err)
	}
}

// price validates the period against the workspace and computes the undiscounted quote.
func (s *serviceImpl) price(ctx context.Context, req dto.QuoteRequest) (p priced, err error) {
	start, end, err := req.Period()
	if err != nil {
		return p, failure.BadRequest(err) // nolint:wrapcheck
	}

	today := timezone.Today()
	if pricing.CivilDate(start).Before(today) {
		metrics.IncBookingRejected(rejectedPastStart)

		return p, failure.BadRequestFromString(MessageStartInPast) // nolint:wrapcheck
	}

	if end != nil && pricing.CivilDate(*end).Before(pricing.CivilDate(start)) {
		metrics.IncBookingRejected(rejectedDateOrder)

		return p, failure.BadRequestFromString(MessageEndBeforeStart) // nolint:wrapcheck
	}

	p.workspace, err = s.activeWorkspace(ctx, req.WorkspaceID)
	if err != nil {
		return p, err
	}

	duration := pricing.DurationType(req.DurationType)
	if !pricing.IsDurationAllowed(pricing.WorkspaceType(p.workspace.WorkspaceType), duration) {
		metrics.IncBookingRejected(rejectedDuration)

		return p, failure.BadRequestFromString(MessageDurationNotFound) // nolint:wrapcheck
	}

	p.quote = pricing.Calculate(pricing.Input{
		StartDate:      &start,
		EndDate:        end,
		DurationType:   duration,
		AmountPerMonth: p.workspace.AmountPerMonth,
		Seats:          req.SeatCount(),
	})
	if p.quote.IsZero() {
		return p, failure.BadRequestFromString(MessageUnpriceable) // nolint:wrapcheck
	}

	if p.workspace.Capacity == nil {
		return p, nil
	}

	booked, err := s.repo.BookedSeats(ctx, p.workspace.ID, p.quote.StartDate, p.quote.EndDate)
	if err != nil {
		log.Error().Err(err).Str("workspace_id", p.workspace.ID).Msg("failed to sum booked seats")

		return p, fmt.Errorf("failed to sum booked seats: %w", err)
	}

	p.remaining = remainingSeats(p.workspace.Capacity, booked)

	return p, nil
}

func (s *serviceImpl) activeWorkspace(ctx context.Context, id string) (workspaceModel.Workspace, error) {
	workspace, err := s.workspaceRepo.Get(ctx, shared.FilterByID(id, workspaceModel.FieldID, workspaceModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("workspace_id", id).Msg("failed to get workspace")

		return workspace, fmt.Errorf("failed to get workspace: %w", err)
	}

	if !workspace.Bookable() {
		return workspace, failure.NotFound(workspaceModel.EntityName) // nolint:wrapcheck
	}

	return workspace, nil
}

func remainingSeats(capacity *int, booked int) *int {
	if capacity == nil {
		return nil
	}

	remaining := max(*capacity-booked, 0)

	return &remaining
}

func quoteResponse(req dto.QuoteRequest, p priced) dto.QuoteResponse {
	return dto.QuoteResponse{
		WorkspaceID:    p.workspace.ID,
		DurationType:   string(p.quote.DurationType),
		StartDate:      p.quote.StartDate.Format(constant.DayFormat),
		EndDate:        p.quote.EndDate.Format(constant.DayFormat),
		Quantity:       p.quote.Quantity,
		Label:          p.quote.Label,
		DailyRate:      p.quote.DailyRate,
		BaseAmount:     p.quote.BaseAmount,
		Seats:          req.SeatCount(),
		Subtotal:       p.quote.Total,
		Total:          p.quote.Total,
		RemainingSeats: p.remaining,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	res.FromModels(bookings, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, ok := identity.FromContext(ctx)
	if !ok {
		return res, failure.Unauthorized(MessageSignIn) // nolint:wrapcheck
	}

	return s.GetAll(ctx, req, shared.FilterByID(user.ID, model.FieldUserID, model.TableName))
}

// Get returns a booking to an admin or to its owner. Anyone else sees not found.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	user, _ := identity.FromContext(ctx)
	if booking.ID == constant.Empty || (!user.IsAdmin() && booking.UserID != user.ID) {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureExists(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, identity.Actor(ctx)),
		shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureExists(ctx, id); err != nil {
		return err
	}

	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: identity.Actor(ctx),
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureExists(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) ensureExists(ctx context.Context, id string) error {
	exists, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking")

		return fmt.Errorf("failed to check booking: %w", err)
	}

	if !exists {
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	return nil
}
