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
	kafkaMocks "cowork/infras/kafka/mocks"
	"cowork/infras/otel/mocks"
	bookingMocks "cowork/internal/domains/booking/mocks"
	"cowork/internal/domains/booking/model"
	"cowork/internal/domains/booking/model/dto"
	"cowork/internal/domains/booking/repository"
	"cowork/internal/domains/booking/service"
	couponMocks "cowork/internal/domains/coupon/mocks"
	couponDto "cowork/internal/domains/coupon/model/dto"
	couponService "cowork/internal/domains/coupon/service"
	workspaceMocks "cowork/internal/domains/workspace/mocks"
	workspaceModel "cowork/internal/domains/workspace/model"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	"cowork/shared/identity"
	"cowork/shared/inflight"
	inflightMocks "cowork/shared/inflight/mocks"
	"cowork/shared/timezone"
)

const workspaceID = "8f0c5c1e-4a6e-4d4b-9f59-3d3b5a0e7c11"

type fixture struct {
	repo      *bookingMocks.MockBooking
	workspace *workspaceMocks.MockWorkspace
	coupon    *couponMocks.MockCouponService
	guard     *inflightMocks.MockGuard
	kafka     *kafkaMocks.MockClient
	cfg       *config.Config
	service   service.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		workspace: workspaceMocks.NewMockWorkspace(ctrl),
		coupon:    couponMocks.NewMockCouponService(ctrl),
		guard:     inflightMocks.NewMockGuard(ctrl),
		kafka:     kafkaMocks.NewMockClient(ctrl),
		cfg:       &config.Config{},
	}
	f.cfg.Booking.TransactionalSeats = true
	f.cfg.Kafka.Topics.BookingCreated = "booking.created"

	f.service = service.New(f.repo, f.workspace, f.coupon, f.guard, f.kafka, f.cfg, mocks.NewOtel())

	return f
}

func userCtx() context.Context {
	return identity.WithUser(context.Background(), identity.User{ID: "user-1", Email: "a@b.co", Role: constant.RoleUser})
}

func day(offset int) string {
	return timezone.Now().AddDate(0, 0, offset).Format(constant.DayFormat)
}

func meetingRoom(capacity *int) workspaceModel.Workspace {
	return workspaceModel.Workspace{
		ID:             workspaceID,
		Name:           "Board Room",
		WorkspaceType:  "meeting_room",
		AmountPerMonth: 30000,
		Capacity:       capacity,
		IsActive:       true,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestBookingService_Quote(t *testing.T) {
	nextYear := timezone.Now().Year() + 1

	tests := []struct {
		name      string
		workspace workspaceModel.Workspace
		req       dto.QuoteRequest
		wantQty   int
		wantLabel string
		wantTotal float64
		wantEnd   string
	}{
		{
			name:      "single day for two seats",
			workspace: meetingRoom(nil),
			req:       dto.QuoteRequest{WorkspaceID: workspaceID, StartDate: day(1), DurationType: "daily", Seats: 2},
			wantQty:   1,
			wantLabel: "1 day",
			wantTotal: 2000,
			wantEnd:   day(1),
		},
		{
			name:      "five days inclusive",
			workspace: meetingRoom(nil),
			req:       dto.QuoteRequest{WorkspaceID: workspaceID, StartDate: day(1), EndDate: day(5), DurationType: "daily", Seats: 3},
			wantQty:   5,
			wantLabel: "5 days",
			wantTotal: 15000,
			wantEnd:   day(5),
		},
		{
			name: "three calendar months",
			workspace: workspaceModel.Workspace{
				ID: workspaceID, WorkspaceType: "coworking", AmountPerMonth: 12000, IsActive: true,
			},
			req: dto.QuoteRequest{
				WorkspaceID:  workspaceID,
				StartDate:    fmt.Sprintf("%d-01-15", nextYear),
				EndDate:      fmt.Sprintf("%d-03-15", nextYear),
				DurationType: "monthly",
			},
			wantQty:   3,
			wantLabel: "3 months",
			wantTotal: 36000,
			wantEnd:   fmt.Sprintf("%d-03-15", nextYear),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.workspace.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.workspace, nil)

			res, err := f.service.Quote(context.Background(), tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.wantQty, res.Quantity)
			assert.Equal(t, tt.wantLabel, res.Label)
			assert.InDelta(t, tt.wantTotal, res.Subtotal, 0.001)
			assert.InDelta(t, tt.wantTotal, res.Total, 0.001)
			assert.Equal(t, tt.wantEnd, res.EndDate)
			assert.Nil(t, res.Coupon)
		})
	}
}

func TestBookingService_QuoteWithCoupon(t *testing.T) {
	f := newFixture(t)
	nextYear := timezone.Now().Year() + 1

	f.workspace.EXPECT().Get(gomock.Any(), gomock.Any()).Return(workspaceModel.Workspace{
		ID: workspaceID, WorkspaceType: "coworking", AmountPerMonth: 12000, IsActive: true,
	}, nil)
	f.coupon.EXPECT().Resolve(gomock.Any(), "SAVE10", 36000.0).Return(couponDto.Resolution{
		Code: "SAVE10", Subtotal: 36000, Discount: 3600, Total: 32400,
	}, nil)

	res, err := f.service.Quote(context.Background(), dto.QuoteRequest{
		WorkspaceID:  workspaceID,
		StartDate:    fmt.Sprintf("%d-01-15", nextYear),
		EndDate:      fmt.Sprintf("%d-03-15", nextYear),
		DurationType: "monthly",
		CouponCode:   "SAVE10",
	})

	require.NoError(t, err)
	assert.InDelta(t, 36000, res.Subtotal, 0.001)
	assert.InDelta(t, 3600, res.Discount, 0.001)
	assert.InDelta(t, 32400, res.Total, 0.001)
	require.NotNil(t, res.Coupon)
	assert.Equal(t, "SAVE10", res.Coupon.Code)
}

func TestBookingService_QuoteRejected(t *testing.T) {
	tests := []struct {
		name        string
		req         dto.QuoteRequest
		workspace   *workspaceModel.Workspace
		wantCode    int
		wantMessage string
	}{
		{
			name:        "start in the past",
			req:         dto.QuoteRequest{WorkspaceID: workspaceID, StartDate: day(-1), DurationType: "daily"},
			wantCode:    http.StatusBadRequest,
			wantMessage: service.MessageStartInPast,
		},
		{
			name:        "end before start",
			req:         dto.QuoteRequest{WorkspaceID: workspaceID, StartDate: day(3), EndDate: day(2), DurationType: "daily"},
			wantCode:    http.StatusBadRequest,
			wantMessage: service.MessageEndBeforeStart,
		},
		{
			name:      "inactive workspace",
			req:       dto.QuoteRequest{WorkspaceID: workspaceID, StartDate: day(1), DurationType: "daily"},
			workspace: &workspaceModel.Workspace{ID: workspaceID, WorkspaceType: "meeting_room"},
			wantCode:  http.StatusNotFound,
		},
		{
			name:      "missing workspace",
			req:       dto.QuoteRequest{WorkspaceID: workspaceID, StartDate: day(1), DurationType: "daily"},
			workspace: &workspaceModel.Workspace{},
			wantCode:  http.StatusNotFound,
		},
		{
			name: "daily on a monthly only type",
			req:  dto.QuoteRequest{WorkspaceID: workspaceID, StartDate: day(1), DurationType: "daily"},
			workspace: &workspaceModel.Workspace{
				ID: workspaceID, WorkspaceType: "private_office", AmountPerMonth: 9000, IsActive: true,
			},
			wantCode:    http.StatusBadRequest,
			wantMessage: service.MessageDurationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.workspace != nil {
				f.workspace.EXPECT().Get(gomock.Any(), gomock.Any()).Return(*tt.workspace, nil)
			}

			_, err := f.service.Quote(context.Background(), tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, err.Error())
			}
		})
	}
}

func TestBookingService_CreateRequiresIdentity(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Create(context.Background(), dto.CreateBookingRequest{
		QuoteRequest: dto.QuoteRequest{WorkspaceID: workspaceID, StartDate: day(1), DurationType: "daily"},
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestBookingService_Create(t *testing.T) {
	f := newFixture(t)
	released := false

	f.guard.EXPECT().Acquire(gomock.Any(), "booking:user-1:"+workspaceID).Return(func() { released = true }, nil)
	f.workspace.EXPECT().Get(gomock.Any(), gomock.Any()).Return(meetingRoom(ptr(10)), nil)
	f.repo.EXPECT().BookedSeats(gomock.Any(), workspaceID, gomock.Any(), gomock.Any()).Return(6, nil)

	var stored model.Booking
	f.repo.EXPECT().ReserveSeats(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.Booking) error {
		stored = b

		return nil
	})
	f.kafka.EXPECT().SendMessages(gomock.Any(), "booking.created", gomock.Any()).Return(nil)

	res, err := f.service.Create(userCtx(), dto.CreateBookingRequest{
		QuoteRequest: dto.QuoteRequest{WorkspaceID: workspaceID, StartDate: day(1), DurationType: "daily", Seats: 2},
		Notes:        "near the window",
	})

	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	assert.True(t, released)
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, 2, stored.SeatsBooked)
	assert.InDelta(t, 2000, stored.TotalAmount, 0.001)
	assert.Equal(t, model.StatusPending, stored.Status)
	assert.Equal(t, "near the window", *stored.Notes)
	assert.Nil(t, stored.PaymentReference)
	assert.Equal(t, stored.ID, res.ID)
	assert.Equal(t, "Board Room", res.WorkspaceName)
	assert.Equal(t, day(1), res.EndDate)
}

func TestBookingService_CreateWithCouponAndPayment(t *testing.T) {
	f := newFixture(t)
	f.cfg.Booking.TransactionalSeats = false
	nextYear := timezone.Now().Year() + 1

	f.guard.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(func() {}, nil)
	f.workspace.EXPECT().Get(gomock.Any(), gomock.Any()).Return(workspaceModel.Workspace{
		ID: workspaceID, WorkspaceType: "coworking", AmountPerMonth: 12000, IsActive: true,
	}, nil)
	f.coupon.EXPECT().Resolve(gomock.Any(), "save10", 36000.0).Return(couponDto.Resolution{
		Code: "SAVE10", Subtotal: 36000, Discount: 3600, Total: 32400,
	}, nil)

	var stored model.Booking
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.Booking) error {
		stored = b

		return nil
	})
	f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.service.Create(userCtx(), dto.CreateBookingRequest{
		QuoteRequest: dto.QuoteRequest{
			WorkspaceID:  workspaceID,
			StartDate:    fmt.Sprintf("%d-01-15", nextYear),
			EndDate:      fmt.Sprintf("%d-03-15", nextYear),
			DurationType: "monthly",
			CouponCode:   "save10",
		},
		PaymentReference: "pay_123",
	})

	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	assert.InDelta(t, 36000, stored.SubtotalAmount, 0.001)
	assert.InDelta(t, 3600, stored.DiscountAmount, 0.001)
	assert.InDelta(t, 32400, stored.TotalAmount, 0.001)
	assert.Equal(t, "SAVE10", *stored.CouponCode)
	assert.Equal(t, model.StatusConfirmed, stored.Status)
}

func TestBookingService_CreateRejectsSeatsOverRemaining(t *testing.T) {
	f := newFixture(t)

	f.guard.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(func() {}, nil)
	f.workspace.EXPECT().Get(gomock.Any(), gomock.Any()).Return(meetingRoom(ptr(10)), nil)
	f.repo.EXPECT().BookedSeats(gomock.Any(), workspaceID, gomock.Any(), gomock.Any()).Return(9, nil)
	f.repo.EXPECT().ReserveSeats(gomock.Any(), gomock.Any()).Times(0)
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.service.Create(userCtx(), dto.CreateBookingRequest{
		QuoteRequest: dto.QuoteRequest{WorkspaceID: workspaceID, StartDate: day(1), DurationType: "daily", Seats: 2},
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "1 remaining")
}

func TestBookingService_CreateInvalidCouponStoresNothing(t *testing.T) {
	f := newFixture(t)

	f.guard.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(func() {}, nil)
	f.workspace.EXPECT().Get(gomock.Any(), gomock.Any()).Return(meetingRoom(nil), nil)
	f.coupon.EXPECT().Resolve(gomock.Any(), "NOPE", 1000.0).
		Return(couponDto.Resolution{}, failure.BadRequestFromString(couponService.MessageInvalidCoupon))
	f.repo.EXPECT().ReserveSeats(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.service.Create(userCtx(), dto.CreateBookingRequest{
		QuoteRequest: dto.QuoteRequest{WorkspaceID: workspaceID, StartDate: day(1), DurationType: "daily", CouponCode: "NOPE"},
	})

	require.Error(t, err)
	assert.Equal(t, couponService.MessageInvalidCoupon, err.Error())
}

func TestBookingService_CreateInFlight(t *testing.T) {
	f := newFixture(t)

	f.guard.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(nil, inflight.ErrInFlight)

	_, err := f.service.Create(userCtx(), dto.CreateBookingRequest{
		QuoteRequest: dto.QuoteRequest{WorkspaceID: workspaceID, StartDate: day(1), DurationType: "daily"},
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Equal(t, service.MessageInFlight, err.Error())
}

func TestBookingService_CreateReservationErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "seats taken concurrently", err: repository.ErrInsufficientSeats, wantCode: http.StatusConflict},
		{name: "workspace removed", err: repository.ErrWorkspaceMissing, wantCode: http.StatusNotFound},
		{name: "database error", err: errors.New("connection reset"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.guard.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(func() {}, nil)
			f.workspace.EXPECT().Get(gomock.Any(), gomock.Any()).Return(meetingRoom(ptr(4)), nil)
			f.repo.EXPECT().BookedSeats(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
			f.repo.EXPECT().ReserveSeats(gomock.Any(), gomock.Any()).Return(tt.err)

			_, err := f.service.Create(userCtx(), dto.CreateBookingRequest{
				QuoteRequest: dto.QuoteRequest{WorkspaceID: workspaceID, StartDate: day(1), DurationType: "daily"},
			})

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestBookingService_Availability(t *testing.T) {
	f := newFixture(t)

	f.workspace.EXPECT().Get(gomock.Any(), gomock.Any()).Return(meetingRoom(ptr(10)), nil)
	f.repo.EXPECT().BookedSeats(gomock.Any(), workspaceID, gomock.Any(), gomock.Any()).Return(12, nil)

	res, err := f.service.Availability(context.Background(), dto.AvailabilityRequest{
		WorkspaceID: workspaceID,
		StartDate:   day(1),
		EndDate:     day(3),
	})

	require.NoError(t, err)
	assert.Equal(t, 12, res.BookedSeats)
	require.NotNil(t, res.RemainingSeats)
	assert.Equal(t, 0, *res.RemainingSeats)
	assert.False(t, res.Unlimited)
}

func TestBookingService_Get(t *testing.T) {
	booking := model.Booking{ID: "b-1", UserID: "user-1", WorkspaceID: workspaceID, Status: model.StatusPending}

	tests := []struct {
		name     string
		ctx      context.Context
		wantCode int
	}{
		{name: "owner", ctx: userCtx(), wantCode: http.StatusOK},
		{
			name:     "admin",
			ctx:      identity.WithUser(context.Background(), identity.User{ID: "admin-1", Role: constant.RoleAdmin}),
			wantCode: http.StatusOK,
		},
		{
			name:     "someone else",
			ctx:      identity.WithUser(context.Background(), identity.User{ID: "user-2", Role: constant.RoleUser}),
			wantCode: http.StatusNotFound,
		},
		{name: "guest", ctx: context.Background(), wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

			res, err := f.service.Get(tt.ctx, "b-1")

			if tt.wantCode == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, "b-1", res.ID)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestBookingService_GetMine(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{{ID: "b-1"}, {ID: "b-2"}}, nil)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)

	res, err := f.service.GetMine(userCtx(), gDto.QueryParams{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 1, res.TotalPage)
}

func TestBookingService_UpdateStatusMissing(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.service.UpdateStatus(userCtx(), "b-404", model.StatusCancelled)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
