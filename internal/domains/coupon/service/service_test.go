package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cowork/infras/otel/mocks"
	couponMocks "cowork/internal/domains/coupon/mocks"
	"cowork/internal/domains/coupon/model"
	"cowork/internal/domains/coupon/model/dto"
	"cowork/internal/domains/coupon/service"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	"cowork/shared/timezone"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCouponService_Resolve(t *testing.T) {
	yesterday := timezone.Now().AddDate(0, 0, -1)
	nextWeek := timezone.Now().AddDate(0, 0, 7)

	tests := []struct {
		name         string
		code         string
		subtotal     float64
		found        model.Coupon
		wantDiscount float64
		wantTotal    float64
		wantMessage  string
	}{
		{
			name:         "percentage coupon",
			code:         " save10 ",
			subtotal:     36000,
			found:        model.Coupon{ID: "c-1", Code: "SAVE10", DiscountType: "percentage", DiscountValue: 10, IsActive: true, ExpiryDate: &nextWeek},
			wantDiscount: 3600,
			wantTotal:    32400,
		},
		{
			name:         "fixed coupon clamped to subtotal",
			code:         "FLAT5000",
			subtotal:     1200,
			found:        model.Coupon{ID: "c-2", Code: "FLAT5000", DiscountType: "fixed", DiscountValue: 5000, IsActive: true},
			wantDiscount: 1200,
			wantTotal:    0,
		},
		{
			name:        "unknown code",
			code:        "NOPE",
			subtotal:    1000,
			found:       model.Coupon{},
			wantMessage: service.MessageInvalidCoupon,
		},
		{
			name:        "inactive coupon",
			code:        "OLD",
			subtotal:    1000,
			found:       model.Coupon{ID: "c-3", Code: "OLD", DiscountType: "fixed", DiscountValue: 100},
			wantMessage: service.MessageInvalidCoupon,
		},
		{
			name:        "expired active coupon",
			code:        "GONE",
			subtotal:    1000,
			found:       model.Coupon{ID: "c-4", Code: "GONE", DiscountType: "fixed", DiscountValue: 100, IsActive: true, ExpiryDate: &yesterday},
			wantMessage: service.MessageExpiredCoupon,
		},
		{
			name:        "expired inactive coupon",
			code:        "GONE",
			subtotal:    1000,
			found:       model.Coupon{ID: "c-4", Code: "GONE", DiscountType: "fixed", DiscountValue: 100, ExpiryDate: &yesterday},
			wantMessage: service.MessageExpiredCoupon,
		},
		{
			name:        "minimum order not met",
			code:        "BIG",
			subtotal:    1000,
			found:       model.Coupon{ID: "c-5", Code: "BIG", DiscountType: "percentage", DiscountValue: 5, IsActive: true, MinOrderAmount: ptr(5000.0)},
			wantMessage: "Minimum order not met: requires at least ₹5000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := couponMocks.NewMockCoupon(ctrl)
			svc := service.New(mockRepo, mocks.NewOtel())

			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Coupon, error) {
					where, args := filter.GetWhereClause()
					assert.Contains(t, where, "special_offers.code = :code")
					assert.Equal(t, model.NormalizeCode(tt.code), args["code"])

					return tt.found, nil
				})

			res, err := svc.Resolve(context.Background(), tt.code, tt.subtotal)

			if tt.wantMessage != "" {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.Equal(t, tt.wantMessage, err.Error())

				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.wantDiscount, res.Discount, 0.0001)
			assert.InDelta(t, tt.wantTotal, res.Total, 0.0001)
			assert.GreaterOrEqual(t, res.Total, 0.0)
		})
	}
}

func TestCouponService_ResolveIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := couponMocks.NewMockCoupon(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	coupon := model.Coupon{ID: "c-1", Code: "SAVE10", DiscountType: "percentage", DiscountValue: 10, IsActive: true}
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(coupon, nil).Times(2)

	first, err := svc.Resolve(context.Background(), "SAVE10", 36000)
	require.NoError(t, err)

	second, err := svc.Resolve(context.Background(), "save10", 36000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCouponService_ResolveBlankCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.New(couponMocks.NewMockCoupon(ctrl), mocks.NewOtel())

	_, err := svc.Resolve(context.Background(), "   ", 1000)

	require.Error(t, err)
	assert.Equal(t, service.MessageInvalidCoupon, err.Error())
}

func TestCouponService_Create(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.SaveCouponRequest
		insert   error
		wantCode int
	}{
		{
			name: "legacy text stored as tagged discount",
			req:  dto.SaveCouponRequest{Code: "flat500", Title: "Flat", DiscountText: "₹500"},
		},
		{
			name:     "duplicate code",
			req:      dto.SaveCouponRequest{Code: "SAVE10", Title: "Ten", DiscountText: "10%"},
			insert:   &pq.Error{Code: "23505"},
			wantCode: http.StatusConflict,
		},
		{
			name:     "database error",
			req:      dto.SaveCouponRequest{Code: "SAVE10", Title: "Ten", DiscountText: "10%"},
			insert:   errors.New("database error"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := couponMocks.NewMockCoupon(ctrl)
			svc := service.New(mockRepo, mocks.NewOtel())

			mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(tt.insert)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "FLAT500", res.Code)
			assert.Equal(t, "fixed", res.DiscountType)
			assert.Equal(t, "₹500 off", res.Label)
		})
	}
}

func TestCouponService_CreateWithoutDiscount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.New(couponMocks.NewMockCoupon(ctrl), mocks.NewOtel())

	_, err := svc.Create(context.Background(), dto.SaveCouponRequest{Code: "X", Title: "X"})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestCouponService_UpdateStatusMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := couponMocks.NewMockCoupon(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := svc.UpdateStatus(context.Background(), "missing", false)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
