package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cowork/internal/domains/coupon/model"
	"cowork/internal/domains/coupon/model/dto"
	"cowork/shared/validator"
)

func ptr[T any](v T) *T {
	return &v
}

func TestParseDiscountText(t *testing.T) {
	tests := []struct {
		text    string
		want    model.Discount
		wantErr bool
	}{
		{text: "20%", want: model.Discount{Type: model.DiscountPercentage, Value: 20}},
		{text: " 12.5 % off", want: model.Discount{Type: model.DiscountPercentage, Value: 12.5}},
		{text: "₹500", want: model.Discount{Type: model.DiscountFixed, Value: 500}},
		{text: "Rs. 1,000", want: model.Discount{Type: model.DiscountFixed, Value: 1000}},
		{text: "free", wantErr: true},
		{text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := dto.ParseDiscountText(tt.text)

			if tt.wantErr {
				assert.ErrorIs(t, err, dto.ErrDiscountText)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsedLegacyDiscountIsClamped(t *testing.T) {
	discount, err := dto.ParseDiscountText("₹5000")
	require.NoError(t, err)

	assert.InDelta(t, 1200, discount.Apply(1200), 0.0001)
}

func TestSaveCouponRequest_ToModel(t *testing.T) {
	t.Run("structured discount wins over text", func(t *testing.T) {
		req := dto.SaveCouponRequest{
			Code:          " save10 ",
			Title:         "Ten off",
			DiscountType:  "percentage",
			DiscountValue: ptr(10.0),
			DiscountText:  "₹500",
			ExpiryDate:    "2025-12-31",
		}

		coupon, err := req.ToModel("admin-1")

		require.NoError(t, err)
		assert.Equal(t, "SAVE10", coupon.Code)
		assert.Equal(t, string(model.DiscountPercentage), coupon.DiscountType)
		assert.InDelta(t, 10, coupon.DiscountValue, 0.0001)
		require.NotNil(t, coupon.ExpiryDate)
		assert.Equal(t, "2025-12-31", coupon.ExpiryDate.Format("2006-01-02"))
		assert.True(t, coupon.IsActive)
	})

	t.Run("legacy text", func(t *testing.T) {
		req := dto.SaveCouponRequest{Code: "FLAT", Title: "Flat", DiscountText: "₹500"}

		coupon, err := req.ToModel("admin-1")

		require.NoError(t, err)
		assert.Equal(t, string(model.DiscountFixed), coupon.DiscountType)
		assert.Nil(t, coupon.ExpiryDate)
	})

	t.Run("missing discount", func(t *testing.T) {
		req := dto.SaveCouponRequest{Code: "NONE", Title: "None"}

		_, err := req.ToModel("admin-1")

		assert.ErrorIs(t, err, dto.ErrDiscountRequired)
	})

	t.Run("percentage above 100", func(t *testing.T) {
		req := dto.SaveCouponRequest{Code: "BIG", Title: "Big", DiscountText: "150%"}

		_, err := req.ToModel("admin-1")

		assert.ErrorIs(t, err, dto.ErrPercentageRange)
	})
}

func TestSaveCouponRequest_Validation(t *testing.T) {
	req := dto.SaveCouponRequest{Code: "  ", Title: "x", DiscountType: "bogus", ExpiryDate: "31/12/2025"}

	err := validator.ValidateStruct(&req)

	require.Error(t, err)
	assert.Equal(t, "code is required", err.Error())
}

func TestResolution_FromModel(t *testing.T) {
	var res dto.Resolution

	res.FromModel(model.Coupon{Code: "SAVE10", DiscountType: "percentage", DiscountValue: 10}, 36000)

	assert.InDelta(t, 3600, res.Discount, 0.0001)
	assert.InDelta(t, 32400, res.Total, 0.0001)
	assert.Equal(t, "10% off", res.Label)
}
