package dto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"cowork/internal/domains/coupon/model"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	gModel "cowork/shared/model"
	"cowork/shared/timezone"

	"github.com/google/uuid"
)

var (
	ErrDiscountRequired = errors.New("discount is required")
	ErrDiscountText     = errors.New("discount must look like 20% or ₹500")
	ErrPercentageRange  = errors.New("percentage discount must be between 0 and 100")
)

// ParseDiscountText reads a free-text discount such as "20%", "20% off" or "₹500".
// Text containing a percent sign is a percentage, anything else is a flat amount.
func ParseDiscountText(text string) (model.Discount, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '.' {
			return r
		}

		return -1
	}, text)

	value, err := strconv.ParseFloat(strings.Trim(digits, "."), 64)
	if err != nil {
		return model.Discount{}, ErrDiscountText
	}

	if strings.Contains(text, "%") {
		return model.Discount{Type: model.DiscountPercentage, Value: value}, nil
	}

	return model.Discount{Type: model.DiscountFixed, Value: value}, nil
}

type SaveCouponRequest struct {
	Code           string   `json:"code"             validate:"notblank,max=40"`
	Title          string   `json:"title"            validate:"notblank,max=120"`
	Description    string   `json:"description"      validate:"omitempty,max=500"`
	DiscountType   string   `json:"discount_type"    validate:"omitempty,oneof=percentage fixed"`
	DiscountValue  *float64 `json:"discount_value"   validate:"omitempty,gte=0"`
	DiscountText   string   `json:"discount_text"    validate:"omitempty,max=20"`
	MinOrderAmount *float64 `json:"min_order_amount" validate:"omitempty,gte=0"`
	ExpiryDate     string   `json:"expiry_date"      validate:"omitempty,datetime=2006-01-02"`
	IsActive       *bool    `json:"is_active"`
}

// Discount decides the tagged discount once. The structured pair wins over legacy text.
func (r *SaveCouponRequest) Discount() (discount model.Discount, err error) {
	switch {
	case r.DiscountType != constant.Empty && r.DiscountValue != nil:
		discount = model.Discount{Type: model.DiscountType(r.DiscountType), Value: *r.DiscountValue}
	case strings.TrimSpace(r.DiscountText) != constant.Empty:
		discount, err = ParseDiscountText(r.DiscountText)
		if err != nil {
			return discount, err
		}
	default:
		return discount, ErrDiscountRequired
	}

	if discount.Type == model.DiscountPercentage && discount.Value > 100 {
		return discount, ErrPercentageRange
	}

	return discount, nil
}

func (r *SaveCouponRequest) expiry() (*time.Time, error) {
	if r.ExpiryDate == constant.Empty {
		return nil, nil
	}

	expiry, err := time.Parse(constant.DayFormat, r.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("invalid expiry date: %w", err)
	}

	return &expiry, nil
}

func (r *SaveCouponRequest) ToModel(user string) (model.Coupon, error) {
	discount, err := r.Discount()
	if err != nil {
		return model.Coupon{}, err
	}

	expiry, err := r.expiry()
	if err != nil {
		return model.Coupon{}, err
	}

	now := timezone.Now()

	return model.Coupon{
		ID:             uuid.NewString(),
		Code:           model.NormalizeCode(r.Code),
		Title:          strings.TrimSpace(r.Title),
		Description:    shared.NullIfEmpty(r.Description),
		DiscountType:   string(discount.Type),
		DiscountValue:  discount.Value,
		MinOrderAmount: r.MinOrderAmount,
		ExpiryDate:     expiry,
		IsActive:       r.IsActive == nil || *r.IsActive,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

func (r *SaveCouponRequest) ToUpdate(user string) (map[string]any, error) {
	mod, err := r.ToModel(user)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		model.FieldCode:           mod.Code,
		model.FieldTitle:          mod.Title,
		model.FieldDescription:    mod.Description,
		model.FieldDiscountType:   mod.DiscountType,
		model.FieldDiscountValue:  mod.DiscountValue,
		model.FieldMinOrderAmount: mod.MinOrderAmount,
		model.FieldExpiryDate:     mod.ExpiryDate,
		model.FieldIsActive:       mod.IsActive,
		constant.FieldModifiedAt:  mod.ModifiedAt,
		constant.FieldModifiedBy:  user,
	}, nil
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type ApplyCouponRequest struct {
	Code     string  `json:"code"     validate:"notblank"`
	Subtotal float64 `json:"subtotal" validate:"gte=0"`
}

// Resolution is a coupon applied to a subtotal.
type Resolution struct {
	Code          string  `json:"code"`
	Title         string  `json:"title"`
	Label         string  `json:"label"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
}

func (r *Resolution) FromModel(coupon model.Coupon, subtotal float64) {
	discount := coupon.Discount()

	r.Code = coupon.Code
	r.Title = coupon.Title
	r.Label = discount.Label()
	r.DiscountType = coupon.DiscountType
	r.DiscountValue = coupon.DiscountValue
	r.Subtotal = subtotal
	r.Discount = discount.Apply(subtotal)
	r.Total = subtotal - r.Discount
}

type CouponResponse struct {
	ID             string   `json:"id"`
	Code           string   `json:"code"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	DiscountType   string   `json:"discount_type"`
	DiscountValue  float64  `json:"discount_value"`
	Label          string   `json:"label"`
	MinOrderAmount *float64 `json:"min_order_amount,omitempty"`
	ExpiryDate     string   `json:"expiry_date,omitempty"`
	IsActive       bool     `json:"is_active"`
	gDto.Metadata
}

func (r *CouponResponse) FromModel(model model.Coupon) {
	r.ID = model.ID
	r.Code = model.Code
	r.Title = model.Title
	r.Description = shared.ValueOrEmpty(model.Description)
	r.DiscountType = model.DiscountType
	r.DiscountValue = model.DiscountValue
	r.Label = model.Discount().Label()
	r.MinOrderAmount = model.MinOrderAmount

	if model.ExpiryDate != nil {
		r.ExpiryDate = model.ExpiryDate.Format(constant.DayFormat)
	}

	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetCouponsResponse struct {
	Coupons   []CouponResponse `json:"coupons"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetCouponsResponse) FromModels(models []model.Coupon, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Coupons = make([]CouponResponse, len(models))
	for i, mod := range models {
		r.Coupons[i].FromModel(mod)
	}
}
