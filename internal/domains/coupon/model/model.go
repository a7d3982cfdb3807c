package model

import (
	"math"
	"strconv"
	"strings"
	"time"

	"cowork/shared/model"
)

const (
	TableName  = "special_offers"
	EntityName = "special_offer"

	FieldID             = "id"
	FieldCode           = "code"
	FieldTitle          = "title"
	FieldDescription    = "description"
	FieldDiscountType   = "discount_type"
	FieldDiscountValue  = "discount_value"
	FieldMinOrderAmount = "min_order_amount"
	FieldExpiryDate     = "expiry_date"
	FieldIsActive       = "is_active"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount is either a percentage of the subtotal or a flat amount.
type Discount struct {
	Type  DiscountType
	Value float64
}

// Apply returns the amount taken off subtotal. The result is never negative and never exceeds subtotal.
func (d Discount) Apply(subtotal float64) float64 {
	if subtotal <= 0 || d.Value <= 0 || math.IsNaN(d.Value) {
		return 0
	}

	var amount float64

	switch d.Type {
	case DiscountPercentage:
		amount = math.Round(subtotal * d.Value / 100)
	case DiscountFixed:
		amount = d.Value
	default:
		return 0
	}

	return math.Min(amount, subtotal)
}

// Label is the human form of the discount, e.g. "10% off" or "₹500 off".
func (d Discount) Label() string {
	value := strconv.FormatFloat(math.Round(d.Value*100)/100, 'f', -1, 64)

	if d.Type == DiscountPercentage {
		return value + "% off"
	}

	return "₹" + value + " off"
}

type Coupon struct {
	ID             string     `db:"id"`
	Code           string     `db:"code"`
	Title          string     `db:"title"`
	Description    *string    `db:"description"`
	DiscountType   string     `db:"discount_type"`
	DiscountValue  float64    `db:"discount_value"`
	MinOrderAmount *float64   `db:"min_order_amount"`
	ExpiryDate     *time.Time `db:"expiry_date"`
	IsActive       bool       `db:"is_active"`
	model.Metadata
}

func (c Coupon) Discount() Discount {
	return Discount{Type: DiscountType(c.DiscountType), Value: c.DiscountValue}
}

// ExpiredOn reports whether the coupon's expiry date lies before the given day.
// The expiry day itself is still valid.
func (c Coupon) ExpiredOn(day time.Time) bool {
	if c.ExpiryDate == nil {
		return false
	}

	expiry := time.Date(c.ExpiryDate.Year(), c.ExpiryDate.Month(), c.ExpiryDate.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	return expiry.Before(today)
}

// NormalizeCode is the lookup form of a user-entered code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
