package dto

import (
	"time"

	"cowork/internal/domains/booking/model"
	couponDto "cowork/internal/domains/coupon/model/dto"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
)

// QuoteRequest describes a period to price. Seats default to 1.
type QuoteRequest struct {
	WorkspaceID  string `json:"workspace_id"  validate:"required,uuid"`
	StartDate    string `json:"start_date"    validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date"      validate:"omitempty,datetime=2006-01-02"`
	DurationType string `json:"duration_type" validate:"required,oneof=daily monthly"`
	Seats        int    `json:"seats"         validate:"omitempty,min=1,max=1000"`
	CouponCode   string `json:"coupon_code"   validate:"omitempty,max=40"`
}

// Period parses the requested dates. A missing end date yields nil.
func (r *QuoteRequest) Period() (start time.Time, end *time.Time, err error) {
	start, err = time.Parse(constant.DayFormat, r.StartDate)
	if err != nil {
		return start, nil, err // nolint:wrapcheck
	}

	if r.EndDate == constant.Empty {
		return start, nil, nil
	}

	parsed, err := time.Parse(constant.DayFormat, r.EndDate)
	if err != nil {
		return start, nil, err // nolint:wrapcheck
	}

	return start, &parsed, nil
}

func (r *QuoteRequest) SeatCount() int {
	return max(r.Seats, 1)
}

type CreateBookingRequest struct {
	QuoteRequest
	Notes            string `json:"notes"             validate:"omitempty,max=1000"`
	PaymentReference string `json:"payment_reference" validate:"omitempty,max=120"`
}

type AvailabilityRequest struct {
	WorkspaceID string `validate:"required,uuid"`
	StartDate   string `validate:"required,datetime=2006-01-02"`
	EndDate     string `validate:"omitempty,datetime=2006-01-02"`
}

type UpdateBookingRequest struct {
	Status string  `db:"status" json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes  *string `db:"notes"  json:"notes"  validate:"omitempty,max=1000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type QuoteResponse struct {
	WorkspaceID    string                `json:"workspace_id"`
	DurationType   string                `json:"duration_type"`
	StartDate      string                `json:"start_date"`
	EndDate        string                `json:"end_date"`
	Quantity       int                   `json:"quantity"`
	Label          string                `json:"label"`
	DailyRate      float64               `json:"daily_rate"`
	BaseAmount     float64               `json:"base_amount"`
	Seats          int                   `json:"seats"`
	Subtotal       float64               `json:"subtotal"`
	Discount       float64               `json:"discount"`
	Total          float64               `json:"total"`
	Coupon         *couponDto.Resolution `json:"coupon,omitempty"`
	RemainingSeats *int                  `json:"remaining_seats,omitempty"`
}

type AvailabilityResponse struct {
	WorkspaceID    string `json:"workspace_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Capacity       *int   `json:"capacity,omitempty"`
	BookedSeats    int    `json:"booked_seats"`
	RemainingSeats *int   `json:"remaining_seats,omitempty"`
	Unlimited      bool   `json:"unlimited"`
}

type BookingResponse struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	WorkspaceID      string  `json:"workspace_id"`
	WorkspaceName    string  `json:"workspace_name,omitempty"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	DurationType     string  `json:"duration_type"`
	SeatsBooked      int     `json:"seats_booked"`
	SubtotalAmount   float64 `json:"subtotal_amount"`
	DiscountAmount   float64 `json:"discount_amount"`
	TotalAmount      float64 `json:"total_amount"`
	CouponCode       string  `json:"coupon_code,omitempty"`
	Notes            string  `json:"notes,omitempty"`
	PaymentReference string  `json:"payment_reference,omitempty"`
	Status           string  `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.WorkspaceID = model.WorkspaceID
	r.WorkspaceName = shared.ValueOrEmpty(model.WorkspaceName)
	r.StartDate = model.StartDate.Format(constant.DayFormat)
	r.EndDate = model.EndDate.Format(constant.DayFormat)
	r.DurationType = model.DurationType
	r.SeatsBooked = model.SeatsBooked
	r.SubtotalAmount = model.SubtotalAmount
	r.DiscountAmount = model.DiscountAmount
	r.TotalAmount = model.TotalAmount
	r.CouponCode = shared.ValueOrEmpty(model.CouponCode)
	r.Notes = shared.ValueOrEmpty(model.Notes)
	r.PaymentReference = shared.ValueOrEmpty(model.PaymentReference)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// CreatedEvent is published once a booking is stored.
type CreatedEvent struct {
	BookingID    string  `json:"booking_id"`
	UserID       string  `json:"user_id"`
	WorkspaceID  string  `json:"workspace_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DurationType string  `json:"duration_type"`
	Seats        int     `json:"seats"`
	TotalAmount  float64 `json:"total_amount"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

func (e *CreatedEvent) FromModel(model model.Booking) {
	e.BookingID = model.ID
	e.UserID = model.UserID
	e.WorkspaceID = model.WorkspaceID
	e.StartDate = model.StartDate.Format(constant.DayFormat)
	e.EndDate = model.EndDate.Format(constant.DayFormat)
	e.DurationType = model.DurationType
	e.Seats = model.SeatsBooked
	e.TotalAmount = model.TotalAmount
	e.Status = model.Status
	e.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
}
