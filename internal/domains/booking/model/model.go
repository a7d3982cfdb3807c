package model

import (
	"fmt"
	"time"

	"cowork/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldUserID           = "user_id"
	FieldWorkspaceID      = "workspace_id"
	FieldStartDate        = "start_date"
	FieldEndDate          = "end_date"
	FieldDurationType     = "duration_type"
	FieldSeatsBooked      = "seats_booked"
	FieldTotalAmount      = "total_amount"
	FieldNotes            = "notes"
	FieldPaymentReference = "payment_reference"
	FieldStatus           = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type Booking struct {
	ID               string    `db:"id"`
	UserID           string    `db:"user_id"`
	WorkspaceID      string    `db:"workspace_id"`
	WorkspaceName    *string   `db:"workspace_name"    table:"workspaces" column:"name"`
	StartDate        time.Time `db:"start_date"`
	EndDate          time.Time `db:"end_date"`
	DurationType     string    `db:"duration_type"`
	SeatsBooked      int       `db:"seats_booked"`
	SubtotalAmount   float64   `db:"subtotal_amount"`
	DiscountAmount   float64   `db:"discount_amount"`
	TotalAmount      float64   `db:"total_amount"`
	CouponCode       *string   `db:"coupon_code"`
	Notes            *string   `db:"notes"`
	PaymentReference *string   `db:"payment_reference"`
	Status           string    `db:"status"`
	model.Metadata
}

// GetJoinQuery adds the workspace name to every read.
func (Booking) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN workspaces ON workspaces.id = %s.%s", TableName, FieldWorkspaceID)
}
