// Package pricing turns a booking period and a monthly rate into a billable amount and a display label.
package pricing

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// DaysPerMonthForDailyRate approximates a month when deriving a daily rate from a monthly one.
// It is not calendar aware; swapping in real month lengths only needs dailyRate to change.
const DaysPerMonthForDailyRate = 30

type DurationType string

const (
	Daily   DurationType = "daily"
	Monthly DurationType = "monthly"
)

func (d DurationType) IsValid() bool {
	return d == Daily || d == Monthly
}

func (d DurationType) unit() string {
	if d == Daily {
		return "day"
	}

	return "month"
}

type WorkspaceType string

const (
	Coworking      WorkspaceType = "coworking"
	ServicedOffice WorkspaceType = "serviced_office"
	PrivateOffice  WorkspaceType = "private_office"
	MeetingRoom    WorkspaceType = "meeting_room"
	TrainingRoom   WorkspaceType = "training_room"
	VirtualOffice  WorkspaceType = "virtual_office"
	DayOffice      WorkspaceType = "day_office"
)

// WorkspaceTypes is the catalog of bookable workspace kinds.
var WorkspaceTypes = []WorkspaceType{
	Coworking,
	ServicedOffice,
	PrivateOffice,
	MeetingRoom,
	TrainingRoom,
	VirtualOffice,
	DayOffice,
}

var dailyCapable = map[WorkspaceType]bool{
	MeetingRoom: true,
	DayOffice:   true,
}

func IsValidWorkspaceType(value string) bool {
	return slices.Contains(WorkspaceTypes, WorkspaceType(value))
}

// AllowedDurations lists the duration modes offered for a workspace type.
func AllowedDurations(workspaceType WorkspaceType) []DurationType {
	if dailyCapable[workspaceType] {
		return []DurationType{Daily, Monthly}
	}

	return []DurationType{Monthly}
}

func IsDurationAllowed(workspaceType WorkspaceType, duration DurationType) bool {
	return slices.Contains(AllowedDurations(workspaceType), duration)
}

type Input struct {
	StartDate      *time.Time
	EndDate        *time.Time
	DurationType   DurationType
	AmountPerMonth float64
	Seats          int
}

// Quote is the priced period. A zero Quote means the input could not be priced.
type Quote struct {
	DurationType DurationType
	Quantity     int
	Label        string
	StartDate    time.Time
	EndDate      time.Time
	DailyRate    float64
	BaseAmount   float64
	Seats        int
	Total        float64
}

func (q Quote) IsZero() bool {
	return q.Quantity == 0
}

// Calculate prices the input. It never fails: a missing start date, an unknown duration
// or a rate that is negative or not finite yields a zero Quote.
func Calculate(in Input) Quote {
	if in.StartDate == nil || !in.DurationType.IsValid() {
		return Quote{}
	}

	if math.IsNaN(in.AmountPerMonth) || math.IsInf(in.AmountPerMonth, 0) || in.AmountPerMonth < 0 {
		return Quote{}
	}

	seats := max(in.Seats, 1)
	start := civil(*in.StartDate)

	quantity := 1
	var end time.Time

	switch {
	case in.EndDate == nil:
		end = DefaultEndDate(start, in.DurationType)
	case in.DurationType == Daily:
		end = civil(*in.EndDate)
		quantity = max(1, daysBetween(start, end)+1)
	default:
		end = civil(*in.EndDate)
		quantity = max(1, monthsBetween(start, end)+1)
	}

	rate := dailyRate(in.AmountPerMonth)

	var base float64
	if in.DurationType == Daily {
		base = math.Round(rate * float64(quantity))
	} else {
		base = in.AmountPerMonth * float64(quantity)
	}

	return Quote{
		DurationType: in.DurationType,
		Quantity:     quantity,
		Label:        Label(quantity, in.DurationType),
		StartDate:    start,
		EndDate:      end,
		DailyRate:    rate,
		BaseAmount:   base,
		Seats:        seats,
		Total:        base * float64(seats),
	}
}

// DefaultEndDate is the end of a one-unit booking: the same day, or one calendar month later.
func DefaultEndDate(start time.Time, duration DurationType) time.Time {
	start = civil(start)
	if duration == Daily {
		return start
	}

	return start.AddDate(0, 1, 0)
}

func Label(quantity int, duration DurationType) string {
	if quantity <= 1 {
		return "1 " + duration.unit()
	}

	return fmt.Sprintf("%d %ss", quantity, duration.unit())
}

func dailyRate(amountPerMonth float64) float64 {
	return amountPerMonth / DaysPerMonthForDailyRate
}

// civil drops clock time and zone so dates compare by calendar day only.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

func monthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// CivilDate exposes the calendar-day normalisation used by Calculate.
func CivilDate(t time.Time) time.Time {
	return civil(t)
}
