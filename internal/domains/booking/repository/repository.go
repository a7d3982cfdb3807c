package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/internal/domains/booking/model"
	workspaceModel "cowork/internal/domains/workspace/model"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/logger"
	gRepo "cowork/shared/repository"

	"github.com/jmoiron/sqlx"
)

var (
	ErrInsufficientSeats = errors.New("not enough seats left for the selected dates")
	ErrWorkspaceMissing  = errors.New("workspace no longer exists")
)

// Bookings still holding seats overlap [start, end] when they start on or before end and end on or after start.
var bookedSeatsQuery = fmt.Sprintf(
	"SELECT COALESCE(SUM(%[2]s), 0) FROM %[1]s WHERE %[3]s = $1 AND %[4]s <> '%[5]s' AND %[6]s <= $3 AND %[7]s >= $2",
	model.TableName,
	model.FieldSeatsBooked,
	model.FieldWorkspaceID,
	model.FieldStatus,
	model.StatusCancelled,
	model.FieldStartDate,
	model.FieldEndDate,
)

var lockCapacityQuery = fmt.Sprintf(
	"SELECT %s, %s FROM %s WHERE %s = $1 FOR UPDATE",
	workspaceModel.FieldCapacity,
	workspaceModel.FieldIsActive,
	workspaceModel.TableName,
	workspaceModel.FieldID,
)

type lockedWorkspace struct {
	Capacity sql.NullInt64 `db:"capacity"`
	IsActive bool          `db:"is_active"`
}

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	BookedSeats(ctx context.Context, workspaceID string, start, end time.Time) (int, error)
	ReserveSeats(ctx context.Context, booking model.Booking) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// BookedSeats sums the seats of non-cancelled bookings overlapping the period.
func (r *repositoryImpl) BookedSeats(ctx context.Context, workspaceID string, start, end time.Time) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.BookedSeats")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, bookedSeatsQuery)

	var booked int

	if err := r.db.Read.GetContext(ctx, &booked, bookedSeatsQuery, workspaceID, start, end); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum booked seats: %w", err)
	}

	return booked, nil
}

// ReserveSeats inserts the booking while holding a lock on the workspace row, so two
// submissions for the last seats cannot both pass the capacity check.
func (r *repositoryImpl) ReserveSeats(ctx context.Context, booking model.Booking) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ReserveSeats")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var locked lockedWorkspace

		err := tx.GetContext(ctx, &locked, lockCapacityQuery, booking.WorkspaceID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWorkspaceMissing
		}

		if err != nil {
			return fmt.Errorf("failed to lock workspace: %w", err)
		}

		// deactivated after the caller's check
		if !locked.IsActive {
			return ErrWorkspaceMissing
		}

		if capacity := locked.Capacity; capacity.Valid {
			var booked int

			err = tx.GetContext(ctx, &booked, bookedSeatsQuery, booking.WorkspaceID, booking.StartDate, booking.EndDate)
			if err != nil {
				return fmt.Errorf("failed to sum booked seats: %w", err)
			}

			if int64(booked+booking.SeatsBooked) > capacity.Int64 {
				return ErrInsufficientSeats
			}
		}

		return r.InsertTx(ctx, tx, booking) //nolint:wrapcheck
	})
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}
