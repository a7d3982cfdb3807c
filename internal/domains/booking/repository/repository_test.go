package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cowork/infras/otel/mocks"
	"cowork/infras/postgres"
	"cowork/internal/domains/booking/model"
	"cowork/internal/domains/booking/repository"
)

const (
	lockQuery = "SELECT capacity, is_active FROM workspaces WHERE id = $1 FOR UPDATE"
	sumQuery  = "SELECT COALESCE(SUM(seats_booked), 0) FROM bookings WHERE workspace_id = $1 AND status <> 'cancelled' AND start_date <= $3 AND end_date >= $2"
)

func newRepository(t *testing.T) (repository.Booking, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func booking(seats int) model.Booking {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	return model.Booking{
		ID:          "b-1",
		UserID:      "u-1",
		WorkspaceID: "ws-1",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 4),
		SeatsBooked: seats,
		Status:      model.StatusPending,
	}
}

func TestRepository_BookedSeats(t *testing.T) {
	repo, mock := newRepository(t)

	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 4)

	mock.ExpectQuery(regexp.QuoteMeta(sumQuery)).
		WithArgs("ws-1", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(7))

	booked, err := repo.BookedSeats(context.Background(), "ws-1", start, end)

	require.NoError(t, err)
	assert.Equal(t, 7, booked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReserveSeats(t *testing.T) {
	t.Run("inserts when seats remain", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
			WithArgs("ws-1").
			WillReturnRows(sqlmock.NewRows([]string{"capacity", "is_active"}).AddRow(10, true))
		mock.ExpectQuery(regexp.QuoteMeta(sumQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(7))
		mock.ExpectExec("INSERT INTO bookings").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.ReserveSeats(context.Background(), booking(3))

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects without inserting when the period is full", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
			WithArgs("ws-1").
			WillReturnRows(sqlmock.NewRows([]string{"capacity", "is_active"}).AddRow(10, true))
		mock.ExpectQuery(regexp.QuoteMeta(sumQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(8))
		mock.ExpectRollback()

		err := repo.ReserveSeats(context.Background(), booking(3))

		require.ErrorIs(t, err, repository.ErrInsufficientSeats)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unlimited capacity skips the sum", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
			WithArgs("ws-1").
			WillReturnRows(sqlmock.NewRows([]string{"capacity", "is_active"}).AddRow(nil, true))
		mock.ExpectExec("INSERT INTO bookings").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.ReserveSeats(context.Background(), booking(50))

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing workspace", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
			WithArgs("ws-1").
			WillReturnRows(sqlmock.NewRows([]string{"capacity", "is_active"}))
		mock.ExpectRollback()

		err := repo.ReserveSeats(context.Background(), booking(1))

		require.ErrorIs(t, err, repository.ErrWorkspaceMissing)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("workspace deactivated before the lock", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
			WithArgs("ws-1").
			WillReturnRows(sqlmock.NewRows([]string{"capacity", "is_active"}).AddRow(10, false))
		mock.ExpectRollback()

		err := repo.ReserveSeats(context.Background(), booking(1))

		require.ErrorIs(t, err, repository.ErrWorkspaceMissing)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
