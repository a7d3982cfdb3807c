package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cowork/infras/otel/mocks"
	"cowork/infras/postgres"
	"cowork/internal/domains/profile/model"
	"cowork/internal/domains/profile/repository"
)

const upsertQuery = "INSERT INTO profiles (user_id, display_name, email, phone, created_at, modified_at, created_by, modified_by) " +
	"VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT (user_id) DO UPDATE SET " +
	"display_name = EXCLUDED.display_name, email = EXCLUDED.email, phone = EXCLUDED.phone, " +
	"modified_at = EXCLUDED.modified_at, modified_by = EXCLUDED.modified_by"

func newRepository(t *testing.T) (repository.Profile, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func TestRepository_Upsert(t *testing.T) {
	name := "Jane"
	profile := model.Profile{UserID: "u-1", DisplayName: &name}

	t.Run("keyed by user id", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
			WithArgs("u-1", &name, nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg(), "", "").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Upsert(context.Background(), profile))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
			WillReturnError(errors.New("connection reset"))

		err := repo.Upsert(context.Background(), profile)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upsert profile")
	})
}
