package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/internal/domains/profile/model"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/logger"
	gRepo "cowork/shared/repository"
)

var upsertColumns = []string{
	model.FieldDisplayName,
	model.FieldEmail,
	model.FieldPhone,
	constant.FieldModifiedAt,
	constant.FieldModifiedBy,
}

type Profile interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Profile, error)
	Upsert(ctx context.Context, profile model.Profile) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Profile]
	db          *postgres.Connection
	otel        otel.Otel
	upsertQuery string
}

func New(db *postgres.Connection, otel otel.Otel) Profile {
	repo := gRepo.NewRepository[model.Profile](model.EntityName, model.TableName, model.FieldUserID, db, otel)

	return &repositoryImpl{
		Repository:  repo,
		db:          db,
		otel:        otel,
		upsertQuery: buildUpsertQuery(repo.InsertColumns),
	}
}

func buildUpsertQuery(insertColumns []string) string {
	placeholders := make([]string, len(insertColumns))
	for i, col := range insertColumns {
		placeholders[i] = ":" + col
	}

	updates := make([]string, len(upsertColumns))
	for i, col := range upsertColumns {
		updates[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		model.TableName,
		strings.Join(insertColumns, ", "),
		strings.Join(placeholders, ", "),
		model.FieldUserID,
		strings.Join(updates, ", "),
	)
}

// Upsert writes the profile keyed by user id. created_at and created_by keep their first values.
func (r *repositoryImpl) Upsert(ctx context.Context, profile model.Profile) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".profile.Upsert")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, r.upsertQuery)

	if _, err := r.db.Write.NamedExecContext(ctx, r.upsertQuery, profile); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}
