package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/internal/domains/savedworkspace/model"
	gDto "cowork/shared/dto"
	gRepo "cowork/shared/repository"
)

type SavedWorkspace interface {
	Insert(ctx context.Context, model model.SavedWorkspace) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SavedWorkspace, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SavedWorkspace, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.SavedWorkspace]
}

func New(db *postgres.Connection, otel otel.Otel) SavedWorkspace {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SavedWorkspace](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
