package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/internal/domains/serviceoption/model"
	gDto "cowork/shared/dto"
	gRepo "cowork/shared/repository"
)

type ServiceOption interface {
	Insert(ctx context.Context, model model.ServiceOption) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServiceOption, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServiceOption, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ServiceOption]
}

func New(db *postgres.Connection, otel otel.Otel) ServiceOption {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ServiceOption](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
