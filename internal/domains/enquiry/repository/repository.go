package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/internal/domains/enquiry/model"
	gDto "cowork/shared/dto"
	gRepo "cowork/shared/repository"
)

type Enquiry interface {
	Insert(ctx context.Context, model model.Enquiry) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Enquiry, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Enquiry, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Enquiry]
}

func New(db *postgres.Connection, otel otel.Otel) Enquiry {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Enquiry](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
