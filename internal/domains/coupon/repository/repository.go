package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/internal/domains/coupon/model"
	gDto "cowork/shared/dto"
	gRepo "cowork/shared/repository"
)

type Coupon interface {
	Insert(ctx context.Context, model model.Coupon) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Coupon, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Coupon, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Coupon]
}

func New(db *postgres.Connection, otel otel.Otel) Coupon {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Coupon](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
