package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/internal/domains/auth/model"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	gRepo "cowork/shared/repository"
)

type OTP interface {
	Insert(ctx context.Context, model model.OTP) error
	Latest(ctx context.Context, filter gDto.FilterGroup) (model.OTP, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.OTP]
}

func New(db *postgres.Connection, otel otel.Otel) OTP {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.OTP](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Latest returns the newest code matching filter, or a zero OTP when there is none.
func (r *repositoryImpl) Latest(ctx context.Context, filter gDto.FilterGroup) (model.OTP, error) {
	codes, err := r.GetAll(ctx, gDto.QueryParams{
		Limit:   1,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}, filter)
	if err != nil {
		return model.OTP{}, fmt.Errorf("failed to get latest otp code: %w", err)
	}

	if len(codes) == 0 {
		return model.OTP{}, nil
	}

	return codes[0], nil
}
