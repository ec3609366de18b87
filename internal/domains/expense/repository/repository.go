package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/sqlite"
	"lodge/internal/domains/expense/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type Expense interface {
	Insert(ctx context.Context, model model.Expense) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Expense, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Expense]
	db *sqlite.Connection
}

func New(db *sqlite.Connection) Expense {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Expense](model.EntityName, model.TableName, model.FieldID, db),
		db:         db,
	}
}
