package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"lodge/infras/sqlite"
	"lodge/internal/domains/invoice/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type Invoice interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Invoice) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Invoice, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Invoice, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type Item interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.InvoiceItem) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.InvoiceItem, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Invoice]
	db *sqlite.Connection
}

func New(db *sqlite.Connection) Invoice {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Invoice](model.EntityName, model.TableName, model.FieldID, db),
		db:         db,
	}
}

type itemRepositoryImpl struct {
	gRepo.Repository[model.InvoiceItem]
	db *sqlite.Connection
}

func NewItem(db *sqlite.Connection) Item {
	return &itemRepositoryImpl{
		Repository: gRepo.NewRepository[model.InvoiceItem](model.ItemEntityName, model.ItemTableName, model.FieldItemID, db),
		db:         db,
	}
}
