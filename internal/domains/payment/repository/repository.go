package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lodge/infras/sqlite"
	"lodge/internal/domains/payment/model"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

type Payment interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Payment) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	SumByInvoice(ctx context.Context, invoiceID string) (float64, error)
	SumByInvoiceTx(ctx context.Context, sqltx *sqlx.Tx, invoiceID string) (float64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db *sqlite.Connection
}

func New(db *sqlite.Connection) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db),
		db:         db,
	}
}

const sumByInvoiceQuery = "SELECT IFNULL(SUM(amount), 0) FROM payments WHERE invoice_id = ?"

func (repo *repositoryImpl) SumByInvoice(ctx context.Context, invoiceID string) (float64, error) {
	return repo.sumByInvoice(ctx, repo.db.DB, invoiceID)
}

func (repo *repositoryImpl) SumByInvoiceTx(ctx context.Context, sqltx *sqlx.Tx, invoiceID string) (float64, error) {
	return repo.sumByInvoice(ctx, sqltx, invoiceID)
}

func (repo *repositoryImpl) sumByInvoice(ctx context.Context, q sqlx.QueryerContext, invoiceID string) (float64, error) {
	var sum float64

	err := sqlx.GetContext(ctx, q, &sum, sumByInvoiceQuery, invoiceID)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to sum payments (%s): %w", model.EntityName, err)
	}

	return sum, nil
}
