package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"lodge/infras/sqlite"
	invoiceModel "lodge/internal/domains/invoice/model"
	invoiceRepo "lodge/internal/domains/invoice/repository"
	"lodge/internal/domains/payment/model/dto"
	"lodge/internal/domains/payment/repository"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"
	"lodge/shared/validator"
)

type Payment interface {
	Add(ctx context.Context, req dto.CreatePaymentRequest) (dto.AddPaymentResult, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
}

type serviceImpl struct {
	repo        repository.Payment
	invoiceRepo invoiceRepo.Invoice
	conn        *sqlite.Connection
}

func New(repo repository.Payment, invoiceRepo invoiceRepo.Invoice, conn *sqlite.Connection) Payment {
	return &serviceImpl{
		repo:        repo,
		invoiceRepo: invoiceRepo,
		conn:        conn,
	}
}

// Add records a payment and rolls the invoice status forward in the same
// transaction. Overpayment is accepted and flagged so the desk can
// settle the difference; rejecting it would block legitimate deposits.
func (s *serviceImpl) Add(ctx context.Context, req dto.CreatePaymentRequest) (res dto.AddPaymentResult, err error) {
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	invoice, err := s.invoiceRepo.Get(ctx, shared.FilterByID(req.InvoiceID, invoiceModel.FieldID, invoiceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return res, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return res, failure.NotFound(invoiceModel.EntityName) //nolint:wrapcheck
	}

	payment := req.ToModel()

	var paid float64

	err = s.conn.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, payment); err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}

		paid, err = s.repo.SumByInvoiceTx(ctx, tx, invoice.ID)
		if err != nil {
			return fmt.Errorf("failed to sum payments: %w", err)
		}

		mod := map[string]any{
			invoiceModel.FieldStatus: invoiceModel.StatusFor(invoice.TotalAmount, paid),
			constant.FieldModifiedAt: timezone.NowStamp(),
		}

		filter := shared.FilterByID(invoice.ID, invoiceModel.FieldID, invoiceModel.TableName)
		if err := s.invoiceRepo.UpdateTx(ctx, tx, mod, filter); err != nil {
			return fmt.Errorf("failed to update invoice status: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to add payment")

		return res, err //nolint:wrapcheck
	}

	res.Payment.FromModel(payment)
	res.InvoiceStatus = invoiceModel.StatusFor(invoice.TotalAmount, paid)
	res.PaidTotal = paid
	res.Balance = invoice.TotalAmount - paid
	res.Overpaid = paid > invoice.TotalAmount

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total)

	return res, nil
}
