package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/sqlite"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepo "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/invoice/model"
	"lodge/internal/domains/invoice/model/dto"
	"lodge/internal/domains/invoice/repository"
	orderModel "lodge/internal/domains/order/model"
	orderRepo "lodge/internal/domains/order/repository"
	paymentModel "lodge/internal/domains/payment/model"
	paymentDto "lodge/internal/domains/payment/model/dto"
	paymentRepo "lodge/internal/domains/payment/repository"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"
	"lodge/shared/validator"
)

type Invoice interface {
	Generate(ctx context.Context, req dto.GenerateInvoiceRequest) (dto.InvoiceResponse, error)
	Show(ctx context.Context, id string) (dto.InvoiceDetailResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInvoicesResponse, error)
}

type serviceImpl struct {
	repo        repository.Invoice
	itemRepo    repository.Item
	bookingRepo bookingRepo.Booking
	orderRepo   orderRepo.Order
	paymentRepo paymentRepo.Payment
	conn        *sqlite.Connection
	cfg         *config.Config
}

func New(
	repo repository.Invoice,
	itemRepo repository.Item,
	bookingRepo bookingRepo.Booking,
	orderRepo orderRepo.Order,
	paymentRepo paymentRepo.Payment,
	conn *sqlite.Connection,
	cfg *config.Config,
) Invoice {
	return &serviceImpl{
		repo:        repo,
		itemRepo:    itemRepo,
		bookingRepo: bookingRepo,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		conn:        conn,
		cfg:         cfg,
	}
}

// Generate freezes the booking's order lines into an invoice. A booking
// gets at most one invoice; regeneration is rejected rather than merged.
func (s *serviceImpl) Generate(ctx context.Context, req dto.GenerateInvoiceRequest) (res dto.InvoiceResponse, err error) {
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(bookingModel.EntityName) //nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByField(model.FieldBookingID, model.TableName, req.BookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if invoice exists")

		return res, fmt.Errorf("failed to check if invoice exists: %w", err)
	}

	if exist {
		return res, failure.Conflictf("invoice already exists for booking %s", req.BookingID) //nolint:wrapcheck
	}

	orders, err := s.orderRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: orderModel.TableName + "." + constant.FieldCreatedAt, SortDir: gDto.SortDirAsc},
		shared.FilterByField(orderModel.FieldBookingID, orderModel.TableName, req.BookingID),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, fmt.Errorf("failed to get orders: %w", err)
	}

	issueDate := req.IssueDate
	if issueDate == constant.Empty {
		issueDate = timezone.Today()
	}

	issued, err := timezone.ParseDate(issueDate)
	if err != nil {
		return res, failure.Validation(err) //nolint:wrapcheck
	}

	dueDate := req.DueDate
	if dueDate == constant.Empty {
		dueDate = timezone.FormatDate(issued.AddDate(0, 0, s.cfg.Invoice.DueDays))
	}

	invoice := req.ToModel(issueDate, dueDate, 0)

	items, total := dto.ItemsFromOrders(invoice.ID, orders)
	invoice.TotalAmount = total

	err = s.conn.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, invoice); err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		if err := s.itemRepo.InsertBulkTx(ctx, tx, items); err != nil {
			return fmt.Errorf("failed to create invoice items: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate invoice")

		return res, err //nolint:wrapcheck
	}

	invoice.GuestName = booking.GuestName

	res.FromModel(invoice)

	return res, nil
}

func (s *serviceImpl) Show(ctx context.Context, id string) (res dto.InvoiceDetailResponse, err error) {
	invoice, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return res, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	items, err := s.itemRepo.GetAll(ctx,
		gDto.QueryParams{},
		shared.FilterByField(model.FieldItemInvoiceID, model.ItemTableName, id),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice items")

		return res, fmt.Errorf("failed to get invoice items: %w", err)
	}

	payments, err := s.paymentRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc},
		shared.FilterByField(paymentModel.FieldInvoiceID, paymentModel.TableName, id),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	paid, err := s.paymentRepo.SumByInvoice(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum payments")

		return res, fmt.Errorf("failed to sum payments: %w", err)
	}

	res.Invoice.FromModel(invoice)

	res.Items = make([]dto.InvoiceItemResponse, len(items))
	for i, item := range items {
		res.Items[i].FromModel(item)
	}

	res.Payments = paymentDto.FromModels(payments)
	res.Paid = paid
	res.Balance = invoice.TotalAmount - paid

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInvoicesResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoices")

		return res, fmt.Errorf("failed to get invoices: %w", err)
	}

	res.TotalData = total
	res.Invoices = make([]dto.InvoiceSummary, len(models))

	for i, invoice := range models {
		paid, err := s.paymentRepo.SumByInvoice(ctx, invoice.ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to sum payments")

			return res, fmt.Errorf("failed to sum payments: %w", err)
		}

		res.Invoices[i].FromModel(invoice)
		res.Invoices[i].Paid = paid
		res.Invoices[i].Balance = invoice.TotalAmount - paid
	}

	return res, nil
}
