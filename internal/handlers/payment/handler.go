package payment

import (
	"context"
	"flag"
	"fmt"
	"io"

	paymentModel "lodge/internal/domains/payment/model"
	"lodge/internal/domains/payment/model/dto"
	"lodge/internal/domains/payment/service"
	"lodge/shared"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/transport/cli/render"
)

type Handler struct {
	service service.Payment
}

func New(service service.Payment) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Add(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("payment add", flag.ContinueOnError)
	flags.SetOutput(out)

	invoiceID := flags.String("invoice-id", "", "invoice being paid")
	amount := flags.Float64("amount", 0, "payment amount")
	method := flags.String("method", "", "payment method, e.g. cash or card")
	date := flags.String("payment-date", "", "payment date, YYYY-MM-DD, defaults to today")
	notes := flags.String("notes", "", "free-form note")

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	res, err := handler.service.Add(ctx, dto.CreatePaymentRequest{
		InvoiceID:   *invoiceID,
		Amount:      *amount,
		Method:      *method,
		PaymentDate: *date,
		Notes:       *notes,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Fprintf(out, "Payment %s recorded: %s via %s\n",
		res.Payment.ID, render.Money(res.Payment.Amount), res.Payment.Method)
	fmt.Fprintf(out, "Invoice is now %s (paid %s, balance %s)\n",
		res.InvoiceStatus, render.Money(res.PaidTotal), render.Money(res.Balance))

	if res.Overpaid {
		fmt.Fprintln(out, "Warning: payments exceed the invoice total")
	}

	return nil
}

func (handler *Handler) List(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("payment list", flag.ContinueOnError)
	flags.SetOutput(out)

	invoiceID := flags.String("invoice-id", "", "filter by invoice")

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	filter := gDto.FilterGroup{}
	if *invoiceID != "" {
		filter = shared.FilterByField(paymentModel.FieldInvoiceID, paymentModel.TableName, *invoiceID)
	}

	params := gDto.QueryParams{
		SortBy:  paymentModel.FieldPaymentDate,
		SortDir: gDto.SortDirAsc,
	}
	params.Normalize(false)

	res, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		return err //nolint:wrapcheck
	}

	rows := make([][]string, len(res.Payments))
	for i, payment := range res.Payments {
		rows[i] = []string{
			payment.ID,
			payment.InvoiceID,
			payment.PaymentDate,
			render.Money(payment.Amount),
			payment.Method,
			payment.Notes,
		}
	}

	render.Table(out, []string{"ID", "INVOICE", "DATE", "AMOUNT", "METHOD", "NOTES"}, rows)

	return nil
}
