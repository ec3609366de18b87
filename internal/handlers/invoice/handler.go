package invoice

import (
	"context"
	"flag"
	"fmt"
	"io"

	invoiceModel "lodge/internal/domains/invoice/model"
	"lodge/internal/domains/invoice/model/dto"
	"lodge/internal/domains/invoice/service"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/transport/cli/render"
)

type Handler struct {
	service service.Invoice
}

func New(service service.Invoice) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Generate(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("invoice generate", flag.ContinueOnError)
	flags.SetOutput(out)

	bookingID := flags.String("booking-id", "", "booking to invoice")
	issueDate := flags.String("issue-date", "", "issue date, YYYY-MM-DD, defaults to today")
	dueDate := flags.String("due-date", "", "due date, YYYY-MM-DD, defaults to the configured terms")

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	res, err := handler.service.Generate(ctx, dto.GenerateInvoiceRequest{
		BookingID: *bookingID,
		IssueDate: *issueDate,
		DueDate:   *dueDate,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Fprintf(out, "Invoice %s generated for booking %s: total %s, due %s\n",
		res.ID, res.BookingID, render.Money(res.TotalAmount), res.DueDate)

	return nil
}

func (handler *Handler) Show(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("invoice show", flag.ContinueOnError)
	flags.SetOutput(out)

	invoiceID := flags.String("invoice-id", "", "invoice to display")

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	res, err := handler.service.Show(ctx, *invoiceID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Fprintf(out, "Invoice %s\n", res.Invoice.ID)
	fmt.Fprintf(out, "Guest:    %s\n", res.Invoice.GuestName)
	fmt.Fprintf(out, "Booking:  %s\n", res.Invoice.BookingID)
	fmt.Fprintf(out, "Issued:   %s  Due: %s\n", res.Invoice.IssueDate, res.Invoice.DueDate)
	fmt.Fprintf(out, "Status:   %s\n\n", res.Invoice.Status)

	rows := make([][]string, len(res.Items))
	for i, item := range res.Items {
		rows[i] = []string{item.Description, render.Money(item.Amount)}
	}

	render.Table(out, []string{"ITEM", "AMOUNT"}, rows)

	fmt.Fprintf(out, "\nTotal:   %s\n", render.Money(res.Invoice.TotalAmount))
	fmt.Fprintf(out, "Paid:    %s\n", render.Money(res.Paid))
	fmt.Fprintf(out, "Balance: %s\n", render.Money(res.Balance))

	if len(res.Payments) > 0 {
		fmt.Fprintln(out)

		paymentRows := make([][]string, len(res.Payments))
		for i, payment := range res.Payments {
			paymentRows[i] = []string{payment.PaymentDate, render.Money(payment.Amount), payment.Method, payment.Notes}
		}

		render.Table(out, []string{"PAID ON", "AMOUNT", "METHOD", "NOTES"}, paymentRows)
	}

	return nil
}

func (handler *Handler) List(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("invoice list", flag.ContinueOnError)
	flags.SetOutput(out)

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	params := gDto.QueryParams{
		SortBy:  invoiceModel.TableName + "." + invoiceModel.FieldIssueDate,
		SortDir: gDto.SortDirDesc,
	}
	params.Normalize(false)

	res, err := handler.service.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		return err //nolint:wrapcheck
	}

	rows := make([][]string, len(res.Invoices))
	for i, invoice := range res.Invoices {
		rows[i] = []string{
			invoice.ID,
			invoice.GuestName,
			invoice.IssueDate,
			invoice.DueDate,
			render.Money(invoice.TotalAmount),
			render.Money(invoice.Paid),
			render.Money(invoice.Balance),
			invoice.Status,
		}
	}

	render.Table(out, []string{"ID", "GUEST", "ISSUED", "DUE", "TOTAL", "PAID", "BALANCE", "STATUS"}, rows)

	return nil
}
