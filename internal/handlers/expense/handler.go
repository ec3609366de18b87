package expense

import (
	"context"
	"flag"
	"fmt"
	"io"

	"lodge/internal/domains/expense/model/dto"
	"lodge/internal/domains/expense/service"
	"lodge/shared/failure"
	"lodge/transport/cli/render"
)

type Handler struct {
	service service.Expense
}

func New(service service.Expense) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Add(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("expense add", flag.ContinueOnError)
	flags.SetOutput(out)

	category := flags.String("category", "", "expense category, e.g. maintenance")
	amount := flags.Float64("amount", 0, "expense amount")
	description := flags.String("description", "", "what the money was spent on")
	date := flags.String("expense-date", "", "expense date, YYYY-MM-DD, defaults to today")

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	res, err := handler.service.Add(ctx, dto.CreateExpenseRequest{
		Category:    *category,
		Amount:      *amount,
		Description: *description,
		ExpenseDate: *date,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Fprintf(out, "Expense %s recorded: %s %s on %s\n",
		res.ID, res.Category, render.Money(res.Amount), res.ExpenseDate)

	return nil
}

func (handler *Handler) List(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("expense list", flag.ContinueOnError)
	flags.SetOutput(out)

	month := flags.Int("month", 0, "filter by month, 1-12")
	year := flags.Int("year", 0, "filter by year")

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	res, err := handler.service.List(ctx, dto.ListExpensesRequest{
		Month: *month,
		Year:  *year,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	rows := make([][]string, len(res.Expenses))
	for i, expense := range res.Expenses {
		rows[i] = []string{expense.ID, expense.ExpenseDate, expense.Category, render.Money(expense.Amount), expense.Description}
	}

	render.Table(out, []string{"ID", "DATE", "CATEGORY", "AMOUNT", "DESCRIPTION"}, rows)

	if len(res.Expenses) > 0 {
		fmt.Fprintf(out, "\nTotal: %s\n", render.Money(res.Total))
	}

	return nil
}
