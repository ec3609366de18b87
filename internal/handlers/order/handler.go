package order

import (
	"context"
	"flag"
	"fmt"
	"io"

	orderModel "lodge/internal/domains/order/model"
	"lodge/internal/domains/order/model/dto"
	"lodge/internal/domains/order/service"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/transport/cli/render"
)

type Handler struct {
	service service.Order
}

func New(service service.Order) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Add(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("order add", flag.ContinueOnError)
	flags.SetOutput(out)

	bookingID := flags.String("booking-id", "", "booking to charge")
	serviceID := flags.String("service-id", "", "catalog service ordered")
	quantity := flags.Int("quantity", 1, "number of units")
	notes := flags.String("notes", "", "free-form note")

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	res, err := handler.service.Create(ctx, dto.CreateOrderRequest{
		BookingID: *bookingID,
		ServiceID: *serviceID,
		Quantity:  *quantity,
		Notes:     *notes,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Fprintf(out, "Order %s added: %s x %d at %s = %s\n",
		res.ID, res.ServiceName, res.Quantity, render.Money(res.UnitPrice), render.Money(res.TotalPrice))

	return nil
}

func (handler *Handler) List(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("order list", flag.ContinueOnError)
	flags.SetOutput(out)

	bookingID := flags.String("booking-id", "", "filter by booking")

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	filter := gDto.FilterGroup{}
	if *bookingID != "" {
		filter = shared.FilterByField(orderModel.FieldBookingID, orderModel.TableName, *bookingID)
	}

	params := gDto.QueryParams{
		SortBy:  orderModel.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}
	params.Normalize(false)

	res, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		return err //nolint:wrapcheck
	}

	rows := make([][]string, len(res.Orders))
	for i, order := range res.Orders {
		rows[i] = []string{
			order.ID,
			order.BookingID,
			order.ServiceName,
			render.Int(order.Quantity),
			render.Money(order.UnitPrice),
			render.Money(order.TotalPrice),
			order.Notes,
		}
	}

	render.Table(out, []string{"ID", "BOOKING", "SERVICE", "QTY", "UNIT PRICE", "TOTAL", "NOTES"}, rows)

	return nil
}
