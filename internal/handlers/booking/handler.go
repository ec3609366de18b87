package booking

import (
	"context"
	"flag"
	"fmt"
	"io"

	bookingModel "lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/transport/cli/render"
)

type Handler struct {
	service service.Booking
}

func New(service service.Booking) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Create(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("create-booking", flag.ContinueOnError)
	flags.SetOutput(out)

	guestID := flags.String("guest-id", "", "id of a registered guest")
	roomID := flags.String("room-id", "", "id of a registered room")
	checkIn := flags.String("check-in", "", "check-in date, YYYY-MM-DD")
	checkOut := flags.String("check-out", "", "check-out date, YYYY-MM-DD")

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	res, err := handler.service.Create(ctx, dto.CreateBookingRequest{
		GuestID:  *guestID,
		RoomID:   *roomID,
		CheckIn:  *checkIn,
		CheckOut: *checkOut,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Fprintf(out, "Booking %s created: room %s, %s to %s (%d nights, room total %s)\n",
		res.ID, res.RoomNumber, res.CheckIn, res.CheckOut, res.Nights, render.Money(res.RoomTotal))

	return nil
}

func (handler *Handler) Complete(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("complete-booking", flag.ContinueOnError)
	flags.SetOutput(out)

	id := flags.String("booking-id", "", "booking to complete")

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	res, changed, err := handler.service.Complete(ctx, *id)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !changed {
		fmt.Fprintf(out, "Booking %s is already completed\n", res.ID)

		return nil
	}

	fmt.Fprintf(out, "Booking %s completed, room %s released\n", res.ID, res.RoomNumber)

	return nil
}

func (handler *Handler) Cancel(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("cancel-booking", flag.ContinueOnError)
	flags.SetOutput(out)

	id := flags.String("booking-id", "", "booking to cancel")

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	res, changed, err := handler.service.Cancel(ctx, *id)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !changed {
		fmt.Fprintf(out, "Booking %s is already cancelled\n", res.ID)

		return nil
	}

	fmt.Fprintf(out, "Booking %s cancelled, room %s released\n", res.ID, res.RoomNumber)

	return nil
}

func (handler *Handler) List(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("list-bookings", flag.ContinueOnError)
	flags.SetOutput(out)

	status := flags.String("status", "", "filter by status: active, completed or cancelled")

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	filter := gDto.FilterGroup{}
	if *status != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    bookingModel.FieldStatus,
			Value:    *status,
			Operator: gDto.FilterOperatorEq,
			Table:    bookingModel.TableName,
		})
	}

	params := gDto.QueryParams{
		SortBy:  bookingModel.TableName + "." + bookingModel.FieldCheckIn,
		SortDir: gDto.SortDirAsc,
	}
	params.Normalize(false)

	res, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		return err //nolint:wrapcheck
	}

	rows := make([][]string, len(res.Bookings))
	for i, booking := range res.Bookings {
		rows[i] = []string{
			booking.ID,
			booking.GuestName,
			booking.RoomNumber,
			booking.CheckIn,
			booking.CheckOut,
			render.Int(booking.Nights),
			render.Money(booking.RoomTotal),
			booking.Status,
		}
	}

	render.Table(out, []string{"ID", "GUEST", "ROOM", "CHECK-IN", "CHECK-OUT", "NIGHTS", "ROOM TOTAL", "STATUS"}, rows)

	return nil
}
