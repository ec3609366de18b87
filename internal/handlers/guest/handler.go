package guest

import (
	"context"
	"flag"
	"fmt"
	"io"

	guestModel "lodge/internal/domains/guest/model"
	"lodge/internal/domains/guest/model/dto"
	"lodge/internal/domains/guest/service"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/transport/cli/render"
)

type Handler struct {
	service service.Guest
}

func New(service service.Guest) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Add(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("add-guest", flag.ContinueOnError)
	flags.SetOutput(out)

	name := flags.String("name", "", "guest full name")
	phone := flags.String("phone", "", "contact phone number")
	email := flags.String("email", "", "contact email address")

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	res, err := handler.service.Create(ctx, dto.CreateGuestRequest{
		Name:  *name,
		Phone: *phone,
		Email: *email,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Fprintf(out, "Guest %s registered with id %s\n", res.Name, res.ID)

	return nil
}

func (handler *Handler) List(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("list-guests", flag.ContinueOnError)
	flags.SetOutput(out)

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	params := gDto.QueryParams{SortBy: guestModel.FieldName, SortDir: gDto.SortDirAsc}
	params.Normalize(false)

	res, err := handler.service.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		return err //nolint:wrapcheck
	}

	rows := make([][]string, len(res.Guests))
	for i, guest := range res.Guests {
		rows[i] = []string{guest.ID, guest.Name, guest.Phone, guest.Email}
	}

	render.Table(out, []string{"ID", "NAME", "PHONE", "EMAIL"}, rows)

	return nil
}
