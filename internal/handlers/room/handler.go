package room

import (
	"context"
	"flag"
	"fmt"
	"io"

	roomModel "lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/transport/cli/render"
)

type Handler struct {
	service service.Room
}

func New(service service.Room) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Add(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("add-room", flag.ContinueOnError)
	flags.SetOutput(out)

	number := flags.String("number", "", "room number, unique per property")
	roomType := flags.String("type", "", "room category, e.g. standard or deluxe")
	rate := flags.Float64("rate", 0, "nightly rate")

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	res, err := handler.service.Create(ctx, dto.CreateRoomRequest{
		RoomNumber: *number,
		RoomType:   *roomType,
		Rate:       *rate,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Fprintf(out, "Room %s added with id %s\n", res.RoomNumber, res.ID)

	return nil
}

func (handler *Handler) List(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("list-rooms", flag.ContinueOnError)
	flags.SetOutput(out)

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	params := gDto.QueryParams{SortBy: roomModel.FieldRoomNumber, SortDir: gDto.SortDirAsc}
	params.Normalize(false)

	res, err := handler.service.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		return err //nolint:wrapcheck
	}

	rows := make([][]string, len(res.Rooms))
	for i, room := range res.Rooms {
		rows[i] = []string{room.ID, room.RoomNumber, room.RoomType, render.Money(room.Rate), room.Status}
	}

	render.Table(out, []string{"ID", "NUMBER", "TYPE", "RATE", "STATUS"}, rows)

	return nil
}
