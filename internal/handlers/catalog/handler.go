package catalog

import (
	"context"
	"flag"
	"fmt"
	"io"

	catalogModel "lodge/internal/domains/catalog/model"
	"lodge/internal/domains/catalog/model/dto"
	"lodge/internal/domains/catalog/service"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/transport/cli/render"
)

type Handler struct {
	service service.Catalog
}

func New(service service.Catalog) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Add(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("service add", flag.ContinueOnError)
	flags.SetOutput(out)

	name := flags.String("name", "", "service name, unique per property")
	price := flags.Float64("price", 0, "unit price")
	category := flags.String("category", "", "service category, e.g. food or laundry")

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	res, err := handler.service.Create(ctx, dto.CreateServiceRequest{
		Name:     *name,
		Price:    *price,
		Category: *category,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Fprintf(out, "Service %s added with id %s\n", res.Name, res.ID)

	return nil
}

func (handler *Handler) List(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("service list", flag.ContinueOnError)
	flags.SetOutput(out)

	if err := flags.Parse(args); err != nil {
		return failure.Validation(err) //nolint:wrapcheck
	}

	params := gDto.QueryParams{SortBy: catalogModel.FieldName, SortDir: gDto.SortDirAsc}
	params.Normalize(false)

	res, err := handler.service.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		return err //nolint:wrapcheck
	}

	rows := make([][]string, len(res.Services))
	for i, svc := range res.Services {
		rows[i] = []string{svc.ID, svc.Name, render.Money(svc.Price), svc.Category}
	}

	render.Table(out, []string{"ID", "NAME", "PRICE", "CATEGORY"}, rows)

	return nil
}
