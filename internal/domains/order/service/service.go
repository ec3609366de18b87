package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	bookingModel "lodge/internal/domains/booking/model"
	bookingRepo "lodge/internal/domains/booking/repository"
	catalogModel "lodge/internal/domains/catalog/model"
	catalogRepo "lodge/internal/domains/catalog/repository"
	"lodge/internal/domains/order/model/dto"
	"lodge/internal/domains/order/repository"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/validator"
)

type Order interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (dto.OrderResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrdersResponse, error)
}

type serviceImpl struct {
	repo        repository.Order
	bookingRepo bookingRepo.Booking
	catalogRepo catalogRepo.Service
}

func New(repo repository.Order, bookingRepo bookingRepo.Booking, catalogRepo catalogRepo.Service) Order {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOrderRequest) (res dto.OrderResponse, err error) {
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

	if booking.Status != bookingModel.StatusActive {
		return res, failure.Conflictf("booking %s is %s, orders can only be added to active bookings", booking.ID, booking.Status) //nolint:wrapcheck
	}

	service, err := s.catalogRepo.Get(ctx, shared.FilterByID(req.ServiceID, catalogModel.FieldID, catalogModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty {
		return res, failure.NotFound(catalogModel.EntityName) //nolint:wrapcheck
	}

	order := req.ToModel(service.Price)

	if err = s.repo.Insert(ctx, order); err != nil {
		log.Error().Err(err).Msg("failed to create order")

		return res, fmt.Errorf("failed to create order: %w", err)
	}

	order.ServiceName = service.Name

	res.FromModel(order)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrdersResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count orders")

		return res, fmt.Errorf("failed to count orders: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, fmt.Errorf("failed to get orders: %w", err)
	}

	res.FromModels(models, total)

	return res, nil
}
