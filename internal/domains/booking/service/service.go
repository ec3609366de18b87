package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"lodge/infras/sqlite"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	guestModel "lodge/internal/domains/guest/model"
	guestRepo "lodge/internal/domains/guest/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"
	"lodge/shared/validator"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Complete(ctx context.Context, id string) (dto.BookingResponse, bool, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, bool, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	guestRepo guestRepo.Guest
	roomRepo  roomRepo.Room
	conn      *sqlite.Connection
}

func New(repo repository.Booking, guestRepo guestRepo.Guest, roomRepo roomRepo.Room, conn *sqlite.Connection) Booking {
	return &serviceImpl{
		repo:      repo,
		guestRepo: guestRepo,
		roomRepo:  roomRepo,
		conn:      conn,
	}
}

// overlapFilter matches bookings on the same room whose stay intersects
// the half-open range [checkIn, checkOut). Cancelled bookings never block.
func overlapFilter(roomID, checkIn, checkOut string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusCancelled,
				Operator: gDto.FilterOperatorNotEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "new_check_out",
				Field:    model.FieldCheckIn,
				Value:    checkOut,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "new_check_in",
				Field:    model.FieldCheckOut,
				Value:    checkIn,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	guestExists, err := s.guestRepo.Exist(ctx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return res, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !guestExists {
		return res, failure.NotFound(guestModel.EntityName) //nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(roomModel.EntityName) //nolint:wrapcheck
	}

	booking, err := req.ToModel(room.Rate)
	if err != nil {
		return res, failure.Validation(err) //nolint:wrapcheck
	}

	overlaps, err := s.repo.Exist(ctx, overlapFilter(booking.RoomID, booking.CheckIn, booking.CheckOut))
	if err != nil {
		log.Error().Err(err).Msg("failed to check for overlapping bookings")

		return res, fmt.Errorf("failed to check for overlapping bookings: %w", err)
	}

	if overlaps {
		return res, failure.Conflictf("room %s is already booked for the requested dates", room.RoomNumber) //nolint:wrapcheck
	}

	err = s.conn.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return s.setRoomStatusTx(ctx, tx, booking.RoomID, roomModel.StatusOccupied)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err //nolint:wrapcheck
	}

	booking.RoomNumber = room.RoomNumber

	res.FromModel(booking)

	return res, nil
}

// Complete marks a stay as finished and releases the room. The second
// return value reports whether the booking changed; completing a booking
// twice is a no-op, not an error.
func (s *serviceImpl) Complete(ctx context.Context, id string) (res dto.BookingResponse, changed bool, err error) {
	booking, err := s.get(ctx, id)
	if err != nil {
		return res, false, err //nolint:wrapcheck
	}

	if booking.Status == model.StatusCompleted {
		res.FromModel(booking)

		return res, false, nil
	}

	if booking.Status == model.StatusCancelled {
		return res, false, failure.Conflictf("booking %s is cancelled", id) //nolint:wrapcheck
	}

	if err = s.transition(ctx, booking, model.StatusCompleted); err != nil {
		log.Error().Err(err).Msg("failed to complete booking")

		return res, false, err //nolint:wrapcheck
	}

	booking.Status = model.StatusCompleted
	res.FromModel(booking)

	return res, true, nil
}

// Cancel voids a stay and releases the room. Cancelling twice is a
// no-op; a completed stay can no longer be cancelled.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.BookingResponse, changed bool, err error) {
	booking, err := s.get(ctx, id)
	if err != nil {
		return res, false, err //nolint:wrapcheck
	}

	if booking.Status == model.StatusCancelled {
		res.FromModel(booking)

		return res, false, nil
	}

	if booking.Status == model.StatusCompleted {
		return res, false, failure.Conflictf("booking %s is already completed", id) //nolint:wrapcheck
	}

	if err = s.transition(ctx, booking, model.StatusCancelled); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return res, false, err //nolint:wrapcheck
	}

	booking.Status = model.StatusCancelled
	res.FromModel(booking)

	return res, true, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return booking, nil
}

// transition updates the booking status and releases the room in one
// transaction, so the occupancy flag cannot drift from the bookings table.
func (s *serviceImpl) transition(ctx context.Context, booking model.Booking, status string) error {
	return s.conn.WithTx(ctx, func(tx *sqlx.Tx) error {
		mod := map[string]any{
			model.FieldStatus:        status,
			constant.FieldModifiedAt: timezone.NowStamp(),
		}

		filter := shared.FilterByID(booking.ID, model.FieldID, model.TableName)
		if err := s.repo.UpdateTx(ctx, tx, mod, filter); err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		return s.setRoomStatusTx(ctx, tx, booking.RoomID, roomModel.StatusAvailable)
	})
}

func (s *serviceImpl) setRoomStatusTx(ctx context.Context, tx *sqlx.Tx, roomID, status string) error {
	mod := map[string]any{
		roomModel.FieldStatus:    status,
		constant.FieldModifiedAt: timezone.NowStamp(),
	}

	filter := shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)
	if err := s.roomRepo.UpdateTx(ctx, tx, mod, filter); err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}
