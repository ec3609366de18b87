package dto

import (
	"errors"

	"github.com/google/uuid"

	"lodge/internal/domains/booking/model"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

var ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")

type CreateBookingRequest struct {
	GuestID  string `json:"guest_id"  validate:"required"`
	RoomID   string `json:"room_id"   validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required,dateonly"`
	CheckOut string `json:"check_out" validate:"required,dateonly"`
}

// ToModel computes the night count and the room charge from the nightly
// rate. Dates are half-open: the check-out day is not charged.
func (c *CreateBookingRequest) ToModel(rate float64) (model.Booking, error) {
	checkIn, err := timezone.ParseDate(c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := timezone.ParseDate(c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	if !checkOut.After(checkIn) {
		return model.Booking{}, ErrCheckOutNotAfterCheckIn
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)

	return model.Booking{
		ID:        uuid.NewString(),
		GuestID:   c.GuestID,
		RoomID:    c.RoomID,
		CheckIn:   timezone.FormatDate(checkIn),
		CheckOut:  timezone.FormatDate(checkOut),
		Nights:    nights,
		RoomTotal: float64(nights) * rate,
		Status:    model.StatusActive,
		Metadata:  gModel.NewMetadata(),
	}, nil
}

type BookingResponse struct {
	ID         string  `json:"id"`
	GuestID    string  `json:"guest_id"`
	RoomID     string  `json:"room_id"`
	GuestName  string  `json:"guest_name"`
	RoomNumber string  `json:"room_number"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Nights     int     `json:"nights"`
	RoomTotal  float64 `json:"room_total"`
	Status     string  `json:"status"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.GuestName = model.GuestName
	r.RoomNumber = model.RoomNumber
	r.CheckIn = model.CheckIn
	r.CheckOut = model.CheckOut
	r.Nights = model.Nights
	r.RoomTotal = model.RoomTotal
	r.Status = model.Status
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData int) {
	r.TotalData = totalData

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
