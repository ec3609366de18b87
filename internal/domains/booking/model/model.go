package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldGuestID   = "guest_id"
	FieldRoomID    = "room_id"
	FieldCheckIn   = "check_in"
	FieldCheckOut  = "check_out"
	FieldNights    = "nights"
	FieldRoomTotal = "room_total"
	FieldStatus    = "status"

	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID         string  `db:"id"`
	GuestID    string  `db:"guest_id"`
	RoomID     string  `db:"room_id"`
	CheckIn    string  `db:"check_in"`
	CheckOut   string  `db:"check_out"`
	Nights     int     `db:"nights"`
	RoomTotal  float64 `db:"room_total"`
	Status     string  `db:"status"`
	GuestName  string  `db:"guest_name"  table:"guests" column:"name"`
	RoomNumber string  `db:"room_number" table:"rooms"  column:"room_number"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN guests ON guests.id = bookings.guest_id JOIN rooms ON rooms.id = bookings.room_id"
}
