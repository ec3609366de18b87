package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldRoomType   = "room_type"
	FieldRate       = "rate"
	FieldStatus     = "status"

	StatusAvailable = "available"
	StatusOccupied  = "occupied"
)

type Room struct {
	ID         string  `db:"id"`
	RoomNumber string  `db:"room_number"`
	RoomType   string  `db:"room_type"`
	Rate       float64 `db:"rate"`
	Status     string  `db:"status"`
	model.Metadata
}
