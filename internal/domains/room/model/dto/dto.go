package dto

import (
	"github.com/google/uuid"

	"lodge/internal/domains/room/model"
	gModel "lodge/shared/model"
)

type CreateRoomRequest struct {
	RoomNumber string  `json:"room_number" validate:"required,max=20"`
	RoomType   string  `json:"room_type"   validate:"required,max=50"`
	Rate       float64 `json:"rate"        validate:"required,gt=0"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		ID:         uuid.NewString(),
		RoomNumber: c.RoomNumber,
		RoomType:   c.RoomType,
		Rate:       c.Rate,
		Status:     model.StatusAvailable,
		Metadata:   gModel.NewMetadata(),
	}
}

type RoomResponse struct {
	ID         string  `json:"id"`
	RoomNumber string  `json:"room_number"`
	RoomType   string  `json:"room_type"`
	Rate       float64 `json:"rate"`
	Status     string  `json:"status"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Rate = model.Rate
	r.Status = model.Status
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData int) {
	r.TotalData = totalData

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
