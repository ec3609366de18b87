package dto

import (
	"github.com/google/uuid"

	"lodge/internal/domains/guest/model"
	gModel "lodge/shared/model"
)

type CreateGuestRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Phone string `json:"phone" validate:"omitempty,phone,max=20"`
	Email string `json:"email" validate:"omitempty,email,max=100"`
}

func (c *CreateGuestRequest) ToModel() model.Guest {
	return model.Guest{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Phone:    c.Phone,
		Email:    c.Email,
		Metadata: gModel.NewMetadata(),
	}
}

type GuestResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Email = model.Email
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData int) {
	r.TotalData = totalData

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
