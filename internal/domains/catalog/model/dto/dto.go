package dto

import (
	"github.com/google/uuid"

	"lodge/internal/domains/catalog/model"
	gModel "lodge/shared/model"
)

type CreateServiceRequest struct {
	Name     string  `json:"name"     validate:"required,max=100"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Category string  `json:"category" validate:"omitempty,max=50"`
}

func (c *CreateServiceRequest) ToModel() model.Service {
	return model.Service{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Price:    c.Price,
		Category: c.Category,
		Metadata: gModel.NewMetadata(),
	}
}

type ServiceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Price = model.Price
	r.Category = model.Category
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData int) {
	r.TotalData = totalData

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
