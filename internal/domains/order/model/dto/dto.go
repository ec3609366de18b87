package dto

import (
	"github.com/google/uuid"

	"lodge/internal/domains/order/model"
	gModel "lodge/shared/model"
)

type CreateOrderRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	ServiceID string `json:"service_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
	Notes     string `json:"notes"      validate:"omitempty,max=200"`
}

func (c *CreateOrderRequest) ToModel(unitPrice float64) model.Order {
	return model.Order{
		ID:         uuid.NewString(),
		BookingID:  c.BookingID,
		ServiceID:  c.ServiceID,
		Quantity:   c.Quantity,
		UnitPrice:  unitPrice,
		TotalPrice: float64(c.Quantity) * unitPrice,
		Notes:      c.Notes,
		Metadata:   gModel.NewMetadata(),
	}
}

type OrderResponse struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"booking_id"`
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	Notes       string  `json:"notes"`
}

func (r *OrderResponse) FromModel(model model.Order) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.ServiceID = model.ServiceID
	r.ServiceName = model.ServiceName
	r.Quantity = model.Quantity
	r.UnitPrice = model.UnitPrice
	r.TotalPrice = model.TotalPrice
	r.Notes = model.Notes
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalData int             `json:"total_data"`
}

func (r *GetOrdersResponse) FromModels(models []model.Order, totalData int) {
	r.TotalData = totalData

	r.Orders = make([]OrderResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(mod)
	}
}
