package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID         = "id"
	FieldBookingID  = "booking_id"
	FieldServiceID  = "service_id"
	FieldQuantity   = "quantity"
	FieldUnitPrice  = "unit_price"
	FieldTotalPrice = "total_price"
	FieldNotes      = "notes"
)

// Order records a service charged to a booking. The unit price is
// captured at order time so later catalog edits do not change history.
type Order struct {
	ID          string  `db:"id"`
	BookingID   string  `db:"booking_id"`
	ServiceID   string  `db:"service_id"`
	Quantity    int     `db:"quantity"`
	UnitPrice   float64 `db:"unit_price"`
	TotalPrice  float64 `db:"total_price"`
	Notes       string  `db:"notes"`
	ServiceName string  `db:"service_name" table:"services" column:"name"`
	model.Metadata
}

func (Order) GetJoinQuery() string {
	return "JOIN services ON services.id = orders.service_id"
}
