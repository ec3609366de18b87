package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID       = "id"
	FieldName     = "name"
	FieldPrice    = "price"
	FieldCategory = "category"
)

// Service is a billable catalog item such as room service or laundry.
type Service struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Price    float64 `db:"price"`
	Category string  `db:"category"`
	model.Metadata
}
