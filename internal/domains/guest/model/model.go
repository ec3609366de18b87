package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID    = "id"
	FieldName  = "name"
	FieldPhone = "phone"
	FieldEmail = "email"
)

type Guest struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Phone string `db:"phone"`
	Email string `db:"email"`
	model.Metadata
}
