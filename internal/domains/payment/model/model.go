package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID          = "id"
	FieldInvoiceID   = "invoice_id"
	FieldPaymentDate = "payment_date"
	FieldAmount      = "amount"
	FieldMethod      = "method"
	FieldNotes       = "notes"
)

type Payment struct {
	ID          string  `db:"id"`
	InvoiceID   string  `db:"invoice_id"`
	PaymentDate string  `db:"payment_date"`
	Amount      float64 `db:"amount"`
	Method      string  `db:"method"`
	Notes       string  `db:"notes"`
	model.Metadata
}
