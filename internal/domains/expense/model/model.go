package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "expenses"
	EntityName = "expense"

	FieldID          = "id"
	FieldCategory    = "category"
	FieldAmount      = "amount"
	FieldDescription = "description"
	FieldExpenseDate = "expense_date"
)

type Expense struct {
	ID          string  `db:"id"`
	Category    string  `db:"category"`
	Amount      float64 `db:"amount"`
	Description string  `db:"description"`
	ExpenseDate string  `db:"expense_date"`
	model.Metadata
}
