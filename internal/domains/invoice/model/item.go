package model

const (
	ItemTableName  = "invoice_items"
	ItemEntityName = "invoice item"

	FieldItemID          = "id"
	FieldItemInvoiceID   = "invoice_id"
	FieldItemDescription = "description"
	FieldItemAmount      = "amount"
)

// InvoiceItem is a frozen billing line. Items carry no timestamps; they
// are written once when the invoice is generated and never touched again.
type InvoiceItem struct {
	ID          string  `db:"id"`
	InvoiceID   string  `db:"invoice_id"`
	Description string  `db:"description"`
	Amount      float64 `db:"amount"`
}
