package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldIssueDate   = "issue_date"
	FieldDueDate     = "due_date"
	FieldStatus      = "status"
	FieldTotalAmount = "total_amount"

	StatusUnpaid        = "unpaid"
	StatusPartiallyPaid = "partially_paid"
	StatusPaid          = "paid"
)

type Invoice struct {
	ID          string  `db:"id"`
	BookingID   string  `db:"booking_id"`
	IssueDate   string  `db:"issue_date"`
	DueDate     string  `db:"due_date"`
	Status      string  `db:"status"`
	TotalAmount float64 `db:"total_amount"`
	GuestName   string  `db:"guest_name" table:"guests" column:"name"`
	model.Metadata
}

func (Invoice) GetJoinQuery() string {
	return "JOIN bookings ON bookings.id = invoices.booking_id JOIN guests ON guests.id = bookings.guest_id"
}

// StatusFor derives the invoice status from the paid total. Overpayment
// still counts as paid.
func StatusFor(total, paid float64) string {
	switch {
	case paid <= 0:
		return StatusUnpaid
	case paid < total:
		return StatusPartiallyPaid
	default:
		return StatusPaid
	}
}
