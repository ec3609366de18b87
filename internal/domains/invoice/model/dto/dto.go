package dto

import (
	"fmt"

	"github.com/google/uuid"

	"lodge/internal/domains/invoice/model"
	orderModel "lodge/internal/domains/order/model"
	paymentDto "lodge/internal/domains/payment/model/dto"
	gModel "lodge/shared/model"
)

type GenerateInvoiceRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	IssueDate string `json:"issue_date" validate:"omitempty,dateonly"`
	DueDate   string `json:"due_date"   validate:"omitempty,dateonly"`
}

// ToModel freezes the invoice header. Dates are resolved by the caller
// so the due-date policy stays in one place.
func (c *GenerateInvoiceRequest) ToModel(issueDate, dueDate string, total float64) model.Invoice {
	return model.Invoice{
		ID:          uuid.NewString(),
		BookingID:   c.BookingID,
		IssueDate:   issueDate,
		DueDate:     dueDate,
		Status:      model.StatusUnpaid,
		TotalAmount: total,
		Metadata:    gModel.NewMetadata(),
	}
}

// ItemsFromOrders freezes order lines into invoice items. The description
// keeps the service name and quantity readable on a printed invoice.
func ItemsFromOrders(invoiceID string, orders []orderModel.Order) ([]model.InvoiceItem, float64) {
	items := make([]model.InvoiceItem, len(orders))
	total := 0.0

	for i, order := range orders {
		items[i] = model.InvoiceItem{
			ID:          uuid.NewString(),
			InvoiceID:   invoiceID,
			Description: fmt.Sprintf("%s x %d", order.ServiceName, order.Quantity),
			Amount:      order.TotalPrice,
		}

		total += order.TotalPrice
	}

	return items, total
}

type InvoiceResponse struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"booking_id"`
	GuestName   string  `json:"guest_name"`
	IssueDate   string  `json:"issue_date"`
	DueDate     string  `json:"due_date"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount"`
}

func (r *InvoiceResponse) FromModel(model model.Invoice) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.GuestName = model.GuestName
	r.IssueDate = model.IssueDate
	r.DueDate = model.DueDate
	r.Status = model.Status
	r.TotalAmount = model.TotalAmount
}

type InvoiceItemResponse struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func (r *InvoiceItemResponse) FromModel(model model.InvoiceItem) {
	r.Description = model.Description
	r.Amount = model.Amount
}

// InvoiceSummary is an invoice header with the running payment totals,
// used by the invoice listing.
type InvoiceSummary struct {
	InvoiceResponse
	Paid    float64 `json:"paid"`
	Balance float64 `json:"balance"`
}

type GetInvoicesResponse struct {
	Invoices  []InvoiceSummary `json:"invoices"`
	TotalData int              `json:"total_data"`
}

// InvoiceDetailResponse is the full statement: header, billing lines and
// every payment recorded against the invoice.
type InvoiceDetailResponse struct {
	Invoice  InvoiceResponse              `json:"invoice"`
	Items    []InvoiceItemResponse        `json:"items"`
	Payments []paymentDto.PaymentResponse `json:"payments"`
	Paid     float64                      `json:"paid"`
	Balance  float64                      `json:"balance"`
}
