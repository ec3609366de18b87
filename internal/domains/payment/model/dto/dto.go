package dto

import (
	"github.com/google/uuid"

	"lodge/internal/domains/payment/model"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreatePaymentRequest struct {
	InvoiceID   string  `json:"invoice_id"   validate:"required"`
	Amount      float64 `json:"amount"       validate:"required,gt=0"`
	Method      string  `json:"method"       validate:"required,max=50"`
	PaymentDate string  `json:"payment_date" validate:"omitempty,dateonly"`
	Notes       string  `json:"notes"        validate:"omitempty,max=200"`
}

func (c *CreatePaymentRequest) ToModel() model.Payment {
	paymentDate := c.PaymentDate
	if paymentDate == "" {
		paymentDate = timezone.Today()
	}

	return model.Payment{
		ID:          uuid.NewString(),
		InvoiceID:   c.InvoiceID,
		PaymentDate: paymentDate,
		Amount:      c.Amount,
		Method:      c.Method,
		Notes:       c.Notes,
		Metadata:    gModel.NewMetadata(),
	}
}

type PaymentResponse struct {
	ID          string  `json:"id"`
	InvoiceID   string  `json:"invoice_id"`
	PaymentDate string  `json:"payment_date"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Notes       string  `json:"notes"`
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.InvoiceID = model.InvoiceID
	r.PaymentDate = model.PaymentDate
	r.Amount = model.Amount
	r.Method = model.Method
	r.Notes = model.Notes
}

// AddPaymentResult reports the state of the invoice after a payment was
// recorded. Overpaid is a warning flag, not an error.
type AddPaymentResult struct {
	Payment       PaymentResponse `json:"payment"`
	InvoiceStatus string          `json:"invoice_status"`
	PaidTotal     float64         `json:"paid_total"`
	Balance       float64         `json:"balance"`
	Overpaid      bool            `json:"overpaid"`
}

func FromModels(models []model.Payment) []PaymentResponse {
	payments := make([]PaymentResponse, len(models))
	for i, mod := range models {
		payments[i].FromModel(mod)
	}

	return payments
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalData int               `json:"total_data"`
	Total     float64           `json:"total"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData int) {
	r.Payments = FromModels(models)
	r.TotalData = totalData

	for _, mod := range models {
		r.Total += mod.Amount
	}
}
