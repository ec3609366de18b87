package dto

import (
	"github.com/google/uuid"

	"lodge/internal/domains/expense/model"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateExpenseRequest struct {
	Category    string  `json:"category"     validate:"required,max=50"`
	Amount      float64 `json:"amount"       validate:"required,gt=0"`
	Description string  `json:"description"  validate:"omitempty,max=200"`
	ExpenseDate string  `json:"expense_date" validate:"omitempty,dateonly"`
}

func (c *CreateExpenseRequest) ToModel() model.Expense {
	expenseDate := c.ExpenseDate
	if expenseDate == "" {
		expenseDate = timezone.Today()
	}

	return model.Expense{
		ID:          uuid.NewString(),
		Category:    c.Category,
		Amount:      c.Amount,
		Description: c.Description,
		ExpenseDate: expenseDate,
		Metadata:    gModel.NewMetadata(),
	}
}

// ListExpensesRequest filters the report by calendar month and year.
// Zero values mean no filter on that component.
type ListExpensesRequest struct {
	Month int `json:"month" validate:"omitempty,min=1,max=12"`
	Year  int `json:"year"  validate:"omitempty,min=1970,max=9999"`
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	ExpenseDate string  `json:"expense_date"`
}

func (r *ExpenseResponse) FromModel(model model.Expense) {
	r.ID = model.ID
	r.Category = model.Category
	r.Amount = model.Amount
	r.Description = model.Description
	r.ExpenseDate = model.ExpenseDate
}

type GetExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	TotalData int               `json:"total_data"`
	Total     float64           `json:"total"`
}

func (r *GetExpensesResponse) FromModels(models []model.Expense, totalData int) {
	r.TotalData = totalData
	r.Total = 0

	r.Expenses = make([]ExpenseResponse, len(models))
	for i, mod := range models {
		r.Expenses[i].FromModel(mod)
		r.Total += mod.Amount
	}
}
