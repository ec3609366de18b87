package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/helper"
	"lodge/infras/sqlite"
	"lodge/internal/domains/expense/mocks"
	"lodge/internal/domains/expense/model"
	"lodge/internal/domains/expense/model/dto"
	"lodge/internal/domains/expense/repository"
	"lodge/internal/domains/expense/service"
	"lodge/shared/failure"
)

func newExpenseService(t *testing.T) service.Expense {
	t.Helper()

	cfg := &config.Config{}
	cfg.DB.SQLite.Path = filepath.Join(t.TempDir(), "lodge_test.db")
	cfg.DB.SQLite.MigrationTable = "schema_migrations"
	cfg.DB.SQLite.BusyTimeoutMS = 5000

	require.NoError(t, helper.Up(cfg))

	conn, err := sqlite.New(cfg)
	require.NoError(t, err)

	t.Cleanup(func() { conn.Close() })

	return service.New(repository.New(conn))
}

func seedExpenses(t *testing.T, svc service.Expense) {
	t.Helper()

	seeds := []dto.CreateExpenseRequest{
		{Category: "maintenance", Amount: 120.50, ExpenseDate: "2024-06-03"},
		{Category: "supplies", Amount: 40, ExpenseDate: "2024-06-20"},
		{Category: "maintenance", Amount: 75.25, ExpenseDate: "2024-07-01"},
		{Category: "supplies", Amount: 10, ExpenseDate: "2023-06-15"},
	}

	for _, seed := range seeds {
		_, err := svc.Add(context.Background(), seed)
		require.NoError(t, err)
	}
}

func TestExpenseService_List_MonthYearFilter(t *testing.T) {
	svc := newExpenseService(t)
	seedExpenses(t, svc)

	tests := []struct {
		name      string
		req       dto.ListExpensesRequest
		wantCount int
		wantTotal float64
	}{
		{
			name:      "june 2024",
			req:       dto.ListExpensesRequest{Month: 6, Year: 2024},
			wantCount: 2,
			wantTotal: 160.50,
		},
		{
			name:      "all of 2024",
			req:       dto.ListExpensesRequest{Year: 2024},
			wantCount: 3,
			wantTotal: 235.75,
		},
		{
			name:      "june across years",
			req:       dto.ListExpensesRequest{Month: 6},
			wantCount: 3,
			wantTotal: 170.50,
		},
		{
			name:      "unfiltered",
			req:       dto.ListExpensesRequest{},
			wantCount: 4,
			wantTotal: 245.75,
		},
		{
			name:      "empty month",
			req:       dto.ListExpensesRequest{Month: 12, Year: 2024},
			wantCount: 0,
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.List(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Len(t, res.Expenses, tt.wantCount)
			assert.Equal(t, tt.wantCount, res.TotalData)
			assert.InDelta(t, tt.wantTotal, res.Total, 0.001)
		})
	}
}

func TestExpenseService_Add_DefaultsToToday(t *testing.T) {
	svc := newExpenseService(t)

	res, err := svc.Add(context.Background(), dto.CreateExpenseRequest{
		Category: "utilities",
		Amount:   99.99,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ExpenseDate)
}

func TestExpenseService_Add_Validation(t *testing.T) {
	svc := newExpenseService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateExpenseRequest
	}{
		{
			name: "missing category",
			req:  dto.CreateExpenseRequest{Amount: 10},
		},
		{
			name: "zero amount",
			req:  dto.CreateExpenseRequest{Category: "supplies", Amount: 0},
		},
		{
			name: "malformed date",
			req:  dto.CreateExpenseRequest{Category: "supplies", Amount: 10, ExpenseDate: "June 3rd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tt.req)
			require.Error(t, err)
			assert.Equal(t, failure.KindValidation, failure.GetKind(err))
		})
	}
}

func TestExpenseService_List_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockExpense(ctrl)
	svc := service.New(mockRepo)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(0, errors.New("disk I/O error"))

	_, err := svc.List(context.Background(), dto.ListExpensesRequest{})
	require.Error(t, err)
	assert.Equal(t, failure.KindInternal, failure.GetKind(err))
}

func TestExpenseService_Add_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockExpense(ctrl)
	svc := service.New(mockRepo)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.AssignableToTypeOf(model.Expense{})).
		Return(errors.New("disk I/O error"))

	_, err := svc.Add(context.Background(), dto.CreateExpenseRequest{
		Category: "supplies",
		Amount:   10,
	})
	require.Error(t, err)
}
