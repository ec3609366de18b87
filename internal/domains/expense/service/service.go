package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodge/internal/domains/expense/model"
	"lodge/internal/domains/expense/model/dto"
	"lodge/internal/domains/expense/repository"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
)

type Expense interface {
	Add(ctx context.Context, req dto.CreateExpenseRequest) (dto.ExpenseResponse, error)
	List(ctx context.Context, req dto.ListExpensesRequest) (dto.GetExpensesResponse, error)
}

type serviceImpl struct {
	repo repository.Expense
}

func New(repo repository.Expense) Expense {
	return &serviceImpl{
		repo: repo,
	}
}

func (s *serviceImpl) Add(ctx context.Context, req dto.CreateExpenseRequest) (res dto.ExpenseResponse, err error) {
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	expense := req.ToModel()

	if err = s.repo.Insert(ctx, expense); err != nil {
		log.Error().Err(err).Msg("failed to record expense")

		return res, fmt.Errorf("failed to record expense: %w", err)
	}

	res.FromModel(expense)

	return res, nil
}

// monthYearFilter matches the date column by calendar component so a
// report for "March" works across years and "2025" across months.
func monthYearFilter(month, year int) gDto.FilterGroup {
	filters := []any{}

	if month > 0 {
		filters = append(filters, gDto.Filter{
			ArgName:  "month",
			Field:    fmt.Sprintf("strftime('%%m', %s)", model.FieldExpenseDate),
			Value:    fmt.Sprintf("%02d", month),
			Operator: gDto.FilterOperatorEq,
		})
	}

	if year > 0 {
		filters = append(filters, gDto.Filter{
			ArgName:  "year",
			Field:    fmt.Sprintf("strftime('%%Y', %s)", model.FieldExpenseDate),
			Value:    fmt.Sprintf("%04d", year),
			Operator: gDto.FilterOperatorEq,
		})
	}

	return gDto.FilterGroup{Filters: filters}
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListExpensesRequest) (res dto.GetExpensesResponse, err error) {
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	filter := monthYearFilter(req.Month, req.Year)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count expenses")

		return res, fmt.Errorf("failed to count expenses: %w", err)
	}

	models, err := s.repo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.FieldExpenseDate, SortDir: gDto.SortDirDesc},
		filter,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get expenses")

		return res, fmt.Errorf("failed to get expenses: %w", err)
	}

	res.FromModels(models, total)

	return res, nil
}
