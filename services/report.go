package services

import (
	"context"
	"fmt"

	"github.com/LovationAdmin/expense-api/models"
)

// ReportService loads a user's data and runs the pure reporting functions
// over it.
type ReportService struct {
	expenses ExpenseStore
	budgets  BudgetStore
}

func NewReportService(expenses ExpenseStore, budgets BudgetStore) *ReportService {
	return &ReportService{expenses: expenses, budgets: budgets}
}

func (s *ReportService) Stats(ctx context.Context, userID string) (models.ExpenseStats, error) {
	records, err := s.expenses.Records(ctx, userID)
	if err != nil {
		return models.ExpenseStats{}, fmt.Errorf("load records: %w", err)
	}
	return Aggregate(records), nil
}

func (s *ReportService) BudgetProgress(ctx context.Context, userID, month string) ([]models.BudgetProgress, error) {
	budgets, err := s.budgets.List(ctx, userID, models.BudgetFilter{Month: month})
	if err != nil {
		return nil, fmt.Errorf("load budgets: %w", err)
	}
	records, err := s.expenses.Records(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	return BudgetProgressFor(budgets, records), nil
}

func (s *ReportService) Insights(ctx context.Context, userID, month string) (models.Insights, error) {
	records, err := s.expenses.Records(ctx, userID)
	if err != nil {
		return models.Insights{}, fmt.Errorf("load records: %w", err)
	}
	budgets, err := s.budgets.List(ctx, userID, models.BudgetFilter{Month: month})
	if err != nil {
		return models.Insights{}, fmt.Errorf("load budgets: %w", err)
	}
	return BuildInsights(month, records, budgets), nil
}
