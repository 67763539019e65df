package services

import (
	"context"

	"github.com/LovationAdmin/expense-api/events"
	"github.com/LovationAdmin/expense-api/models"
	"github.com/LovationAdmin/expense-api/utils"
)

type BudgetService struct {
	budgets BudgetStore
	events  events.Emitter
}

func NewBudgetService(budgets BudgetStore, emitter events.Emitter) *BudgetService {
	if emitter == nil {
		emitter = events.Nop{}
	}
	return &BudgetService{budgets: budgets, events: emitter}
}

func (s *BudgetService) List(ctx context.Context, userID string, filter models.BudgetFilter) ([]models.Budget, error) {
	return s.budgets.List(ctx, userID, filter)
}

// Upsert sets the monthly limit for (userID, category, month). created is
// false when an existing budget was updated.
func (s *BudgetService) Upsert(ctx context.Context, userID string, req models.UpsertBudgetRequest) (*models.Budget, bool, error) {
	budget := &models.Budget{
		UserID:       userID,
		Category:     req.Category,
		MonthlyLimit: *req.MonthlyLimit,
		Month:        req.Month,
	}
	created, err := s.budgets.Upsert(ctx, budget)
	if err != nil {
		return nil, false, err
	}

	s.events.Emit(events.New(events.BudgetUpserted, events.WithUser(userID), events.WithEntity(budget.ID)))
	utils.LogBudgetAction("upsert", budget.ID, userID)
	return budget, created, nil
}

func (s *BudgetService) Delete(ctx context.Context, userID, id string) error {
	if err := s.budgets.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.events.Emit(events.New(events.BudgetDeleted, events.WithUser(userID), events.WithEntity(id)))
	utils.LogBudgetAction("delete", id, userID)
	return nil
}
