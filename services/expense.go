package services

import (
	"context"

	"github.com/LovationAdmin/expense-api/events"
	"github.com/LovationAdmin/expense-api/models"
	"github.com/LovationAdmin/expense-api/utils"
)

type ExpenseService struct {
	expenses    ExpenseStore
	categorizer *Categorizer
	events      events.Emitter
}

func NewExpenseService(expenses ExpenseStore, categorizer *Categorizer, emitter events.Emitter) *ExpenseService {
	if emitter == nil {
		emitter = events.Nop{}
	}
	return &ExpenseService{expenses: expenses, categorizer: categorizer, events: emitter}
}

// List returns the caller's expenses, newest first, with paging clamped.
func (s *ExpenseService) List(ctx context.Context, userID string, filter models.ExpenseFilter) ([]models.Expense, error) {
	if err := filter.Normalize(); err != nil {
		return nil, err
	}
	return s.expenses.List(ctx, userID, filter)
}

// Create stores a validated expense for userID.
func (s *ExpenseService) Create(ctx context.Context, userID string, req models.CreateExpenseRequest) (*models.Expense, error) {
	expense := &models.Expense{
		UserID:      userID,
		Amount:      *req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.categorizer.Remember(ctx, userID, expense.Description, expense.Category)
	s.events.Emit(events.New(events.ExpenseCreated, events.WithUser(userID), events.WithEntity(expense.ID)))
	utils.LogExpenseAction("create", expense.ID, userID)
	return expense, nil
}

func (s *ExpenseService) Update(ctx context.Context, userID, id string, req models.UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.expenses.Update(ctx, userID, id, req)
	if err != nil {
		return nil, err
	}

	if req.Category != nil || req.Description != nil {
		s.categorizer.Remember(ctx, userID, expense.Description, expense.Category)
	}
	s.events.Emit(events.New(events.ExpenseUpdated, events.WithUser(userID), events.WithEntity(expense.ID)))
	utils.LogExpenseAction("update", expense.ID, userID)
	return expense, nil
}

func (s *ExpenseService) Delete(ctx context.Context, userID, id string) error {
	if err := s.expenses.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.events.Emit(events.New(events.ExpenseDeleted, events.WithUser(userID), events.WithEntity(id)))
	utils.LogExpenseAction("delete", id, userID)
	return nil
}

func (s *ExpenseService) SuggestCategory(ctx context.Context, userID, description string) (models.CategorySuggestion, error) {
	return s.categorizer.Suggest(ctx, userID, description)
}
