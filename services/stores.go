package services

import (
	"context"

	"github.com/LovationAdmin/expense-api/models"
)

// UserStore persists accounts. Lookups return models.ErrNotFound when absent
// and Create returns models.ErrEmailExists on a duplicate email.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateName(ctx context.Context, id, name string) (*models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetTOTP(ctx context.Context, id, encryptedSecret string, enabled bool) error
	Delete(ctx context.Context, id string) error
}

// ExpenseStore persists expenses. Every method is scoped to one user; rows
// owned by someone else behave as missing.
type ExpenseStore interface {
	List(ctx context.Context, userID string, filter models.ExpenseFilter) ([]models.Expense, error)
	Records(ctx context.Context, userID string) ([]models.ExpenseRecord, error)
	Create(ctx context.Context, expense *models.Expense) error
	Update(ctx context.Context, userID, id string, req models.UpdateExpenseRequest) (*models.Expense, error)
	Delete(ctx context.Context, userID, id string) error
}

type BudgetStore interface {
	List(ctx context.Context, userID string, filter models.BudgetFilter) ([]models.Budget, error)
	Upsert(ctx context.Context, budget *models.Budget) (created bool, err error)
	Delete(ctx context.Context, userID, id string) error
}

type LabelStore interface {
	Remember(ctx context.Context, userID, label, category string) error
	Lookup(ctx context.Context, userID, label string) (string, error)
}
