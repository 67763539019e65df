// Package seed loads the demo account used for local development.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/LovationAdmin/expense-api/models"
	"github.com/LovationAdmin/expense-api/services"
	"github.com/LovationAdmin/expense-api/utils"
)

const (
	DemoName     = "Demo User"
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo123"
)

// DemoBudgets are the monthly limits seeded for the current month.
var DemoBudgets = []struct {
	Category models.Category
	Limit    float64
}{
	{models.CategoryFood, 500},
	{models.CategoryTransport, 300},
	{models.CategoryEntertainment, 200},
	{models.CategoryShopping, 400},
	{models.CategoryBills, 1000},
	{models.CategoryHealthcare, 200},
}

// Result summarises one seeding run.
type Result struct {
	UserID         string
	UserCreated    bool
	BudgetsCreated int
	BudgetsUpdated int
}

// Demo creates the demo user if missing and sets its budgets for month.
// Running it again leaves the account as it was and resets the limits.
func Demo(ctx context.Context, users services.UserStore, budgets services.BudgetStore, month string) (*Result, error) {
	if !models.IsValidMonth(month) {
		return nil, fmt.Errorf("invalid month %q", month)
	}

	user, created, err := demoUser(ctx, users)
	if err != nil {
		return nil, err
	}
	res := &Result{UserID: user.ID, UserCreated: created}

	for _, b := range DemoBudgets {
		budget := &models.Budget{
			UserID:       user.ID,
			Category:     string(b.Category),
			MonthlyLimit: b.Limit,
			Month:        month,
		}
		isNew, err := budgets.Upsert(ctx, budget)
		if err != nil {
			return nil, fmt.Errorf("seed %s budget: %w", b.Category, err)
		}
		if isNew {
			res.BudgetsCreated++
		} else {
			res.BudgetsUpdated++
		}
	}

	slog.Info("seed complete",
		"user_created", res.UserCreated,
		"budgets_created", res.BudgetsCreated,
		"budgets_updated", res.BudgetsUpdated,
		"month", month)
	return res, nil
}

func demoUser(ctx context.Context, users services.UserStore) (*models.User, bool, error) {
	user, err := users.GetByEmail(ctx, DemoEmail)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, false, fmt.Errorf("look up demo user: %w", err)
	}

	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return nil, false, fmt.Errorf("hash demo password: %w", err)
	}
	user = &models.User{Name: DemoName, Email: DemoEmail, PasswordHash: hash}
	if err := users.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("create demo user: %w", err)
	}
	return user, true, nil
}
