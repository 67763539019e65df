package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/LovationAdmin/expense-api/models"

	"github.com/google/uuid"
)

type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) List(ctx context.Context, userID string, f models.BudgetFilter) ([]models.Budget, error) {
	conditions := []string{"user_id = $1"}
	args := []any{userID}

	if f.Month != "" {
		args = append(args, f.Month)
		conditions = append(conditions, fmt.Sprintf("month = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, category, monthly_limit, month, created_at, updated_at
		FROM budgets
		WHERE `+strings.Join(conditions, " AND ")+`
		ORDER BY month DESC, category ASC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.MonthlyLimit, &b.Month, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// Upsert creates the (user, category, month) budget or replaces its limit.
// created reports whether a new row was inserted.
func (r *BudgetRepository) Upsert(ctx context.Context, b *models.Budget) (bool, error) {
	now := time.Now().UTC()
	var created bool
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO budgets (id, user_id, category, monthly_limit, month, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (user_id, category, month)
		DO UPDATE SET monthly_limit = EXCLUDED.monthly_limit, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at, (xmax = 0)
	`, uuid.New().String(), b.UserID, b.Category, b.MonthlyLimit, b.Month, now).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt, &created)
	if err != nil {
		return false, fmt.Errorf("upsert budget: %w", err)
	}
	return created, nil
}

func (r *BudgetRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return expectOne(res)
}
