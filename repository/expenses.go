package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LovationAdmin/expense-api/models"

	"github.com/google/uuid"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

const expenseColumns = `id, user_id, amount, category, description, date, created_at, updated_at`

func scanExpense(row interface{ Scan(...any) error }) (*models.Expense, error) {
	var e models.Expense
	err := row.Scan(&e.ID, &e.UserID, &e.Amount, &e.Category, &e.Description, &e.Date, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns the user's expenses, newest date first.
func (r *ExpenseRepository) List(ctx context.Context, userID string, f models.ExpenseFilter) ([]models.Expense, error) {
	conditions := []string{"user_id = $1"}
	args := []any{userID}

	if f.StartDate != "" {
		args = append(args, f.StartDate)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if f.EndDate != "" {
		args = append(args, f.EndDate)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`
		SELECT %s FROM expenses
		WHERE %s
		ORDER BY date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, expenseColumns, strings.Join(conditions, " AND "), len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *e)
	}
	return expenses, rows.Err()
}

// Records loads every expense of the user in the shape the aggregator reads.
func (r *ExpenseRepository) Records(ctx context.Context, userID string) ([]models.ExpenseRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT amount, category, date FROM expenses WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("load expense records: %w", err)
	}
	defer rows.Close()

	var records []models.ExpenseRecord
	for rows.Next() {
		var rec models.ExpenseRecord
		if err := rows.Scan(&rec.Amount, &rec.Category, &rec.Date); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	now := time.Now().UTC()
	e.ID = uuid.New().String()
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO expenses (id, user_id, amount, category, description, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, e.ID, e.UserID, e.Amount, e.Category, e.Description, e.Date, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of req to the user's expense.
func (r *ExpenseRepository) Update(ctx context.Context, userID, id string, req models.UpdateExpenseRequest) (*models.Expense, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE expenses SET
			amount = COALESCE($3, amount),
			category = COALESCE($4, category),
			description = COALESCE($5, description),
			date = COALESCE($6, date),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING `+expenseColumns,
		id, userID, req.Amount, req.Category, req.Description, req.Date)
	return scanExpense(row)
}

func (r *ExpenseRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return expectOne(res)
}
