package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/LovationAdmin/expense-api/models"
)

// LabelRepository stores the category a user last chose for a description.
type LabelRepository struct {
	db *sql.DB
}

func NewLabelRepository(db *sql.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

func (r *LabelRepository) Remember(ctx context.Context, userID, label, category string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO label_mappings (user_id, normalized_label, category)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, normalized_label)
		DO UPDATE SET category = EXCLUDED.category, updated_at = NOW()
	`, userID, label, category)
	return err
}

func (r *LabelRepository) Lookup(ctx context.Context, userID, label string) (string, error) {
	var category string
	err := r.db.QueryRowContext(ctx,
		`SELECT category FROM label_mappings WHERE user_id = $1 AND normalized_label = $2`,
		userID, label).Scan(&category)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.ErrNotFound
	}
	return category, err
}
