package services

import (
	"context"
	"testing"

	"github.com/LovationAdmin/expense-api/events"
	"github.com/LovationAdmin/expense-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetService_Upsert(t *testing.T) {
	existing := map[string]string{}
	store := &MockBudgetStore{
		UpsertFunc: func(ctx context.Context, b *models.Budget) (bool, error) {
			key := b.UserID + "|" + b.Category + "|" + b.Month
			id, ok := existing[key]
			if !ok {
				id = "budget-" + b.Category
				existing[key] = id
			}
			b.ID = id
			return !ok, nil
		},
	}
	emitter := &recordingEmitter{}
	svc := NewBudgetService(store, emitter)
	req := models.UpsertBudgetRequest{Category: "Food", MonthlyLimit: ptr(500.0), Month: "2024-05"}

	first, created, err := svc.Upsert(context.Background(), "u1", req)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 500.0, first.MonthlyLimit)

	req.MonthlyLimit = ptr(650.0)
	second, created, err := svc.Upsert(context.Background(), "u1", req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 650.0, second.MonthlyLimit)

	assert.Equal(t, []string{events.BudgetUpserted, events.BudgetUpserted}, emitter.types())
}

func TestBudgetService_Delete(t *testing.T) {
	emitter := &recordingEmitter{}
	store := &MockBudgetStore{
		DeleteFunc: func(ctx context.Context, userID, id string) error {
			return models.ErrNotFound
		},
	}
	svc := NewBudgetService(store, emitter)

	err := svc.Delete(context.Background(), "u1", "b1")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Empty(t, emitter.types())
}

func TestReportService(t *testing.T) {
	ctx := context.Background()
	expenses := &MockExpenseStore{
		RecordsFunc: func(ctx context.Context, userID string) ([]models.ExpenseRecord, error) {
			return []models.ExpenseRecord{
				rec(40, "Food", "2024-05-02"),
				rec(80, "Food", "2024-05-10"),
				rec(20, "Bills", "2024-04-10"),
			}, nil
		},
	}
	var gotFilter models.BudgetFilter
	budgets := &MockBudgetStore{
		ListFunc: func(ctx context.Context, userID string, filter models.BudgetFilter) ([]models.Budget, error) {
			gotFilter = filter
			return []models.Budget{budget("b1", "Food", "2024-05", 100)}, nil
		},
	}
	svc := NewReportService(expenses, budgets)

	stats, err := svc.Stats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 140.0, stats.Overall.TotalAmount)
	assert.Equal(t, 3, stats.Overall.TotalCount)

	progress, err := svc.BudgetProgress(ctx, "u1", "2024-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-05", gotFilter.Month)
	require.Len(t, progress, 1)
	assert.Equal(t, 120.0, progress[0].Spent)
	assert.True(t, progress[0].OverBudget)

	insights, err := svc.Insights(ctx, "u1", "2024-05")
	require.NoError(t, err)
	assert.Equal(t, 120.0, insights.MonthTotal)
	assert.Equal(t, 20.0, insights.PreviousTotal)
	require.Len(t, insights.OverBudget, 1)
}
