package services

import (
	"time"

	"github.com/LovationAdmin/expense-api/models"

	"github.com/shopspring/decimal"
)

// BudgetProgressFor measures each budget against the expenses recorded in
// its month and category. Records from other months are ignored.
func BudgetProgressFor(budgets []models.Budget, records []models.ExpenseRecord) []models.BudgetProgress {
	spent := make(map[string]decimal.Decimal)
	for _, r := range records {
		key := MonthKey(r.Date) + "|" + r.Category
		spent[key] = spent[key].Add(decimal.NewFromFloat(r.Amount))
	}

	hundred := decimal.NewFromInt(100)
	progress := make([]models.BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		limit := decimal.NewFromFloat(b.MonthlyLimit)
		used := spent[b.Month+"|"+b.Category]

		percentage := decimal.Zero
		if limit.IsPositive() {
			percentage = used.Div(limit).Mul(hundred)
		}

		status := models.BudgetStatusOK
		switch {
		case used.GreaterThan(limit):
			status = models.BudgetStatusExceeded
		case percentage.GreaterThanOrEqual(decimal.NewFromInt(models.BudgetWarningPercent)):
			status = models.BudgetStatusWarning
		}

		progress = append(progress, models.BudgetProgress{
			BudgetID:   b.ID,
			Category:   b.Category,
			Month:      b.Month,
			Limit:      round2(limit),
			Spent:      round2(used),
			Remaining:  round2(limit.Sub(used)),
			Percentage: percentage.Round(1).InexactFloat64(),
			OverBudget: used.GreaterThan(limit),
			Status:     status,
		})
	}
	return progress
}

// BuildInsights compares month with the month before it and flags the
// budgets of month that have been exceeded.
func BuildInsights(month string, records []models.ExpenseRecord, budgets []models.Budget) models.Insights {
	previous := PreviousMonth(month)

	var current []models.ExpenseRecord
	for _, r := range records {
		if MonthKey(r.Date) == month {
			current = append(current, r)
		}
	}

	insights := models.Insights{
		Month:         month,
		PreviousMonth: previous,
		OverBudget:    []models.BudgetProgress{},
		Transactions:  len(current),
	}

	for _, m := range Aggregate(records).ByMonth {
		switch m.Month {
		case month:
			insights.MonthTotal = m.Total
		case previous:
			insights.PreviousTotal = m.Total
		}
	}

	if insights.PreviousTotal != 0 {
		prev := decimal.NewFromFloat(insights.PreviousTotal)
		change := decimal.NewFromFloat(insights.MonthTotal).Sub(prev).Div(prev).Mul(decimal.NewFromInt(100))
		pct := change.Round(1).InexactFloat64()
		insights.ChangePercent = &pct
	}

	if stats := Aggregate(current); len(stats.ByCategory) > 0 {
		top := stats.ByCategory[0]
		insights.TopCategory = &top
	}

	var monthBudgets []models.Budget
	for _, b := range budgets {
		if b.Month == month {
			monthBudgets = append(monthBudgets, b)
		}
	}
	for _, p := range BudgetProgressFor(monthBudgets, current) {
		if p.OverBudget {
			insights.OverBudget = append(insights.OverBudget, p)
		}
	}

	return insights
}

// PreviousMonth returns the month key before month, or "" if month is not a
// valid YYYY-MM key.
func PreviousMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return ""
	}
	return t.AddDate(0, -1, 0).Format("2006-01")
}
