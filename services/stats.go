package services

import (
	"cmp"
	"slices"
	"strings"

	"github.com/LovationAdmin/expense-api/models"

	"github.com/shopspring/decimal"
)

// Aggregate groups one user's expenses by category and by month and computes
// overall totals. Amounts are summed as exact decimals and rounded half away
// from zero to two places only when a summary value is emitted, so three
// expenses of 10.005 total 30.02. Categories and dates are grouped by their
// literal value; the caller is expected to have validated them.
func Aggregate(records []models.ExpenseRecord) models.ExpenseStats {
	if len(records) == 0 {
		return models.ExpenseStats{
			ByCategory: []models.CategorySummary{},
			ByMonth:    []models.MonthSummary{},
			Overall:    models.OverallSummary{},
		}
	}

	byCategory := newGrouping()
	byMonth := newGrouping()
	total := decimal.Zero

	for _, r := range records {
		amount := decimal.NewFromFloat(r.Amount)
		total = total.Add(amount)
		byCategory.add(r.Category, amount)
		byMonth.add(MonthKey(r.Date), amount)
	}

	categories := make([]models.CategorySummary, 0, len(byCategory.order))
	for _, g := range byCategory.order {
		categories = append(categories, models.CategorySummary{
			Category: g.key,
			Total:    round2(g.total),
			Count:    g.count,
			Average:  round2(average(g.total, g.count)),
		})
	}
	slices.SortStableFunc(categories, func(a, b models.CategorySummary) int {
		return cmp.Compare(b.Total, a.Total)
	})

	months := make([]models.MonthSummary, 0, len(byMonth.order))
	for _, g := range byMonth.order {
		months = append(months, models.MonthSummary{
			Month: g.key,
			Total: round2(g.total),
			Count: g.count,
		})
	}
	slices.SortStableFunc(months, func(a, b models.MonthSummary) int {
		return strings.Compare(b.Month, a.Month)
	})

	return models.ExpenseStats{
		ByCategory: categories,
		ByMonth:    months,
		Overall: models.OverallSummary{
			TotalAmount:   round2(total),
			TotalCount:    len(records),
			AverageAmount: round2(average(total, len(records))),
		},
	}
}

// MonthKey truncates an ISO date to YYYY-MM. Shorter input is returned whole.
func MonthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

type group struct {
	key   string
	total decimal.Decimal
	count int
}

// grouping accumulates running sums and keeps first-encountered key order.
type grouping struct {
	index map[string]*group
	order []*group
}

func newGrouping() *grouping {
	return &grouping{index: make(map[string]*group)}
}

func (g *grouping) add(key string, amount decimal.Decimal) {
	entry, ok := g.index[key]
	if !ok {
		entry = &group{key: key, total: decimal.Zero}
		g.index[key] = entry
		g.order = append(g.order, entry)
	}
	entry.total = entry.total.Add(amount)
	entry.count++
}

func average(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
