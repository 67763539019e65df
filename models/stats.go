package models

// ExpenseRecord is the aggregator's read-only view of an expense.
// Category and Date are treated as opaque strings.
type ExpenseRecord struct {
	Amount   float64
	Category string
	Date     string
}

type CategorySummary struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
	Average  float64 `json:"average"`
}

type MonthSummary struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type OverallSummary struct {
	TotalAmount   float64 `json:"totalAmount"`
	TotalCount    int     `json:"totalCount"`
	AverageAmount float64 `json:"averageAmount"`
}

type ExpenseStats struct {
	ByCategory []CategorySummary `json:"byCategory"`
	ByMonth    []MonthSummary    `json:"byMonth"`
	Overall    OverallSummary    `json:"overall"`
}

// Insights summarizes one month against the month before it.
type Insights struct {
	Month         string           `json:"month"`
	MonthTotal    float64          `json:"monthTotal"`
	PreviousMonth string           `json:"previousMonth"`
	PreviousTotal float64          `json:"previousTotal"`
	ChangePercent *float64         `json:"changePercent"` // nil when the previous month is empty
	TopCategory   *CategorySummary `json:"topCategory"`
	OverBudget    []BudgetProgress `json:"overBudget"`
	Transactions  int              `json:"transactions"`
}
