package models

import (
	"strings"
	"time"
)

type Budget struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Category     string    `json:"category"`
	MonthlyLimit float64   `json:"monthlyLimit"`
	Month        string    `json:"month"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type UpsertBudgetRequest struct {
	Category     string   `json:"category"`
	MonthlyLimit *float64 `json:"monthlyLimit"`
	Month        string   `json:"month"`
}

func (r *UpsertBudgetRequest) Validate() error {
	if r.Category == "" || r.MonthlyLimit == nil || r.Month == "" {
		return invalid(CodeMissingFields, "All fields are required (category, monthlyLimit, month)")
	}
	if *r.MonthlyLimit <= 0 {
		return invalid(CodeInvalidLimit, "Monthly limit must be a positive number")
	}
	r.Category = strings.TrimSpace(r.Category)
	if !IsValidCategory(r.Category) {
		return invalid(CodeInvalidCategory, "Invalid category. Must be one of: "+CategoryList())
	}
	if !IsValidMonth(r.Month) {
		return invalid(CodeInvalidMonth, "Month must be in format YYYY-MM")
	}
	return nil
}

type BudgetFilter struct {
	Month    string
	Category string
}

// Budget progress thresholds, in percent of the monthly limit.
const (
	BudgetWarningPercent = 80
)

const (
	BudgetStatusOK       = "ok"
	BudgetStatusWarning  = "warning"
	BudgetStatusExceeded = "exceeded"
)

// BudgetProgress compares one monthly budget with what was actually spent.
type BudgetProgress struct {
	BudgetID   string  `json:"budgetId"`
	Category   string  `json:"category"`
	Month      string  `json:"month"`
	Limit      float64 `json:"limit"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	OverBudget bool    `json:"overBudget"`
	Status     string  `json:"status"`
}
