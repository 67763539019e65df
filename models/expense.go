package models

import (
	"strings"
	"time"
)

type Expense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Record strips an expense down to what the stats aggregator reads.
func (e Expense) Record() ExpenseRecord {
	return ExpenseRecord{Amount: e.Amount, Category: e.Category, Date: e.Date}
}

type CreateExpenseRequest struct {
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
}

func (r *CreateExpenseRequest) Validate() error {
	if r.Amount == nil || r.Category == "" || strings.TrimSpace(r.Description) == "" || r.Date == "" {
		return invalid(CodeMissingFields, "All fields are required (amount, category, description, date)")
	}
	if *r.Amount <= 0 {
		return invalid(CodeInvalidAmount, "Amount must be a positive number")
	}
	r.Category = strings.TrimSpace(r.Category)
	if !IsValidCategory(r.Category) {
		return invalid(CodeInvalidCategory, "Invalid category. Must be one of: "+CategoryList())
	}
	if !IsValidDate(r.Date) {
		return invalid(CodeInvalidDate, "Invalid date format. Must be YYYY-MM-DD")
	}
	r.Description = strings.TrimSpace(r.Description)
	return nil
}

// UpdateExpenseRequest is a partial update; nil fields are left untouched.
type UpdateExpenseRequest struct {
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
}

func (r *UpdateExpenseRequest) Validate() error {
	if r.Amount == nil && r.Category == nil && r.Description == nil && r.Date == nil {
		return invalid(CodeNoFields, "At least one field must be provided for update")
	}
	if r.Amount != nil && *r.Amount <= 0 {
		return invalid(CodeInvalidAmount, "Amount must be a positive number")
	}
	if r.Category != nil {
		cat := strings.TrimSpace(*r.Category)
		if !IsValidCategory(cat) {
			return invalid(CodeInvalidCategory, "Invalid category. Must be one of: "+CategoryList())
		}
		r.Category = &cat
	}
	if r.Date != nil && !IsValidDate(*r.Date) {
		return invalid(CodeInvalidDate, "Invalid date format. Must be YYYY-MM-DD")
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			return invalid(CodeMissingFields, "Description cannot be empty")
		}
		r.Description = &d
	}
	return nil
}

const (
	DefaultExpenseLimit = 100
	MaxExpenseLimit     = 500
)

// ExpenseFilter narrows an expense listing. Empty strings mean no constraint.
type ExpenseFilter struct {
	StartDate string
	EndDate   string
	Category  string
	Limit     int
	Offset    int
}

// Normalize clamps paging to the allowed window and checks the date bounds.
func (f *ExpenseFilter) Normalize() error {
	if f.StartDate != "" && !IsValidDate(f.StartDate) {
		return invalid(CodeInvalidDate, "Invalid startDate. Must be YYYY-MM-DD")
	}
	if f.EndDate != "" && !IsValidDate(f.EndDate) {
		return invalid(CodeInvalidDate, "Invalid endDate. Must be YYYY-MM-DD")
	}
	if f.Limit <= 0 {
		f.Limit = DefaultExpenseLimit
	}
	if f.Limit > MaxExpenseLimit {
		f.Limit = MaxExpenseLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return nil
}

type DeleteResponse struct {
	Message   string `json:"message"`
	DeletedID string `json:"deletedId"`
}

type CategorySuggestion struct {
	Category string `json:"category"`
	Source   string `json:"source"`
}
