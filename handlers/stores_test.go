package handlers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/LovationAdmin/expense-api/models"

	"github.com/google/uuid"
)

// memStore backs every store interface with maps so handlers can be driven
// end to end without a database.
type memStore struct {
	mu       sync.Mutex
	users    map[string]*models.User
	expenses map[string]*models.Expense
	budgets  map[string]*models.Budget
	labels   map[string]string
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*models.User),
		expenses: make(map[string]*models.Expense),
		budgets:  make(map[string]*models.Budget),
		labels:   make(map[string]string),
	}
}

type memUsers struct{ *memStore }
type memExpenses struct{ *memStore }
type memBudgets struct{ *memStore }
type memLabels struct{ *memStore }

func (m memUsers) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return models.ErrEmailExists
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m memUsers) UpdateName(_ context.Context, id, name string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	u.Name = name
	cp := *u
	return &cp, nil
}

func (m memUsers) UpdatePassword(_ context.Context, id, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (m memUsers) SetTOTP(_ context.Context, id, secret string, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.ErrNotFound
	}
	u.TOTPSecret, u.TOTPEnabled = secret, enabled
	return nil
}

func (m memUsers) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.users, id)
	for k, e := range m.expenses {
		if e.UserID == id {
			delete(m.expenses, k)
		}
	}
	for k, b := range m.budgets {
		if b.UserID == id {
			delete(m.budgets, k)
		}
	}
	return nil
}

func (m memExpenses) List(_ context.Context, userID string, f models.ExpenseFilter) ([]models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Expense{}
	for _, e := range m.expenses {
		if e.UserID != userID ||
			(f.Category != "" && e.Category != f.Category) ||
			(f.StartDate != "" && e.Date < f.StartDate) ||
			(f.EndDate != "" && e.Date > f.EndDate) {
			continue
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if f.Offset >= len(out) {
		return []models.Expense{}, nil
	}
	out = out[f.Offset:]
	if len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m memExpenses) Records(_ context.Context, userID string) ([]models.ExpenseRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ExpenseRecord
	for _, e := range m.expenses {
		if e.UserID == userID {
			out = append(out, e.Record())
		}
	}
	return out, nil
}

func (m memExpenses) Create(_ context.Context, e *models.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = uuid.NewString()
	cp := *e
	m.expenses[e.ID] = &cp
	return nil
}

func (m memExpenses) Update(_ context.Context, userID, id string, req models.UpdateExpenseRequest) (*models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.expenses[id]
	if !ok || e.UserID != userID {
		return nil, models.ErrNotFound
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	cp := *e
	return &cp, nil
}

func (m memExpenses) Delete(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.expenses[id]
	if !ok || e.UserID != userID {
		return models.ErrNotFound
	}
	delete(m.expenses, id)
	return nil
}

func (m memBudgets) List(_ context.Context, userID string, f models.BudgetFilter) ([]models.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Budget{}
	for _, b := range m.budgets {
		if b.UserID != userID || (f.Month != "" && b.Month != f.Month) || (f.Category != "" && b.Category != f.Category) {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month > out[j].Month
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func (m memBudgets) Upsert(_ context.Context, b *models.Budget) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.budgets {
		if existing.UserID == b.UserID && existing.Category == b.Category && existing.Month == b.Month {
			existing.MonthlyLimit = b.MonthlyLimit
			*b = *existing
			return false, nil
		}
	}
	b.ID = uuid.NewString()
	cp := *b
	m.budgets[b.ID] = &cp
	return true, nil
}

func (m memBudgets) Delete(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.budgets[id]
	if !ok || b.UserID != userID {
		return models.ErrNotFound
	}
	delete(m.budgets, id)
	return nil
}

func (m memLabels) Remember(_ context.Context, userID, label, category string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.labels[userID+"|"+label] = category
	return nil
}

func (m memLabels) Lookup(_ context.Context, userID, label string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.labels[userID+"|"+label]
	if !ok {
		return "", models.ErrNotFound
	}
	return c, nil
}
