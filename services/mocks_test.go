package services

import (
	"context"
	"sync"

	"github.com/LovationAdmin/expense-api/events"
	"github.com/LovationAdmin/expense-api/models"
)

type MockUserStore struct {
	CreateFunc         func(ctx context.Context, user *models.User) error
	GetByEmailFunc     func(ctx context.Context, email string) (*models.User, error)
	GetByIDFunc        func(ctx context.Context, id string) (*models.User, error)
	UpdateNameFunc     func(ctx context.Context, id, name string) (*models.User, error)
	UpdatePasswordFunc func(ctx context.Context, id, passwordHash string) error
	SetTOTPFunc        func(ctx context.Context, id, encryptedSecret string, enabled bool) error
	DeleteFunc         func(ctx context.Context, id string) error
}

func (m *MockUserStore) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserStore) UpdateName(ctx context.Context, id, name string) (*models.User, error) {
	if m.UpdateNameFunc != nil {
		return m.UpdateNameFunc(ctx, id, name)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserStore) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, passwordHash)
	}
	return nil
}

func (m *MockUserStore) SetTOTP(ctx context.Context, id, encryptedSecret string, enabled bool) error {
	if m.SetTOTPFunc != nil {
		return m.SetTOTPFunc(ctx, id, encryptedSecret, enabled)
	}
	return nil
}

func (m *MockUserStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type MockExpenseStore struct {
	ListFunc    func(ctx context.Context, userID string, filter models.ExpenseFilter) ([]models.Expense, error)
	RecordsFunc func(ctx context.Context, userID string) ([]models.ExpenseRecord, error)
	CreateFunc  func(ctx context.Context, expense *models.Expense) error
	UpdateFunc  func(ctx context.Context, userID, id string, req models.UpdateExpenseRequest) (*models.Expense, error)
	DeleteFunc  func(ctx context.Context, userID, id string) error
}

func (m *MockExpenseStore) List(ctx context.Context, userID string, filter models.ExpenseFilter) ([]models.Expense, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter)
	}
	return []models.Expense{}, nil
}

func (m *MockExpenseStore) Records(ctx context.Context, userID string) ([]models.ExpenseRecord, error) {
	if m.RecordsFunc != nil {
		return m.RecordsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockExpenseStore) Create(ctx context.Context, expense *models.Expense) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, expense)
	}
	return nil
}

func (m *MockExpenseStore) Update(ctx context.Context, userID, id string, req models.UpdateExpenseRequest) (*models.Expense, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, req)
	}
	return nil, models.ErrNotFound
}

func (m *MockExpenseStore) Delete(ctx context.Context, userID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

type MockBudgetStore struct {
	ListFunc   func(ctx context.Context, userID string, filter models.BudgetFilter) ([]models.Budget, error)
	UpsertFunc func(ctx context.Context, budget *models.Budget) (bool, error)
	DeleteFunc func(ctx context.Context, userID, id string) error
}

func (m *MockBudgetStore) List(ctx context.Context, userID string, filter models.BudgetFilter) ([]models.Budget, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter)
	}
	return []models.Budget{}, nil
}

func (m *MockBudgetStore) Upsert(ctx context.Context, budget *models.Budget) (bool, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, budget)
	}
	return true, nil
}

func (m *MockBudgetStore) Delete(ctx context.Context, userID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

// memoryLabels is an in-memory LabelStore.
type memoryLabels struct {
	mu     sync.Mutex
	labels map[string]string
	err    error
}

func newMemoryLabels() *memoryLabels {
	return &memoryLabels{labels: make(map[string]string)}
}

func (m *memoryLabels) Remember(_ context.Context, userID, label, category string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.labels[userID+"|"+label] = category
	return nil
}

func (m *memoryLabels) Lookup(_ context.Context, userID, label string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	category, ok := m.labels[userID+"|"+label]
	if !ok {
		return "", models.ErrNotFound
	}
	return category, nil
}

// recordingEmitter keeps every emitted event.
type recordingEmitter struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingEmitter) Emit(e events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingEmitter) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

// memoryUsers is an in-memory UserStore keyed by ID.
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
	next  int
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[string]*models.User)}
}

func (m *memoryUsers) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return models.ErrEmailExists
		}
	}
	m.next++
	user.ID = "user-" + string(rune('0'+m.next))
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
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

func (m *memoryUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memoryUsers) UpdateName(_ context.Context, id, name string) (*models.User, error) {
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

func (m *memoryUsers) UpdatePassword(_ context.Context, id, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *memoryUsers) SetTOTP(_ context.Context, id, encryptedSecret string, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.ErrNotFound
	}
	u.TOTPSecret = encryptedSecret
	u.TOTPEnabled = enabled
	return nil
}

func (m *memoryUsers) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.users, id)
	return nil
}
