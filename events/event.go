// Package events carries expense and budget change notifications to the
// realtime hub and the message broker.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ExpenseCreated = "expense.created"
	ExpenseUpdated = "expense.updated"
	ExpenseDeleted = "expense.deleted"
	BudgetUpserted = "budget.upserted"
	BudgetDeleted  = "budget.deleted"
)

type Event struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	EntityID  string    `json:"entityId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Option func(*Event)

func WithUser(userID string) Option {
	return func(e *Event) {
		e.UserID = userID
	}
}

func WithEntity(entityID string) Option {
	return func(e *Event) {
		e.EntityID = entityID
	}
}

func New(eventType string, opts ...Option) Event {
	e := Event{
		ID:        uuid.New(),
		Type:      eventType,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Sink receives dispatched events.
type Sink interface {
	Publish(ctx context.Context, e Event) error
}

// Emitter is what services use to announce changes. Emit never blocks.
type Emitter interface {
	Emit(e Event)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Emit(Event) {}
