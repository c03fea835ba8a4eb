package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventTypeSharedEventCreated = "shared_event.created"
	EventTypeSharedExpenseAdded = "shared_expense.added"
)

type SharedEventCreatedEvent struct {
	BaseEvent
	SharedEventID string `json:"shared_event_id"`
	Name          string `json:"name"`
	ShareCode     string `json:"share_code"`
}

func NewSharedEventCreatedEvent(sharedEventID, name, shareCode string) *SharedEventCreatedEvent {
	return &SharedEventCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeSharedEventCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"shared_event_id": sharedEventID,
				"name":            name,
				"share_code":      shareCode,
			},
		},
		SharedEventID: sharedEventID,
		Name:          name,
		ShareCode:     shareCode,
	}
}

type SharedExpenseAddedEvent struct {
	BaseEvent
	SharedEventID string          `json:"shared_event_id"`
	ExpenseID     string          `json:"expense_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaidBy        string          `json:"paid_by"`
	CreatedBy     string          `json:"created_by"`
}

func NewSharedExpenseAddedEvent(sharedEventID, expenseID string, amount decimal.Decimal, paidBy, createdBy string) *SharedExpenseAddedEvent {
	return &SharedExpenseAddedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeSharedExpenseAdded,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"shared_event_id": sharedEventID,
				"expense_id":      expenseID,
				"amount":          amount.String(),
				"paid_by":         paidBy,
				"created_by":      createdBy,
			},
		},
		SharedEventID: sharedEventID,
		ExpenseID:     expenseID,
		Amount:        amount,
		PaidBy:        paidBy,
		CreatedBy:     createdBy,
	}
}
