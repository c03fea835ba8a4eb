package event

import (
	"time"

	eventDatamodel "github.com/expenso-app/expenso/internal/core/datamodel/event"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ShareCode   string    `json:"shareCode"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EventSummary annotates an event with aggregates for bulk listings, where
// full expense lists are not sent.
type EventSummary struct {
	Event
	ExpenseCount int64           `json:"expenseCount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// EventDetail is the single-event view: metadata plus the full ordered
// expense list. Totals are derivable from the list, so none are attached.
type EventDetail struct {
	Event
	Expenses []*SharedExpense `json:"expenses"`
}

type SharedExpense struct {
	ID           string          `json:"id"`
	EventID      string          `json:"eventId"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	PaidBy       string          `json:"paidBy"`
	SplitBetween []string        `json:"splitBetween"`
	Date         string          `json:"date"`
	Category     string          `json:"category"`
	PaymentMode  string          `json:"paymentMode"`
	CreatedBy    string          `json:"createdBy"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func NewEvent(dto CreateEventDTO, shareCode string) *Event {
	return &Event{
		ID:          uuid.NewString(),
		Name:        dto.Name,
		Description: dto.Description,
		ShareCode:   shareCode,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
}

func NewSharedExpense(dto AddSharedExpenseDTO) *SharedExpense {
	split := dto.SplitBetween
	if split == nil {
		// An empty split attributes the full amount to paidBy alone.
		split = []string{}
	}
	return &SharedExpense{
		ID:           uuid.NewString(),
		Description:  dto.Description,
		Amount:       dto.Amount,
		PaidBy:       dto.PaidBy,
		SplitBetween: split,
		Date:         dto.Date,
		Category:     dto.Category,
		PaymentMode:  dto.PaymentMode,
		CreatedBy:    dto.CreatedBy,
		CreatedAt:    time.Now(),
	}
}

func ToDataModel(e *Event) *eventDatamodel.SharedEvent {
	return &eventDatamodel.SharedEvent{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		ShareCode:   e.ShareCode,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
	}
}

func FromDataModel(e *eventDatamodel.SharedEvent) *Event {
	return &Event{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		ShareCode:   e.ShareCode,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
	}
}

func SummaryFromDataModel(s *eventDatamodel.SharedEventStats) *EventSummary {
	return &EventSummary{
		Event:        *FromDataModel(&s.SharedEvent),
		ExpenseCount: s.ExpenseCount,
		TotalAmount:  s.TotalAmount,
	}
}

func ExpenseToDataModel(x *SharedExpense) *eventDatamodel.SharedExpense {
	return &eventDatamodel.SharedExpense{
		ID:           x.ID,
		EventID:      x.EventID,
		Description:  x.Description,
		Amount:       x.Amount,
		PaidBy:       x.PaidBy,
		SplitBetween: eventDatamodel.NameList(x.SplitBetween),
		Date:         x.Date,
		Category:     x.Category,
		PaymentMode:  x.PaymentMode,
		CreatedBy:    x.CreatedBy,
		CreatedAt:    x.CreatedAt,
	}
}

func ExpenseFromDataModel(x *eventDatamodel.SharedExpense) *SharedExpense {
	return &SharedExpense{
		ID:           x.ID,
		EventID:      x.EventID,
		Description:  x.Description,
		Amount:       x.Amount,
		PaidBy:       x.PaidBy,
		SplitBetween: []string(x.SplitBetween),
		Date:         x.Date,
		Category:     x.Category,
		PaymentMode:  x.PaymentMode,
		CreatedBy:    x.CreatedBy,
		CreatedAt:    x.CreatedAt,
	}
}

func ExpensesFromDataModelSlice(rows []*eventDatamodel.SharedExpense) []*SharedExpense {
	result := make([]*SharedExpense, len(rows))
	for i, x := range rows {
		result[i] = ExpenseFromDataModel(x)
	}
	return result
}
