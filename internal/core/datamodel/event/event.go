package event

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type SharedEvent struct {
	ID          string    `gorm:"primaryKey;column:id"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description"`
	ShareCode   string    `gorm:"column:share_code;uniqueIndex:idx_shared_events_share_code;not null"`
	IsActive    bool      `gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (SharedEvent) TableName() string {
	return "shared_events"
}

type SharedExpense struct {
	ID           string          `gorm:"primaryKey;column:id"`
	EventID      string          `gorm:"column:event_id;index:idx_shared_expenses_event_id;not null"`
	Description  string          `gorm:"column:description;not null"`
	Amount       decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null"`
	PaidBy       string          `gorm:"column:paid_by;not null"`
	SplitBetween NameList        `gorm:"column:split_between;type:text;not null"`
	Date         string          `gorm:"column:date;not null"`
	Category     string          `gorm:"column:category;not null"`
	PaymentMode  string          `gorm:"column:payment_mode;not null"`
	CreatedBy    string          `gorm:"column:created_by;not null"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (SharedExpense) TableName() string {
	return "shared_expenses"
}

// SharedEventStats is the read-only projection for the aggregate listing.
// It is never written; expense_count and total_amount come from a grouped
// join over shared_expenses.
type SharedEventStats struct {
	SharedEvent
	ExpenseCount int64           `gorm:"column:expense_count"`
	TotalAmount  decimal.Decimal `gorm:"column:total_amount"`
}

// NameList is an ordered list of participant names persisted as JSON text.
// Order is preserved exactly as submitted. Like SplitInfo, the serialized
// form stays inside the storage layer.
type NameList []string

func (l NameList) Value() (driver.Value, error) {
	if l == nil {
		l = NameList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *NameList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = NameList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported split_between column type %T", src)
	}
}
