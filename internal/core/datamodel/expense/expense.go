package expense

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          string          `gorm:"primaryKey;column:id"`
	Type        string          `gorm:"column:type;not null"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null"`
	Category    string          `gorm:"column:category;not null"`
	Description string          `gorm:"column:description;not null"`
	Date        string          `gorm:"column:date;not null"`
	PaymentMode string          `gorm:"column:payment_mode;not null"`
	SplitInfo   *SplitInfo      `gorm:"column:split_info;type:text"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Expense) TableName() string {
	return "expenses"
}

// SplitInfo is persisted as JSON text in a single column. The encoded form
// never leaves this package: Value/Scan are the only encode/decode points.
type SplitInfo struct {
	TotalPeople     int             `json:"totalPeople"`
	AmountPerPerson decimal.Decimal `json:"amountPerPerson"`
}

func (s SplitInfo) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *SplitInfo) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported split_info column type %T", src)
	}
}
