package expense

import (
	"time"

	expenseDatamodel "github.com/expenso-app/expenso/internal/core/datamodel/expense"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry types for the personal ledger.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type Expense struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	PaymentMode string          `json:"paymentMode"`
	SplitInfo   *SplitInfo      `json:"splitInfo,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// SplitInfo mirrors the stored structure; absent when the expense is not
// split.
type SplitInfo struct {
	TotalPeople     int             `json:"totalPeople"`
	AmountPerPerson decimal.Decimal `json:"amountPerPerson"`
}

func NewExpense(dto CreateExpenseDTO) *Expense {
	return &Expense{
		ID:          uuid.NewString(),
		Type:        dto.Type,
		Amount:      dto.Amount,
		Category:    dto.Category,
		Description: dto.Description,
		Date:        dto.Date,
		PaymentMode: dto.PaymentMode,
		SplitInfo:   dto.SplitInfo,
		CreatedAt:   time.Now(),
	}
}

func ToDataModel(e *Expense) *expenseDatamodel.Expense {
	dm := &expenseDatamodel.Expense{
		ID:          e.ID,
		Type:        e.Type,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date,
		PaymentMode: e.PaymentMode,
		CreatedAt:   e.CreatedAt,
	}
	if e.SplitInfo != nil {
		dm.SplitInfo = &expenseDatamodel.SplitInfo{
			TotalPeople:     e.SplitInfo.TotalPeople,
			AmountPerPerson: e.SplitInfo.AmountPerPerson,
		}
	}
	return dm
}

func FromDataModel(e *expenseDatamodel.Expense) *Expense {
	exp := &Expense{
		ID:          e.ID,
		Type:        e.Type,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date,
		PaymentMode: e.PaymentMode,
		CreatedAt:   e.CreatedAt,
	}
	if e.SplitInfo != nil {
		exp.SplitInfo = &SplitInfo{
			TotalPeople:     e.SplitInfo.TotalPeople,
			AmountPerPerson: e.SplitInfo.AmountPerPerson,
		}
	}
	return exp
}

func FromDataModelSlice(expenses []*expenseDatamodel.Expense) []*Expense {
	result := make([]*Expense, len(expenses))
	for i, e := range expenses {
		result[i] = FromDataModel(e)
	}
	return result
}
