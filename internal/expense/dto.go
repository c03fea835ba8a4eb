package expense

import (
	errors "github.com/expenso-app/expenso/internal"
	"github.com/expenso-app/expenso/internal/core/common/validation"
	"github.com/shopspring/decimal"
)

// CreateExpenseDTO is the request payload for creating a ledger entry.
// Update reuses it: updates are a full overwrite of every field.
type CreateExpenseDTO struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	PaymentMode string          `json:"paymentMode"`
	SplitInfo   *SplitInfo      `json:"splitInfo,omitempty"`
}

func (dto CreateExpenseDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("type", dto.Type).Required().OneOf(TypeIncome, TypeExpense)
	v.Field("amount", dto.Amount).NonNegativeAmount()
	v.Field("category", dto.Category).Required()
	v.Field("description", dto.Description).Required().MaxLength(500)
	v.Field("date", dto.Date).Required().CalendarDate()
	v.Field("paymentMode", dto.PaymentMode).Required()
	if dto.SplitInfo != nil {
		v.Field("splitInfo.totalPeople", dto.SplitInfo.TotalPeople).PositiveInt()
		v.Field("splitInfo.amountPerPerson", dto.SplitInfo.AmountPerPerson).NonNegativeAmount()
	}
	return v.Validate()
}

type DeleteExpenseResponse struct {
	Message string `json:"message"`
}
