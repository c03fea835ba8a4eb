package event

import (
	errors "github.com/expenso-app/expenso/internal"
	"github.com/expenso-app/expenso/internal/core/common/validation"
	"github.com/shopspring/decimal"
)

type CreateEventDTO struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (dto CreateEventDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(200)
	v.Field("description", dto.Description).MaxLength(500)
	return v.Validate()
}

type AddSharedExpenseDTO struct {
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	PaidBy       string          `json:"paidBy"`
	SplitBetween []string        `json:"splitBetween,omitempty"`
	Date         string          `json:"date"`
	Category     string          `json:"category"`
	PaymentMode  string          `json:"paymentMode"`
	CreatedBy    string          `json:"createdBy"`
}

func (dto AddSharedExpenseDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("description", dto.Description).Required().MaxLength(500)
	v.Field("amount", dto.Amount).NonNegativeAmount()
	v.Field("paidBy", dto.PaidBy).Required()
	v.Field("date", dto.Date).Required().CalendarDate()
	v.Field("category", dto.Category).Required()
	v.Field("paymentMode", dto.PaymentMode).Required()
	v.Field("createdBy", dto.CreatedBy).Required()
	return v.Validate()
}
