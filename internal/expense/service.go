package expense

import (
	"log/slog"

	errors "github.com/expenso-app/expenso/internal"
	expenseDatamodel "github.com/expenso-app/expenso/internal/core/datamodel/expense"
)

// RepositoryAPI defines the data access methods for the personal ledger.
type RepositoryAPI interface {
	GetAll() ([]*expenseDatamodel.Expense, error)
	GetByID(id string) (*expenseDatamodel.Expense, error)
	Create(expense *expenseDatamodel.Expense) error
	Update(expense *expenseDatamodel.Expense) error
	Delete(id string) (int64, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListExpenses returns every ledger entry, newest date first. Entries on
// the same date keep insertion order.
func (s *Service) ListExpenses() ([]*Expense, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err)
		return nil, errors.NewInternalError("failed to list expenses", err)
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) CreateExpense(dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("expense validation failed", "error", err)
		return nil, err
	}

	exp := NewExpense(dto)
	if err := s.repo.Create(ToDataModel(exp)); err != nil {
		s.logger.Error("failed to create expense", "error", err)
		return nil, errors.NewInternalError("failed to create expense", err)
	}

	s.logger.Info("expense created",
		"expense_id", exp.ID,
		"type", exp.Type,
		"amount", exp.Amount)

	return exp, nil
}

// UpdateExpense overwrites every field of an existing entry.
func (s *Service) UpdateExpense(id string, dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("expense validation failed", "error", err, "expense_id", id)
		return nil, err
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Warn("expense not found for update", "expense_id", id)
		return nil, errors.ErrExpenseNotFound
	}

	updated := &Expense{
		ID:          existing.ID,
		Type:        dto.Type,
		Amount:      dto.Amount,
		Category:    dto.Category,
		Description: dto.Description,
		Date:        dto.Date,
		PaymentMode: dto.PaymentMode,
		SplitInfo:   dto.SplitInfo,
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.repo.Update(ToDataModel(updated)); err != nil {
		s.logger.Error("failed to update expense", "error", err, "expense_id", id)
		return nil, errors.NewInternalError("failed to update expense", err)
	}

	s.logger.Info("expense updated", "expense_id", id)
	return updated, nil
}

func (s *Service) DeleteExpense(id string) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete expense", "error", err, "expense_id", id)
		return errors.NewInternalError("failed to delete expense", err)
	}
	if affected == 0 {
		s.logger.Warn("expense not found for delete", "expense_id", id)
		return errors.ErrExpenseNotFound
	}

	s.logger.Info("expense deleted", "expense_id", id)
	return nil
}
