package event

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/expenso-app/expenso/internal"
	eventDatamodel "github.com/expenso-app/expenso/internal/core/datamodel/event"
	"github.com/expenso-app/expenso/internal/core/events"
	"gorm.io/gorm"
)

// RepositoryAPI defines the data access methods for shared events and
// their expenses.
type RepositoryAPI interface {
	Create(event *eventDatamodel.SharedEvent) error
	ListActiveWithStats() ([]*eventDatamodel.SharedEventStats, error)
	GetActiveByCode(shareCode string) (*eventDatamodel.SharedEvent, error)
	ListExpenses(eventID string) ([]*eventDatamodel.SharedExpense, error)
	// AddExpenseByCode resolves the active event and inserts the expense
	// inside one transaction, so the insert can never land on an event id
	// that no longer exists.
	AddExpenseByCode(shareCode string, expense *eventDatamodel.SharedExpense) error
	Deactivate(id string) (int64, error)
}

type Service struct {
	repo   RepositoryAPI
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

// CreateEvent stores a new event with a generated share code, retrying on
// the unique constraint when a generated code is already taken.
func (s *Service) CreateEvent(ctx context.Context, dto CreateEventDTO) (*Event, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("event validation failed", "error", err)
		return nil, err
	}

	for attempt := 1; attempt <= maxShareCodeAttempts; attempt++ {
		code, err := GenerateShareCode()
		if err != nil {
			s.logger.Error("share code generation failed", "error", err)
			return nil, apperrors.NewInternalError("failed to generate share code", err)
		}

		ev := NewEvent(dto, code)
		err = s.repo.Create(ToDataModel(ev))
		if err == nil {
			s.logger.Info("shared event created",
				"event_id", ev.ID,
				"name", ev.Name,
				"share_code", ev.ShareCode,
				"attempt", attempt)
			if s.bus != nil {
				s.bus.Publish(ctx, events.NewSharedEventCreatedEvent(ev.ID, ev.Name, ev.ShareCode))
			}
			return ev, nil
		}

		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.logger.Warn("share code collision, retrying",
				"share_code", code,
				"attempt", attempt)
			continue
		}

		s.logger.Error("failed to create shared event", "error", err)
		return nil, apperrors.NewInternalError("failed to create event", err)
	}

	s.logger.Error("share code space exhausted", "attempts", maxShareCodeAttempts)
	return nil, apperrors.ErrShareCodeExhausted
}

// ListEvents returns all active events, newest first, annotated with
// expense count and total amount from a single grouped query.
func (s *Service) ListEvents() ([]*EventSummary, error) {
	rows, err := s.repo.ListActiveWithStats()
	if err != nil {
		s.logger.Error("failed to list shared events", "error", err)
		return nil, apperrors.NewInternalError("failed to list events", err)
	}

	summaries := make([]*EventSummary, len(rows))
	for i, row := range rows {
		summaries[i] = SummaryFromDataModel(row)
	}
	return summaries, nil
}

// GetEventByCode resolves a share code to its active event and returns the
// full expense list. Unknown and deactivated codes are indistinguishable.
func (s *Service) GetEventByCode(shareCode string) (*EventDetail, error) {
	ev, err := s.resolve(shareCode)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListExpenses(ev.ID)
	if err != nil {
		s.logger.Error("failed to list event expenses", "error", err, "event_id", ev.ID)
		return nil, apperrors.NewInternalError("failed to list event expenses", err)
	}

	return &EventDetail{
		Event:    *FromDataModel(ev),
		Expenses: ExpensesFromDataModelSlice(rows),
	}, nil
}

// AddExpense appends an immutable expense to the event behind the share
// code. The resolve-then-insert sequence is transactional in the
// repository.
func (s *Service) AddExpense(ctx context.Context, shareCode string, dto AddSharedExpenseDTO) (*SharedExpense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("shared expense validation failed", "error", err, "share_code", shareCode)
		return nil, err
	}

	exp := NewSharedExpense(dto)
	dm := ExpenseToDataModel(exp)

	if err := s.repo.AddExpenseByCode(shareCode, dm); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("share code did not resolve", "share_code", shareCode)
			return nil, apperrors.ErrEventNotFound
		}
		s.logger.Error("failed to add shared expense", "error", err, "share_code", shareCode)
		return nil, apperrors.NewInternalError("failed to add expense", err)
	}
	exp.EventID = dm.EventID

	s.logger.Info("shared expense added",
		"event_id", exp.EventID,
		"expense_id", exp.ID,
		"amount", exp.Amount,
		"paid_by", exp.PaidBy)
	if s.bus != nil {
		s.bus.Publish(ctx, events.NewSharedExpenseAddedEvent(exp.EventID, exp.ID, exp.Amount, exp.PaidBy, exp.CreatedBy))
	}

	return exp, nil
}

// ListExpenses returns the event's expenses, newest date first, with the
// same not-found precondition as GetEventByCode.
func (s *Service) ListExpenses(shareCode string) ([]*SharedExpense, error) {
	ev, err := s.resolve(shareCode)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListExpenses(ev.ID)
	if err != nil {
		s.logger.Error("failed to list event expenses", "error", err, "event_id", ev.ID)
		return nil, apperrors.NewInternalError("failed to list event expenses", err)
	}

	return ExpensesFromDataModelSlice(rows), nil
}

// DeactivateEvent revokes a share code. The event and its expenses stay in
// storage but disappear from every lookup and listing path.
func (s *Service) DeactivateEvent(shareCode string) error {
	ev, err := s.resolve(shareCode)
	if err != nil {
		return err
	}

	affected, err := s.repo.Deactivate(ev.ID)
	if err != nil {
		s.logger.Error("failed to deactivate event", "error", err, "event_id", ev.ID)
		return apperrors.NewInternalError("failed to deactivate event", err)
	}
	if affected == 0 {
		return apperrors.ErrEventNotFound
	}

	s.logger.Info("shared event deactivated", "event_id", ev.ID, "share_code", shareCode)
	return nil
}

func (s *Service) resolve(shareCode string) (*eventDatamodel.SharedEvent, error) {
	ev, err := s.repo.GetActiveByCode(shareCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("share code did not resolve", "share_code", shareCode)
			return nil, apperrors.ErrEventNotFound
		}
		s.logger.Error("failed to resolve share code", "error", err, "share_code", shareCode)
		return nil, apperrors.NewInternalError("failed to resolve share code", err)
	}
	return ev, nil
}
