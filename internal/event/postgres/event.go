package postgres

import (
	eventDatamodel "github.com/expenso-app/expenso/internal/core/datamodel/event"
	"github.com/expenso-app/expenso/internal/event"
	"gorm.io/gorm"
)

// EventRepository implements event.RepositoryAPI using GORM.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) event.RepositoryAPI {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ev *eventDatamodel.SharedEvent) error {
	return r.db.Create(ev).Error
}

// ListActiveWithStats annotates every active event with its expense count
// and total amount in one grouped join, instead of a query per event.
func (r *EventRepository) ListActiveWithStats() ([]*eventDatamodel.SharedEventStats, error) {
	var rows []*eventDatamodel.SharedEventStats
	err := r.db.
		Table("shared_events").
		Select("shared_events.*, COUNT(shared_expenses.id) AS expense_count, COALESCE(SUM(shared_expenses.amount), 0) AS total_amount").
		Joins("LEFT JOIN shared_expenses ON shared_expenses.event_id = shared_events.id").
		Where("shared_events.is_active = ?", true).
		Group("shared_events.id").
		Order("shared_events.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// GetActiveByCode returns gorm.ErrRecordNotFound for unknown and inactive
// codes alike.
func (r *EventRepository) GetActiveByCode(shareCode string) (*eventDatamodel.SharedEvent, error) {
	var ev eventDatamodel.SharedEvent
	err := r.db.
		Where("share_code = ? AND is_active = ?", shareCode, true).
		First(&ev).Error
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *EventRepository) ListExpenses(eventID string) ([]*eventDatamodel.SharedExpense, error) {
	var rows []*eventDatamodel.SharedExpense
	err := r.db.
		Where("event_id = ?", eventID).
		Order("date DESC").
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// AddExpenseByCode resolves the share code and inserts the expense in a
// single transaction. A concurrent deactivation or delete cannot leave an
// expense pointing at a missing event.
func (r *EventRepository) AddExpenseByCode(shareCode string, exp *eventDatamodel.SharedExpense) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var ev eventDatamodel.SharedEvent
		if err := tx.
			Where("share_code = ? AND is_active = ?", shareCode, true).
			First(&ev).Error; err != nil {
			return err
		}

		exp.EventID = ev.ID
		return tx.Create(exp).Error
	})
}

func (r *EventRepository) Deactivate(id string) (int64, error) {
	result := r.db.
		Model(&eventDatamodel.SharedEvent{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
