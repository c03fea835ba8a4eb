package postgres

import (
	expenseDatamodel "github.com/expenso-app/expenso/internal/core/datamodel/expense"
	"github.com/expenso-app/expenso/internal/expense"
	"gorm.io/gorm"
)

// ExpenseRepository implements expense.RepositoryAPI using GORM.
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.RepositoryAPI {
	return &ExpenseRepository{db: db}
}

// GetAll returns all entries, newest date first. created_at ASC keeps
// entries on the same date in insertion order.
func (r *ExpenseRepository) GetAll() ([]*expenseDatamodel.Expense, error) {
	var expenses []*expenseDatamodel.Expense
	err := r.db.
		Order("date DESC").
		Order("created_at ASC").
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) GetByID(id string) (*expenseDatamodel.Expense, error) {
	var exp expenseDatamodel.Expense
	err := r.db.Where("id = ?", id).First(&exp).Error
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

func (r *ExpenseRepository) Create(exp *expenseDatamodel.Expense) error {
	return r.db.Create(exp).Error
}

func (r *ExpenseRepository) Update(exp *expenseDatamodel.Expense) error {
	// Save writes every column, including a NULL split_info when the
	// update removed the split.
	return r.db.Save(exp).Error
}

func (r *ExpenseRepository) Delete(id string) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&expenseDatamodel.Expense{})
	return result.RowsAffected, result.Error
}
