package expense_test

import (
	"errors"
	"log/slog"
	"os"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	expenseDatamodel "github.com/expenso-app/expenso/internal/core/datamodel/expense"
	"github.com/expenso-app/expenso/internal/expense"
)

// Mock repository for testing
type mockExpenseRepository struct {
	rows        map[string]*expenseDatamodel.Expense
	createError error
	getError    error
	updateError error
	deleteError error
}

func newMockExpenseRepository() *mockExpenseRepository {
	return &mockExpenseRepository{
		rows: make(map[string]*expenseDatamodel.Expense),
	}
}

func (m *mockExpenseRepository) GetAll() ([]*expenseDatamodel.Expense, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	all := make([]*expenseDatamodel.Expense, 0, len(m.rows))
	for _, e := range m.rows {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Date != all[j].Date {
			return all[i].Date > all[j].Date
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	return all, nil
}

func (m *mockExpenseRepository) GetByID(id string) (*expenseDatamodel.Expense, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	e, ok := m.rows[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return e, nil
}

func (m *mockExpenseRepository) Create(e *expenseDatamodel.Expense) error {
	if m.createError != nil {
		return m.createError
	}
	m.rows[e.ID] = e
	return nil
}

func (m *mockExpenseRepository) Update(e *expenseDatamodel.Expense) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.rows[e.ID] = e
	return nil
}

func (m *mockExpenseRepository) Delete(id string) (int64, error) {
	if m.deleteError != nil {
		return 0, m.deleteError
	}
	if _, ok := m.rows[id]; !ok {
		return 0, nil
	}
	delete(m.rows, id)
	return 1, nil
}

func validCreateDTO() expense.CreateExpenseDTO {
	return expense.CreateExpenseDTO{
		Type:        expense.TypeExpense,
		Amount:      decimal.NewFromInt(250),
		Category:    "Food",
		Description: "Groceries",
		Date:        "2024-01-05",
		PaymentMode: "Card",
	}
}

var _ = Describe("ExpenseService", func() {
	var (
		service  *expense.Service
		mockRepo *mockExpenseRepository
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockExpenseRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = expense.NewService(mockRepo, logger)
	})

	Describe("CreateExpense", func() {
		Context("when the payload is valid", func() {
			It("should create the expense with a generated id", func() {
				result, err := service.CreateExpense(validCreateDTO())

				Expect(err).ToNot(HaveOccurred())
				Expect(result).ToNot(BeNil())
				Expect(result.ID).ToNot(BeEmpty())
				Expect(result.Type).To(Equal(expense.TypeExpense))
				Expect(result.Amount.Equal(decimal.NewFromInt(250))).To(BeTrue())
				Expect(result.SplitInfo).To(BeNil())
				Expect(mockRepo.rows).To(HaveLen(1))
			})

			It("should keep the split details when present", func() {
				dto := validCreateDTO()
				dto.SplitInfo = &expense.SplitInfo{
					TotalPeople:     3,
					AmountPerPerson: decimal.NewFromInt(30),
				}

				result, err := service.CreateExpense(dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.SplitInfo).ToNot(BeNil())
				Expect(result.SplitInfo.TotalPeople).To(Equal(3))
			})
		})

		Context("when validation fails", func() {
			It("should reject an unknown entry type", func() {
				dto := validCreateDTO()
				dto.Type = "transfer"

				result, err := service.CreateExpense(dto)

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("type"))
				Expect(result).To(BeNil())
				Expect(mockRepo.rows).To(BeEmpty())
			})

			It("should reject a negative amount", func() {
				dto := validCreateDTO()
				dto.Amount = decimal.NewFromInt(-10)

				result, err := service.CreateExpense(dto)

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("amount"))
				Expect(result).To(BeNil())
			})

			It("should reject a missing description", func() {
				dto := validCreateDTO()
				dto.Description = ""

				result, err := service.CreateExpense(dto)

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("description is required"))
				Expect(result).To(BeNil())
			})

			It("should reject a malformed date", func() {
				dto := validCreateDTO()
				dto.Date = "05/01/2024"

				result, err := service.CreateExpense(dto)

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("date"))
				Expect(result).To(BeNil())
			})

			It("should reject a zero-person split", func() {
				dto := validCreateDTO()
				dto.SplitInfo = &expense.SplitInfo{TotalPeople: 0, AmountPerPerson: decimal.NewFromInt(30)}

				result, err := service.CreateExpense(dto)

				Expect(err).To(HaveOccurred())
				Expect(result).To(BeNil())
			})
		})

		Context("when the repository fails", func() {
			It("should return a storage error", func() {
				mockRepo.createError = errors.New("connection refused")

				result, err := service.CreateExpense(validCreateDTO())

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("connection refused"))
				Expect(result).To(BeNil())
			})
		})
	})

	Describe("UpdateExpense", func() {
		Context("when the expense exists", func() {
			It("should overwrite every field", func() {
				created, err := service.CreateExpense(validCreateDTO())
				Expect(err).ToNot(HaveOccurred())

				dto := validCreateDTO()
				dto.Type = expense.TypeIncome
				dto.Amount = decimal.NewFromInt(900)
				dto.Description = "Refund"

				updated, err := service.UpdateExpense(created.ID, dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(updated.ID).To(Equal(created.ID))
				Expect(updated.Type).To(Equal(expense.TypeIncome))
				Expect(updated.Amount.Equal(decimal.NewFromInt(900))).To(BeTrue())
				Expect(updated.Description).To(Equal("Refund"))
			})

			It("should clear the split when the update omits it", func() {
				dto := validCreateDTO()
				dto.SplitInfo = &expense.SplitInfo{TotalPeople: 2, AmountPerPerson: decimal.NewFromInt(125)}
				created, err := service.CreateExpense(dto)
				Expect(err).ToNot(HaveOccurred())
				Expect(created.SplitInfo).ToNot(BeNil())

				updated, err := service.UpdateExpense(created.ID, validCreateDTO())

				Expect(err).ToNot(HaveOccurred())
				Expect(updated.SplitInfo).To(BeNil())
			})
		})

		Context("when the expense does not exist", func() {
			It("should return not found", func() {
				result, err := service.UpdateExpense("missing-id", validCreateDTO())

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("not found"))
				Expect(result).To(BeNil())
			})
		})
	})

	Describe("DeleteExpense", func() {
		It("should delete once and return not found on the second attempt", func() {
			created, err := service.CreateExpense(validCreateDTO())
			Expect(err).ToNot(HaveOccurred())

			Expect(service.DeleteExpense(created.ID)).To(Succeed())

			err = service.DeleteExpense(created.ID)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("not found"))
		})
	})

	Describe("ListExpenses", func() {
		It("should return entries newest date first", func() {
			first := validCreateDTO()
			first.Date = "2024-01-01"
			second := validCreateDTO()
			second.Date = "2024-02-01"

			_, err := service.CreateExpense(first)
			Expect(err).ToNot(HaveOccurred())
			_, err = service.CreateExpense(second)
			Expect(err).ToNot(HaveOccurred())

			result, err := service.ListExpenses()

			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(2))
			Expect(result[0].Date).To(Equal("2024-02-01"))
			Expect(result[1].Date).To(Equal("2024-01-01"))
		})

		It("should return an empty list when there are no entries", func() {
			result, err := service.ListExpenses()

			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(BeEmpty())
		})
	})
})
