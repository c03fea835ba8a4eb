package expense

import (
	"encoding/json"
	"net/http"

	"github.com/expenso-app/expenso/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListExpenses() ([]*Expense, error)
	CreateExpense(dto CreateExpenseDTO) (*Expense, error)
	UpdateExpense(id string, dto CreateExpenseDTO) (*Expense, error)
	DeleteExpense(id string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Service.ListExpenses()
	if err != nil {
		h.Logger.Error("ListExpenses: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, expenses)
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var dto CreateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exp, err := h.Service.CreateExpense(dto)
	if err != nil {
		h.Logger.Error("CreateExpense: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, exp)
}

func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto CreateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateExpense: invalid request body", "error", err, "expense_id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exp, err := h.Service.UpdateExpense(id, dto)
	if err != nil {
		h.Logger.Error("UpdateExpense: service error", "error", err, "expense_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, exp)
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.DeleteExpense(id); err != nil {
		h.Logger.Error("DeleteExpense: service error", "error", err, "expense_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DeleteExpenseResponse{Message: "Expense deleted successfully"})
}
