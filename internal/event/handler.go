package event

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/expenso-app/expenso/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateEvent(ctx context.Context, dto CreateEventDTO) (*Event, error)
	ListEvents() ([]*EventSummary, error)
	GetEventByCode(shareCode string) (*EventDetail, error)
	AddExpense(ctx context.Context, shareCode string, dto AddSharedExpenseDTO) (*SharedExpense, error)
	ListExpenses(shareCode string) ([]*SharedExpense, error)
	DeactivateEvent(shareCode string) error
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

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Service.ListEvents()
	if err != nil {
		h.Logger.Error("ListEvents: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summaries)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var dto CreateEventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateEvent: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ev, err := h.Service.CreateEvent(r.Context(), dto)
	if err != nil {
		h.Logger.Error("CreateEvent: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ev)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	shareCode := chi.URLParam(r, "shareCode")

	detail, err := h.Service.GetEventByCode(shareCode)
	if err != nil {
		h.Logger.Warn("GetEvent: service error", "error", err, "share_code", shareCode)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	shareCode := chi.URLParam(r, "shareCode")

	var dto AddSharedExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddExpense: invalid request body", "error", err, "share_code", shareCode)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exp, err := h.Service.AddExpense(r.Context(), shareCode, dto)
	if err != nil {
		h.Logger.Error("AddExpense: service error", "error", err, "share_code", shareCode)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, exp)
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	shareCode := chi.URLParam(r, "shareCode")

	expenses, err := h.Service.ListExpenses(shareCode)
	if err != nil {
		h.Logger.Warn("ListExpenses: service error", "error", err, "share_code", shareCode)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, expenses)
}

func (h *Handler) DeactivateEvent(w http.ResponseWriter, r *http.Request) {
	shareCode := chi.URLParam(r, "shareCode")

	if err := h.Service.DeactivateEvent(shareCode); err != nil {
		h.Logger.Warn("DeactivateEvent: service error", "error", err, "share_code", shareCode)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}
