package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/iho/chching/internal/adapter/http/dto"
	"github.com/iho/chching/internal/domain"
	"github.com/iho/chching/internal/usecase"
)

// Executor runs a command against the ledger session.
type Executor interface {
	Execute(ctx context.Context, cmd usecase.Command, ui usecase.Renderer) error
}

// LedgerHandler exposes ledger commands over HTTP.
type LedgerHandler struct {
	ledger Executor
	logger zerolog.Logger
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger Executor, logger zerolog.Logger) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, logger: logger}
}

// Get handles GET /ledger.
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, http.StatusOK, usecase.SummaryCommand{})
}

// Balance handles GET /balance.
func (h *LedgerHandler) Balance(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, http.StatusOK, usecase.BalanceCommand{})
}

// AddIncome handles POST /incomes.
func (h *LedgerHandler) AddIncome(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEntry(w, r)
	if !ok {
		return
	}
	h.run(w, r, http.StatusCreated, usecase.AddIncomeCommand{Fields: req.Fields()})
}

// AddExpense handles POST /expenses.
func (h *LedgerHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEntry(w, r)
	if !ok {
		return
	}
	h.run(w, r, http.StatusCreated, usecase.AddExpenseCommand{Fields: req.Fields()})
}

// DeleteIncome handles DELETE /incomes/{index}.
func (h *LedgerHandler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	index, err := domain.GetIncomeIndex(indexFields(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.run(w, r, http.StatusOK, usecase.DeleteIncomeCommand{Index: index})
}

// DeleteExpense handles DELETE /expenses/{index}.
func (h *LedgerHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	index, err := domain.GetExpenseIndex(indexFields(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.run(w, r, http.StatusOK, usecase.DeleteExpenseCommand{Index: index})
}

func (h *LedgerHandler) run(w http.ResponseWriter, r *http.Request, status int, cmd usecase.Command) {
	collector := dto.NewCollector()

	if err := h.ledger.Execute(r.Context(), cmd, collector); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, status, collector.Response)
}

func (h *LedgerHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := mapDomainError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("ledger request failed")
		writeError(w, status, "internal server error", "")
		return
	}

	writeError(w, status, err.Error(), "")
}

// maxEntryBody caps the size of an entry request body.
const maxEntryBody = 4 << 10

func decodeEntry(w http.ResponseWriter, r *http.Request) (dto.EntryRequest, bool) {
	var req dto.EntryRequest
	body := http.MaxBytesReader(w, r.Body, maxEntryBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large", "")
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return nil, false
	}
	return req, true
}

func indexFields(r *http.Request) domain.Fields {
	return domain.Fields{domain.FieldIndex: chi.URLParam(r, "index")}
}
