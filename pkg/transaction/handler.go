package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/billfold/billfold/internal/rest"
	"github.com/billfold/billfold/pkg/budget"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

type TransactionDTO struct {
	ID       string  `json:"id,omitempty"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Category string  `json:"category" validate:"required"`
	Label    string  `json:"label,omitempty"`
	TxDate   string  `json:"tx_date" validate:"required,datetime=2006-01-02"`
}

type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(service Service) *Handler {
	return &Handler{service, validator.New()}
}

// Create handles POST /api/transactions.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Recording new transaction")

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:   "Invalid transaction",
			Details: err.Error(),
		})
		return
	}

	date, err := time.Parse(DateLayout, dto.TxDate)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:   "Invalid transaction date",
			Details: "tx_date must be in YYYY-MM-DD format",
		})
		return
	}

	_, err = h.service.Add(r.Context(), Transaction{
		Amount:   dto.Amount,
		Category: dto.Category,
		Label:    dto.Label,
		Date:     date,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
				Error: err.Error(),
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]bool{"ok": true}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// List handles GET /api/transactions with an optional month query parameter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var txs []Transaction
	var err error
	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		month, parseErr := budget.ParseMonth(monthParam)
		if parseErr != nil {
			rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
				Error:   "Invalid month format",
				Details: "Month must be in YYYY-MM format",
			})
			return
		}
		txs, err = h.service.ListForMonth(r.Context(), month)
	} else {
		txs, err = h.service.ListAll(r.Context())
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]TransactionDTO, 0, len(txs))
	for _, tx := range txs {
		dtos = append(dtos, transactionToDTO(tx))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func transactionToDTO(tx Transaction) TransactionDTO {
	return TransactionDTO{
		ID:       tx.ID,
		Amount:   tx.Amount,
		Category: tx.Category,
		Label:    tx.Label,
		TxDate:   tx.Date.Format(DateLayout),
	}
}
