package budget

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/billfold/billfold/internal/rest"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type BudgetMonthDTO struct {
	Month           string              `json:"month" validate:"required,datetime=2006-01"`
	Income          float64             `json:"income" validate:"gte=0"`
	Notes           string              `json:"notes,omitempty"`
	PlannedExpenses []PlannedExpenseDTO `json:"planned_expenses" validate:"dive"`
}

type PlannedExpenseDTO struct {
	Name      string  `json:"name" validate:"required"`
	Category  string  `json:"category" validate:"required"`
	Amount    float64 `json:"amount" validate:"gte=0"`
	DueDay    int     `json:"due_day,omitempty" validate:"omitempty,min=1,max=31"`
	Recurring bool    `json:"recurring"`
}

type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(service Service) *Handler {
	return &Handler{service, validator.New()}
}

// UpsertPlan handles POST /api/budget/{month}.
func (h *Handler) UpsertPlan(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Upserting budget plan")

	month := mux.Vars(r)["month"]
	if _, err := ParseMonth(month); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:   "Invalid month format",
			Details: "Month must be in YYYY-MM format",
		})
		return
	}

	var dto BudgetMonthDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:   "Invalid budget plan",
			Details: err.Error(),
		})
		return
	}

	stored, err := h.service.Upsert(r.Context(), month, DTOToPlan(dto))
	if err != nil {
		if errors.Is(err, ErrMonthMismatch) {
			rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
				Error: "Path month and payload month must match",
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := struct {
		Ok     bool           `json:"ok"`
		Budget BudgetMonthDTO `json:"budget"`
	}{true, PlanToDTO(stored)}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func PlanToDTO(plan BudgetMonth) BudgetMonthDTO {
	expenses := make([]PlannedExpenseDTO, 0, len(plan.PlannedExpenses))
	for _, e := range plan.PlannedExpenses {
		expenses = append(expenses, PlannedExpenseDTO{
			Name:      e.Name,
			Category:  e.Category,
			Amount:    e.Amount,
			DueDay:    e.DueDay,
			Recurring: e.Recurring,
		})
	}
	return BudgetMonthDTO{
		Month:           plan.Month,
		Income:          plan.Income,
		Notes:           plan.Notes,
		PlannedExpenses: expenses,
	}
}

func DTOToPlan(dto BudgetMonthDTO) BudgetMonth {
	expenses := make([]PlannedExpense, 0, len(dto.PlannedExpenses))
	for _, e := range dto.PlannedExpenses {
		expenses = append(expenses, PlannedExpense{
			Name:      e.Name,
			Category:  e.Category,
			Amount:    e.Amount,
			DueDay:    e.DueDay,
			Recurring: e.Recurring,
		})
	}
	return BudgetMonth{
		Month:           dto.Month,
		Income:          dto.Income,
		Notes:           dto.Notes,
		PlannedExpenses: expenses,
	}
}
