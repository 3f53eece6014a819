package insights

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/billfold/billfold/internal/rest"
	"github.com/billfold/billfold/pkg/budget"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// GetBudget handles GET /api/budget/{month}, returning the stored plan
// together with its derived metrics.
func (h *Handler) GetBudget(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	month, ok := monthVar(w, r)
	if !ok {
		return
	}

	view, err := h.service.BudgetView(r.Context(), month)
	if err != nil {
		if errors.Is(err, budget.ErrPlanNotFound) {
			rest.WriteError(w, http.StatusNotFound, rest.ErrorResponse{
				Error: "No plan for this month",
			})
			return
		}
		log.Errorf("failed to build budget view for %s: %v", month, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := struct {
		Plan    budget.BudgetMonthDTO `json:"plan"`
		Metrics Metrics               `json:"metrics"`
	}{budget.PlanToDTO(view.Plan), view.Metrics}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetSummary handles GET /api/summary/{month}. A month without a plan yields
// a zero-valued summary, not an error.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	month, ok := monthVar(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summary(r.Context(), month)
	if err != nil {
		log.Errorf("failed to build summary for %s: %v", month, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetAlerts handles GET /api/alerts/{month}. A month without a plan yields an
// empty list.
func (h *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	month, ok := monthVar(w, r)
	if !ok {
		return
	}

	alerts, err := h.service.Alerts(r.Context(), month)
	if err != nil {
		log.Errorf("failed to compute alerts for %s: %v", month, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(alerts); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func monthVar(w http.ResponseWriter, r *http.Request) (string, bool) {
	month := mux.Vars(r)["month"]
	if _, err := budget.ParseMonth(month); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:   "Invalid month format",
			Details: "Month must be in YYYY-MM format",
		})
		return "", false
	}
	return month, true
}
