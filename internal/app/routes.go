package app

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Budget plan
	r.HandleFunc("/api/budget/{month}", deps.BudgetHandler.UpsertPlan).Methods("POST")
	r.HandleFunc("/api/budget/{month}", deps.InsightsHandler.GetBudget).Methods("GET")

	// Transactions
	r.HandleFunc("/api/transactions", deps.TransactionHandler.Create).Methods("POST")
	r.HandleFunc("/api/transactions", deps.TransactionHandler.List).Methods("GET")

	// Derived views
	r.HandleFunc("/api/summary/{month}", deps.InsightsHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/alerts/{month}", deps.InsightsHandler.GetAlerts).Methods("GET")

	// Health root
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Billfold Backend Running"})
	}).Methods("GET")
}
