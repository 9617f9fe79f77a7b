package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

type BudgetServiceInterface interface {
	CreateBudget(budget *domain.Budget) error
	GetUserBudgets(userID string) ([]domain.Budget, error)
	UpdateBudget(budget domain.Budget) error
	DeleteBudget(budgetID int, userID string) error
}

type BudgetHandler struct {
	service      BudgetServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewBudgetHandler(
	service BudgetServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *BudgetHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &BudgetHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type budgetRequest struct {
	BudgetID    *int     `json:"budget_id"`
	Amount      *float64 `json:"amount"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Description string   `json:"description"`
	CategoryID  *int     `json:"category_id"`
}

func (req *budgetRequest) toBudget(userID string) (domain.Budget, error) {
	if req.Amount == nil || req.CategoryID == nil || req.StartDate == "" || req.EndDate == "" || req.Description == "" {
		return domain.Budget{}, financeErrors.NewValidationError("Invalid input data")
	}
	startDate, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return domain.Budget{}, financeErrors.NewValidationError("Invalid input data")
	}
	endDate, err := domain.ParseDate(req.EndDate)
	if err != nil {
		return domain.Budget{}, financeErrors.NewValidationError("Invalid input data")
	}
	return domain.Budget{
		UserID:      userID,
		CategoryID:  *req.CategoryID,
		Amount:      *req.Amount,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: req.Description,
	}, nil
}

func (h *BudgetHandler) HandleAddIncome(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid input data")
		return
	}

	budget, err := req.toBudget(userID)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid input data")
		return
	}

	if err := h.service.CreateBudget(&budget); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Error adding income: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error adding income")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Income added successfully",
		"budget":  budget,
	})
}

func (h *BudgetHandler) HandleViewIncomes(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	budgets, err := h.service.GetUserBudgets(userID)
	if err != nil {
		log.Printf("Error fetching incomes: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error fetching incomes")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"budgets": budgets,
	})
}

func (h *BudgetHandler) HandleEditIncome(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid input data")
		return
	}
	if req.BudgetID == nil {
		h.respondError(w, http.StatusBadRequest, "Invalid input data")
		return
	}

	budget, err := req.toBudget(userID)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid input data")
		return
	}
	budget.ID = *req.BudgetID

	if err := h.service.UpdateBudget(budget); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, financeErrors.ErrBudgetNotFound) {
			h.respondError(w, http.StatusNotFound, "Income not found")
			return
		}
		log.Printf("Error updating income: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error updating income")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Income updated successfully",
	})
}

func (h *BudgetHandler) HandleDeleteIncome(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req struct {
		ID *int `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == nil {
		h.respondError(w, http.StatusBadRequest, "Invalid input data")
		return
	}

	if err := h.service.DeleteBudget(*req.ID, userID); err != nil {
		if errors.Is(err, financeErrors.ErrBudgetNotFound) {
			h.respondError(w, http.StatusNotFound, "Income not found")
			return
		}
		log.Printf("Error deleting income: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error deleting income")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Income deleted successfully",
	})
}
