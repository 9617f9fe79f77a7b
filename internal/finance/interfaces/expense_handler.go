package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/application"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

type ExpenseServiceInterface interface {
	CreateExpense(expense *domain.Expense) error
	GetUserExpenses(userID string) ([]domain.Expense, error)
	UpdateExpense(expense domain.Expense) error
	DeleteExpense(expenseID int, userID string) error
	GetUserBalance(userID string) (application.BalanceSummary, error)
}

type ExpenseHandler struct {
	service      ExpenseServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewExpenseHandler(
	service ExpenseServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *ExpenseHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &ExpenseHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type expenseRequest struct {
	ExpenseID   *int     `json:"expense_id"`
	Amount      *float64 `json:"amount"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	CategoryID  *int     `json:"category_id"`
}

// toExpense validates presence and formats; zero amounts are accepted as long
// as the field is present in the request body.
func (req *expenseRequest) toExpense(userID string) (domain.Expense, error) {
	if req.Amount == nil || req.CategoryID == nil || req.Date == "" || req.Description == "" {
		return domain.Expense{}, financeErrors.NewValidationError("Invalid input data")
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return domain.Expense{}, financeErrors.NewValidationError("Invalid input data")
	}
	return domain.Expense{
		UserID:      userID,
		CategoryID:  *req.CategoryID,
		Amount:      *req.Amount,
		Date:        date,
		Description: req.Description,
	}, nil
}

func (h *ExpenseHandler) HandleAddExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid input data")
		return
	}

	expense, err := req.toExpense(userID)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid input data")
		return
	}

	if err := h.service.CreateExpense(&expense); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Error adding expense: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error adding expense")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Expense added successfully",
		"expense": expense,
	})
}

func (h *ExpenseHandler) HandleViewExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	expenses, err := h.service.GetUserExpenses(userID)
	if err != nil {
		log.Printf("Error fetching expenses: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error fetching expenses")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"expenses": expenses,
	})
}

func (h *ExpenseHandler) HandleEditExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid input data")
		return
	}
	if req.ExpenseID == nil {
		h.respondError(w, http.StatusBadRequest, "Invalid input data")
		return
	}

	expense, err := req.toExpense(userID)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid input data")
		return
	}
	expense.ID = *req.ExpenseID

	if err := h.service.UpdateExpense(expense); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, financeErrors.ErrExpenseNotFound) {
			h.respondError(w, http.StatusNotFound, "Expense not found")
			return
		}
		log.Printf("Error updating expense: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error updating expense")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Expense updated successfully",
	})
}

func (h *ExpenseHandler) HandleDeleteExpense(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.DeleteExpense(*req.ID, userID); err != nil {
		if errors.Is(err, financeErrors.ErrExpenseNotFound) {
			h.respondError(w, http.StatusNotFound, "Expense not found")
			return
		}
		log.Printf("Error deleting expense: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error deleting expense")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Expense deleted successfully",
	})
}

func (h *ExpenseHandler) HandleExpenseSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	summary, err := h.service.GetUserBalance(userID)
	if err != nil {
		log.Printf("Error computing balance summary: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error fetching expenses")
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}
