package interfaces

import (
	"net/http"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
)

type CategoryHandler struct {
	respondJSON func(w http.ResponseWriter, status int, payload interface{})
}

func NewCategoryHandler(
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
) *CategoryHandler {
	return &CategoryHandler{respondJSON: respondJSON}
}

// HandleGetCategories serves the fixed category table the client renders its
// select options from.
func (h *CategoryHandler) HandleGetCategories(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": domain.Categories,
	})
}
