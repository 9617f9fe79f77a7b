package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// SessionAuthMiddleware gates every expense and income operation: it resolves
// the session cookie to a user id and stores it in the request context. Any
// failure short-circuits with 401 before a handler runs, so unauthenticated
// requests can never touch the store.
func (s *service) SessionAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := s.CurrentUser(r)
			if err != nil {
				if errors.Is(err, ErrInternalError) {
					writeJSONError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				writeJSONError(w, http.StatusUnauthorized, "User not authenticated")
				return
			}

			ctx := context.WithValue(r.Context(), "userID", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeJSONError writes an error response in JSON format
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"message": message,
	})
}
