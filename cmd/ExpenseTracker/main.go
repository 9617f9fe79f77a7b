package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	database "github.com/sebuszqo/ExpenseTracker/db"
	"github.com/sebuszqo/ExpenseTracker/internal/auth"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/application"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/infrastructure"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/interfaces"
	"github.com/sebuszqo/ExpenseTracker/internal/user"
)

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"message": message,
	})
}

type Server struct {
	router          *http.ServeMux
	dbService       *database.DBService
	authService     auth.Service
	authHandler     *auth.Handler
	userHandler     *user.Handler
	expenseHandler  *interfaces.ExpenseHandler
	budgetHandler   *interfaces.BudgetHandler
	categoryHandler *interfaces.CategoryHandler
}

func NewServer(
	dbService *database.DBService,
	authService auth.Service,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	expenseHandler *interfaces.ExpenseHandler,
	budgetHandler *interfaces.BudgetHandler,
	categoryHandler *interfaces.CategoryHandler,
) *Server {
	return &Server{
		router:          http.NewServeMux(),
		dbService:       dbService,
		authService:     authService,
		authHandler:     authHandler,
		userHandler:     userHandler,
		expenseHandler:  expenseHandler,
		budgetHandler:   budgetHandler,
		categoryHandler: categoryHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("Page not found"))
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("SESSION_SECRET") == "" {
		return errors.New("no SESSION_SECRET provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, health)
}

func (s *Server) RegisterRoutes() {
	requireSession := s.authService.SessionAuthMiddleware()

	mainRouter := http.NewServeMux()

	// Public routes
	mainRouter.Handle("POST /auth/register", http.HandlerFunc(s.userHandler.HandleRegister))
	mainRouter.Handle("POST /auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	mainRouter.Handle("POST /auth/logout", http.HandlerFunc(s.authHandler.HandleLogout))
	mainRouter.Handle("GET /auth/status", http.HandlerFunc(s.authHandler.HandleStatus))
	mainRouter.Handle("GET /ready", http.HandlerFunc(s.handleReady))

	// Expense routes (session required)
	mainRouter.Handle("POST /expenses/add", requireSession(http.HandlerFunc(s.expenseHandler.HandleAddExpense)))
	mainRouter.Handle("GET /expenses/view", requireSession(http.HandlerFunc(s.expenseHandler.HandleViewExpenses)))
	mainRouter.Handle("PUT /expenses/edit", requireSession(http.HandlerFunc(s.expenseHandler.HandleEditExpense)))
	mainRouter.Handle("DELETE /expenses/delete", requireSession(http.HandlerFunc(s.expenseHandler.HandleDeleteExpense)))
	mainRouter.Handle("GET /expenses/summary", requireSession(http.HandlerFunc(s.expenseHandler.HandleExpenseSummary)))

	// Income routes (session required)
	mainRouter.Handle("POST /incomes/add", requireSession(http.HandlerFunc(s.budgetHandler.HandleAddIncome)))
	mainRouter.Handle("GET /incomes/view", requireSession(http.HandlerFunc(s.budgetHandler.HandleViewIncomes)))
	mainRouter.Handle("PUT /incomes/edit", requireSession(http.HandlerFunc(s.budgetHandler.HandleEditIncome)))
	mainRouter.Handle("DELETE /incomes/delete", requireSession(http.HandlerFunc(s.budgetHandler.HandleDeleteIncome)))

	mainRouter.Handle("GET /categories", requireSession(http.HandlerFunc(s.categoryHandler.HandleGetCategories)))

	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func startSessionCleanupScheduler(sessionManager *auth.SessionManager) error {
	c := cron.New()
	_, err := c.AddFunc("@every 1h", func() {
		removed := sessionManager.CleanupExpired()
		if removed > 0 {
			log.Printf("Removed %d expired sessions", removed)
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	sessionManager := auth.NewSessionManager()
	cookieCodec := auth.NewSessionCookieCodec()
	authService := auth.NewAuthService(userService, sessionManager, cookieCodec)
	secureCookie := os.Getenv("SECURE_COOKIE") == "true"
	authHandler := auth.NewHandler(authService, secureCookie)

	expenseRepo := infrastructure.NewExpenseRepository(dbService.DB)
	expenseService := application.NewExpenseService(expenseRepo)
	expenseHandler := interfaces.NewExpenseHandler(expenseService, respondJSON, respondError)

	budgetRepo := infrastructure.NewBudgetRepository(dbService.DB)
	budgetService := application.NewBudgetService(budgetRepo)
	budgetHandler := interfaces.NewBudgetHandler(budgetService, respondJSON, respondError)

	categoryHandler := interfaces.NewCategoryHandler(respondJSON)

	server := NewServer(dbService, authService, authHandler, userHandler, expenseHandler, budgetHandler, categoryHandler)
	server.RegisterRoutes()

	if err := startSessionCleanupScheduler(sessionManager); err != nil {
		log.Fatalf("Scheduler didn't start, stopping the app: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, loggingMiddleware(server.router)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
