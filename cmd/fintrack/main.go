package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	database "github.com/fintrackio/fintrack/db"
	"github.com/fintrackio/fintrack/internal/auth"
	"github.com/fintrackio/fintrack/internal/finance/application"
	"github.com/fintrackio/fintrack/internal/finance/infrastructure"
	"github.com/fintrackio/fintrack/internal/finance/interfaces"
	"github.com/fintrackio/fintrack/internal/user"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errs ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errs) > 0 && len(errs[0]) > 0 {
		payload["errors"] = errs[0]
	}
	respondJSON(w, status, payload)
}

func loggingMiddleware(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start).String(),
			}).Info("request completed")
		})
	}
}

type Server struct {
	router         *http.ServeMux
	userHandler    *user.Handler
	authHandler    *auth.Handler
	authService    auth.Service
	expenseHandler *interfaces.ExpenseHandler
	incomeHandler  *interfaces.IncomeHandler
	dbService      *database.DBService
}

func NewServer(
	userHandler *user.Handler,
	authHandler *auth.Handler,
	authService auth.Service,
	expenseHandler *interfaces.ExpenseHandler,
	incomeHandler *interfaces.IncomeHandler,
	dbService *database.DBService,
) *Server {
	return &Server{
		router:         http.NewServeMux(),
		userHandler:    userHandler,
		authHandler:    authHandler,
		authService:    authService,
		expenseHandler: expenseHandler,
		incomeHandler:  incomeHandler,
		dbService:      dbService,
	}
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
	// Public routes
	s.router.Handle("POST /api/users", http.HandlerFunc(s.userHandler.HandleRegister))
	s.router.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	s.router.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes (using JWT Access Token Middleware)
	authMiddleware := s.authService.JWTAccessTokenMiddleware()
	protected := func(h http.HandlerFunc) http.Handler {
		return authMiddleware(h)
	}

	s.router.Handle("POST /api/auth/2fa/register", protected(s.authHandler.HandleRegisterTwoFactor))
	s.router.Handle("POST /api/auth/2fa/confirm", protected(s.authHandler.HandleConfirmTwoFactor))

	s.router.Handle("POST /api/expense", protected(s.expenseHandler.CreateExpense))
	s.router.Handle("GET /api/expense", protected(s.expenseHandler.ListExpenses))
	s.router.Handle("PUT /api/expense/{id}", protected(s.expenseHandler.UpdateExpense))
	s.router.Handle("DELETE /api/expense/{id}", protected(s.expenseHandler.DeleteExpense))

	s.router.Handle("POST /api/income", protected(s.incomeHandler.CreateIncome))
	s.router.Handle("GET /api/income", protected(s.incomeHandler.ListIncomes))
	s.router.Handle("PUT /api/income/{id}", protected(s.incomeHandler.UpdateIncome))
	s.router.Handle("DELETE /api/income/{id}", protected(s.incomeHandler.DeleteIncome))
}

func checkConfiguration() error {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, continuing with system environment variables")
	}
	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET provided")
	}
	return nil
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if err := checkConfiguration(); err != nil {
		logger.Fatalf("Configuration error: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbService.Close()

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	jwtManager := auth.NewJWTManager()
	authRepo := auth.NewUserRepository(dbService.DB)
	authService := auth.NewAuthService(authRepo, userService, jwtManager)
	authHandler := auth.NewHandler(authService)

	expenseRepo := infrastructure.NewExpenseRepository(dbService.DB)
	expenseService := application.NewExpenseService(expenseRepo)
	expenseHandler := interfaces.NewExpenseHandler(expenseService, respondJSON, respondError)

	incomeRepo := infrastructure.NewIncomeRepository(dbService.DB)
	incomeService := application.NewIncomeService(incomeRepo)
	incomeHandler := interfaces.NewIncomeHandler(incomeService, respondJSON, respondError)

	server := NewServer(userHandler, authHandler, authService, expenseHandler, incomeHandler, dbService)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      loggingMiddleware(logger)(server.router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Infof("Starting server on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Server failed: %v", err)
	}
}
