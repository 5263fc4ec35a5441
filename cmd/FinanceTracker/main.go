package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/cors"

	database "github.com/sebuszqo/FinanceTracker/db"
	"github.com/sebuszqo/FinanceTracker/internal/auth"
	"github.com/sebuszqo/FinanceTracker/internal/config"
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/infrastructure"
	"github.com/sebuszqo/FinanceTracker/internal/finance/interfaces"
	"github.com/sebuszqo/FinanceTracker/internal/user"
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

func respondError(w http.ResponseWriter, status int, message string, errors ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errors) > 0 && len(errors[0]) > 0 {
		payload["errors"] = errors[0]
	}
	respondJSON(w, status, payload)
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "Path not found")
}

type Server struct {
	router             *http.ServeMux
	dbService          *database.DBService
	authHandler        *auth.Handler
	authService        auth.Service
	transactionHandler *interfaces.TransactionHandler
	categoryHandler    *interfaces.CategoryHandler
	settingsHandler    *interfaces.SettingsHandler
	analyticsHandler   *interfaces.AnalyticsHandler
}

func NewServer(
	dbService *database.DBService,
	authHandler *auth.Handler,
	authService auth.Service,
	transactionHandler *interfaces.TransactionHandler,
	categoryHandler *interfaces.CategoryHandler,
	settingsHandler *interfaces.SettingsHandler,
	analyticsHandler *interfaces.AnalyticsHandler,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		dbService:          dbService,
		authHandler:        authHandler,
		authService:        authService,
		transactionHandler: transactionHandler,
		categoryHandler:    categoryHandler,
		settingsHandler:    settingsHandler,
		analyticsHandler:   analyticsHandler,
	}
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.dbService.Health())
}

func (s *Server) RegisterRoutes() {
	withAuth := s.authService.JWTAccessTokenMiddleware()

	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/auth/register", http.HandlerFunc(s.authHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))
	publicRoutes.Handle("GET /api/health", http.HandlerFunc(s.handleHealth))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()
	protectedRoutes.Handle("GET /api/auth/me", withAuth(http.HandlerFunc(s.authHandler.HandleMe)))

	protectedRoutes.Handle("POST /api/transactions", withAuth(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	protectedRoutes.Handle("GET /api/transactions", withAuth(http.HandlerFunc(s.transactionHandler.GetUserTransactions)))
	protectedRoutes.Handle("POST /api/transactions/sync", withAuth(http.HandlerFunc(s.transactionHandler.SyncTransactions)))
	protectedRoutes.Handle("PATCH /api/transactions/{id}", withAuth(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	protectedRoutes.Handle("DELETE /api/transactions/{id}", withAuth(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	protectedRoutes.Handle("POST /api/categories", withAuth(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	protectedRoutes.Handle("GET /api/categories", withAuth(http.HandlerFunc(s.categoryHandler.GetUserCategories)))
	protectedRoutes.Handle("POST /api/categories/seed", withAuth(http.HandlerFunc(s.categoryHandler.SeedDefaultCategories)))
	protectedRoutes.Handle("PATCH /api/categories/{id}", withAuth(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	protectedRoutes.Handle("DELETE /api/categories/{id}", withAuth(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	protectedRoutes.Handle("GET /api/settings/me", withAuth(http.HandlerFunc(s.settingsHandler.GetMySettings)))
	protectedRoutes.Handle("PATCH /api/settings/me", withAuth(http.HandlerFunc(s.settingsHandler.UpdateMySettings)))

	protectedRoutes.Handle("GET /api/analytics/trend", withAuth(http.HandlerFunc(s.analyticsHandler.GetMonthlyTrend)))
	protectedRoutes.Handle("GET /api/analytics/categories", withAuth(http.HandlerFunc(s.analyticsHandler.GetCategoryBreakdown)))
	protectedRoutes.Handle("GET /api/analytics/summary", withAuth(http.HandlerFunc(s.analyticsHandler.GetSummary)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("POST /api/auth/register", publicRoutes)
	mainRouter.Handle("POST /api/auth/login", publicRoutes)
	mainRouter.Handle("GET /api/ready", publicRoutes)
	mainRouter.Handle("GET /api/health", publicRoutes)
	mainRouter.Handle("/api/", protectedRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService(cfg.Database)
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.RunMigrations(); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)

	jwtManager := auth.NewJWTManager(cfg.JWT)
	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewHandler(authService)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	settingsRepo := infrastructure.NewSettingsRepository(dbService.DB)
	settingsService := application.NewSettingsService(settingsRepo)
	settingsHandler := interfaces.NewSettingsHandler(settingsService, respondJSON, respondError)

	analyticsService := application.NewAnalyticsService(transactionService)
	analyticsHandler := interfaces.NewAnalyticsHandler(analyticsService, respondJSON, respondError)

	server := NewServer(dbService, authHandler, authService, transactionHandler, categoryHandler, settingsHandler, analyticsHandler)
	server.RegisterRoutes()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      corsHandler.Handler(loggingMiddleware(server.router)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("Server starting on port %s...", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
