package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/merchops/merch-service/internal/config"
	"github.com/merchops/merch-service/internal/handler"
	"github.com/merchops/merch-service/internal/integrations/rates"
	"github.com/merchops/merch-service/internal/middleware"
	"github.com/merchops/merch-service/internal/repository"
	"github.com/merchops/merch-service/internal/scheduler"
	"github.com/merchops/merch-service/internal/service"
	"github.com/merchops/merch-service/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository()
	parser := rates.NewParser(cfg, logger)
	svc := service.NewService(repo, parser, logger, cfg)
	h := handler.NewHandler(svc)
	sender := email.NewSender(cfg, logger)

	// Start scheduled jobs
	sched := scheduler.New(svc, sender, logger, cfg)
	if err := sched.Start(); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/receivables", h.CreateReceivable).Methods("POST")
	authRouter.HandleFunc("/receivables", h.ListReceivables).Methods("GET")
	authRouter.HandleFunc("/receivables/{id}", h.DeleteReceivable).Methods("DELETE")
	authRouter.HandleFunc("/payables", h.CreatePayable).Methods("POST")
	authRouter.HandleFunc("/payables", h.ListPayables).Methods("GET")
	authRouter.HandleFunc("/payables/{id}", h.DeletePayable).Methods("DELETE")
	authRouter.HandleFunc("/ledger-entries", h.CreateLedgerEntry).Methods("POST")
	authRouter.HandleFunc("/ledger-entries", h.ListLedgerEntries).Methods("GET")
	authRouter.HandleFunc("/ledger-entries/{id}", h.DeleteLedgerEntry).Methods("DELETE")
	authRouter.HandleFunc("/overheads", h.CreateOverhead).Methods("POST")
	authRouter.HandleFunc("/overheads", h.ListOverheads).Methods("GET")
	authRouter.HandleFunc("/overheads/{id}", h.DeleteOverhead).Methods("DELETE")
	authRouter.HandleFunc("/rates", h.LoadRates).Methods("PUT")
	authRouter.HandleFunc("/rates", h.GetRates).Methods("GET")
	authRouter.HandleFunc("/cashflow/timeline", h.Timeline).Methods("GET")
	authRouter.HandleFunc("/cashflow/snapshot", h.Snapshot).Methods("GET")
	authRouter.HandleFunc("/cashflow/forecast", h.Forecast).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
