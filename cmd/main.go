package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yuvaraajk/money-transfer-app/internal/config"
	"github.com/yuvaraajk/money-transfer-app/internal/handler"
	"github.com/yuvaraajk/money-transfer-app/internal/service"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	// Wiring: the account registry owns the transfer protocol, the
	// transaction orchestrator tracks every submitted transfer, customers
	// open their backing account through the account registry.
	accountService := service.NewAccountService(cfg.ActorTimeout, log)
	defer accountService.Shutdown()

	transactionService := service.NewTransactionService(accountService, cfg.ActorTimeout, log)
	defer transactionService.Shutdown()

	customerService := service.NewCustomerService(accountService, cfg.ActorTimeout, log)
	defer customerService.Shutdown()

	accountHandler := handler.NewAccountHandler(accountService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	customerHandler := handler.NewCustomerHandler(customerService)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /accounts", accountHandler.CreateAccount)
	mux.HandleFunc("GET /accounts/{id}", accountHandler.GetAccount)
	mux.HandleFunc("DELETE /accounts/{id}", accountHandler.DeleteAccount)
	mux.HandleFunc("POST /transactions", transactionHandler.SubmitTransaction)
	mux.HandleFunc("POST /transactions/deposit", transactionHandler.SubmitCashDeposit)
	mux.HandleFunc("GET /transactions/{id}", transactionHandler.GetTransaction)
	mux.HandleFunc("DELETE /transactions/{id}", transactionHandler.DeleteTransaction)
	mux.HandleFunc("POST /customers", customerHandler.CreateCustomer)
	mux.HandleFunc("GET /customers/{id}", customerHandler.GetCustomer)
	mux.HandleFunc("DELETE /customers/{id}", customerHandler.DeleteCustomer)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.WithRequestID(log, mux),
	}

	go func() {
		log.Infof("Server started on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Info("Server exiting")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	return zcfg.Build()
}
