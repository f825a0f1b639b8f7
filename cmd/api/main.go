package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ecommerce-backoffice/internal/config"
	"ecommerce-backoffice/internal/db"
	"ecommerce-backoffice/internal/httpserver"
	addressrepo "ecommerce-backoffice/internal/repository/address"
	companyrepo "ecommerce-backoffice/internal/repository/company"
	countryrepo "ecommerce-backoffice/internal/repository/country"
	customerrepo "ecommerce-backoffice/internal/repository/customer"
	addresssvc "ecommerce-backoffice/internal/service/address"
	checkoutsvc "ecommerce-backoffice/internal/service/checkout"
	companysvc "ecommerce-backoffice/internal/service/company"
	customersvc "ecommerce-backoffice/internal/service/customer"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString, db.PoolSettings{
		MaxConns:     cfg.DBMaxConns,
		ConnIdleTime: cfg.DBConnIdleTime,
		ConnLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	addressRepo := addressrepo.NewPostgres(dbpool, logger)
	companyRepo := companyrepo.NewPostgres(dbpool, logger)
	countryRepo := countryrepo.NewPostgres(dbpool)

	customerService := customersvc.New(customerRepo)
	addressService := addresssvc.New(addressRepo, customerRepo, countryRepo)
	companyService := companysvc.New(companyRepo, customerRepo)
	checkoutService := checkoutsvc.New(customerRepo, cfg.StripeSecretKey)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CustomerSvc: customerService,
		AddressSvc:  addressService,
		CompanySvc:  companyService,
		CheckoutSvc: checkoutService,
		Countries:   countryRepo,
	}, httpserver.Options{
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}
	if cfg.JWTSecret == "" {
		logger.Printf("JWT_SECRET not set, API authentication is disabled")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
