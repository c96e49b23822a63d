package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"techhub-store/internal/cartstore"
	"techhub-store/internal/catalog"
	"techhub-store/internal/checkout"
	"techhub-store/internal/config"
	"techhub-store/internal/db"
	"techhub-store/internal/httpserver"
	orderrepo "techhub-store/internal/repository/order"
	productrepo "techhub-store/internal/repository/product"
	ordersvc "techhub-store/internal/service/order"
	productsvc "techhub-store/internal/service/product"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("load config")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.WithError(err).Fatal("connect to db")
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo, logger)
	orderService := ordersvc.New(orderRepo, logger)
	catalogSvc := catalog.New(productRepo, logger)
	carts := cartstore.NewManager(cfg.CartDir, logger)
	processor := checkout.New(productRepo, orderRepo, logger, cfg.CheckoutConcurrency)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		ProductSvc: productService,
		OrderSvc:   orderService,
		Catalog:    catalogSvc,
		Carts:      carts,
		Checkout:   processor,
	})
	if err != nil {
		logger.WithError(err).Fatal("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.HTTPAddr).Info("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.WithField("signal", sig.String()).Info("shutting down")
	case err := <-serverErr:
		logger.WithError(err).Error("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	} else {
		logger.Info("server stopped")
	}
}
