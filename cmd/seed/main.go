package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"techhub-store/internal/config"
	"techhub-store/internal/db"
	"techhub-store/internal/seed"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("load config")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.WithError(err).Fatal("connect db")
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		logger.WithError(err).Fatal("apply seed")
	}

	logger.Info("seed data applied")
}
