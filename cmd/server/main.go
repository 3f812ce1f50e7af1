package main

import (
	"github.com/sirupsen/logrus"

	"github.com/teamboard/teamboard/internal/config"
	"github.com/teamboard/teamboard/internal/database"
	"github.com/teamboard/teamboard/internal/routes"
	"github.com/teamboard/teamboard/internal/services"
	"github.com/teamboard/teamboard/internal/store"
)

func main() {
	logrus.Info("starting teamboard")

	cfg := config.Load()
	logrus.WithFields(logrus.Fields{
		"database_type": cfg.DatabaseType,
		"allowed_email": cfg.AllowedEmail,
	}).Info("config loaded")

	db, err := database.Open(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize database")
	}

	st := store.New(db)
	authService := services.NewAuthService(cfg, db)

	router := routes.SetupRouter(cfg, st, authService)

	addr := cfg.ServerHost + ":" + cfg.ServerPort
	logrus.WithField("addr", addr).Info("server starting")

	if err := router.Run(addr); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
