package main

import (
	"github.com/sirupsen/logrus"

	"airsense/internal/config"
	"airsense/internal/database"
	"airsense/internal/server"
	"airsense/internal/store"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config error")
	}
	log.WithFields(logrus.Fields{"env": cfg.Env, "port": cfg.Port}).Info("config loaded")

	db, err := database.Connect(cfg.DSN)
	if err != nil {
		log.WithError(err).Fatal("DB connect error")
	}
	log.Info("MySQL connected")

	if err := database.RunMigrations(db, "migrations", log); err != nil {
		log.WithError(err).Fatal("migrations error")
	}

	srv := server.NewServer(":"+cfg.Port, store.NewMySQLStore(db), cfg.JWTSecret, cfg.TokenTTL, log)
	if err := srv.Run(); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
