package main

import (
	"flag"
	"log/slog"
	"os"

	"wagehire/internal/config"
	"wagehire/internal/model"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Interview{}); err != nil {
		slog.Error("migration failed", "err", err)
		os.Exit(1)
	}
	slog.Info("migration complete", "db", cfg.Database.Name)
}
