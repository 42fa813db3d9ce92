package main

import (
	"CivicPulseAPI/internal/adapter"
	"CivicPulseAPI/internal/bootstrap"
	"CivicPulseAPI/internal/config"
	"fmt"
	"log/slog"
	"net/http"
	"os"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.LoadAppConfig()

	client := config.InitEnt(cfg)
	defer func() {
		if err := client.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
		}
	}()

	redisAdapter, err := adapter.NewRedisAdapter(cfg)
	if err != nil {
		slog.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}

	s3Client := config.NewS3Client(cfg)
	validate := config.NewValidator()
	chiMux := config.NewChi(cfg)

	bootstrap.Init(cfg, client, validate, s3Client, redisAdapter, chiMux)

	addr := fmt.Sprintf(":%s", cfg.AppPort)
	slog.Info("Starting CivicPulseAPI", "port", cfg.AppPort)

	if err := http.ListenAndServe(addr, chiMux); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
