package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/SecondHemisphere/api-portal-actividades/internal/app"
	"github.com/SecondHemisphere/api-portal-actividades/internal/config"
	"github.com/SecondHemisphere/api-portal-actividades/internal/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.New("portal-api", slog.LevelInfo)
	if err := app.Run(cfg, lg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
