package main

import (
	"log"

	"videopick-backend/internal/bootstrap"
	"videopick-backend/internal/shared/config"
	"videopick-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()
	app := bootstrap.Build(cfg)
	r := server.NewRouter(cfg, app.RecommendationHandler)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
