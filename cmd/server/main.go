package main

import (
	"context"
	"log"
	"net/http"

	"github.com/DoyleJ11/color-grid-backend/internal/config"
	"github.com/DoyleJ11/color-grid-backend/internal/editstore"
	"github.com/DoyleJ11/color-grid-backend/internal/grid"
	"github.com/DoyleJ11/color-grid-backend/internal/httpapi"
	"github.com/DoyleJ11/color-grid-backend/internal/hub"
	"github.com/DoyleJ11/color-grid-backend/internal/team"
	"github.com/DoyleJ11/color-grid-backend/internal/upstream"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load() // .env is optional

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	reg := team.Default()
	store := editstore.New(cfg.GridSize, reg)
	client := upstream.NewClient(cfg.UpstreamTimeout, logger)
	agg := grid.NewAggregator(client, store, map[grid.Mode]string{
		grid.ModeOnline:  cfg.OnlineBaseURL,
		grid.ModeLocally: cfg.LocallyBaseURL,
	}, cfg.GridSize, cfg.MaxInFlight, logger)

	h := hub.NewHub(context.Background())

	// Build the router *with* the collaborators injected
	handler := httpapi.SetupRoutes(agg, store, reg, h, logger)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
