package httpapi

import (
	"net/http"

	"github.com/DoyleJ11/color-grid-backend/internal/editstore"
	"github.com/DoyleJ11/color-grid-backend/internal/grid"
	"github.com/DoyleJ11/color-grid-backend/internal/hub"
	"github.com/DoyleJ11/color-grid-backend/internal/team"
	"github.com/DoyleJ11/color-grid-backend/internal/ws"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func SetupRoutes(agg *grid.Aggregator, store *editstore.Store, reg *team.Registry, h *hub.Hub, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Get("/grid/{mode}", GetGrid(agg, log))
	r.Get("/teams", GetTeams(reg))
	r.Post("/edits", ApplyEdit(store, h, log))
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, store, log))
	return r
}
