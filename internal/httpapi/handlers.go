package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DoyleJ11/color-grid-backend/internal/canvas"
	"github.com/DoyleJ11/color-grid-backend/internal/editstore"
	"github.com/DoyleJ11/color-grid-backend/internal/grid"
	"github.com/DoyleJ11/color-grid-backend/internal/hub"
	"github.com/DoyleJ11/color-grid-backend/internal/team"
	"github.com/DoyleJ11/color-grid-backend/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var validate = validator.New()

func GetGrid(agg *grid.Aggregator, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, ok := grid.ParseMode(chi.URLParam(r, "mode"))
		if !ok {
			writeReject(w, http.StatusBadRequest, "unknown mode")
			return
		}

		res, err := agg.FetchGrid(r.Context(), mode)
		if err != nil {
			if errors.Is(err, grid.ErrUnknownMode) {
				writeReject(w, http.StatusBadRequest, "unknown mode")
				return
			}
			log.Error("grid fetch failed", zap.Error(err))
			writeReject(w, http.StatusInternalServerError, "grid fetch failed")
			return
		}

		writeJSON(w, http.StatusOK, types.GridResponse{
			Cells: lo.Map(res.Cells, func(c canvas.Cell, _ int) types.CellPayload {
				return types.CellPayload{X: c.Coord.X, Y: c.Coord.Y, Color: c.Color, TeamID: c.TeamID}
			}),
			ElapsedMs:    res.Elapsed.Milliseconds(),
			RequestCount: res.Succeeded,
			FailedCount:  res.Failed,
		})
	}
}

func GetTeams(reg *team.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.TeamsResponse{
			Teams: lo.Map(reg.List(), func(t team.Team, _ int) types.TeamPayload {
				return types.TeamPayload{ID: t.ID, Name: t.Name, Color: t.Color}
			}),
		})
	}
}

func ApplyEdit(store *editstore.Store, h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.EditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeReject(w, http.StatusBadRequest, "bad json")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeReject(w, http.StatusBadRequest, "invalid edit request")
			return
		}

		color, err := store.Apply(req.X, req.Y, req.TeamID)
		if err != nil {
			switch {
			case errors.Is(err, editstore.ErrOutOfBounds), errors.Is(err, editstore.ErrUnknownTeam):
				writeReject(w, http.StatusBadRequest, err.Error())
			default:
				log.Error("edit failed", zap.Error(err))
				writeReject(w, http.StatusInternalServerError, "edit failed")
			}
			return
		}

		h.Inbox() <- hub.Publish{Notice: hub.EditNotice{X: req.X, Y: req.Y, TeamID: req.TeamID, Color: color}}

		writeJSON(w, http.StatusOK, types.EditResponse{
			Success: true,
			X:       req.X,
			Y:       req.Y,
			TeamID:  req.TeamID,
			Color:   color,
		})
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeReject(w http.ResponseWriter, status int, reason string) {
	writeJSON(w, status, types.ErrorResponse{Success: false, Error: reason})
}
