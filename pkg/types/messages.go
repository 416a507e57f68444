package types

import "github.com/DoyleJ11/color-grid-backend/internal/canvas"

// HTTP payloads

type CellPayload struct {
	X      int          `json:"x"`
	Y      int          `json:"y"`
	Color  canvas.Color `json:"color"`
	TeamID *int         `json:"teamId,omitempty"`
}

type GridResponse struct {
	Cells        []CellPayload `json:"cells"`
	ElapsedMs    int64         `json:"elapsedMs"`
	RequestCount int           `json:"requestCount"`
	FailedCount  int           `json:"failedCount"`
}

type TeamPayload struct {
	ID    int          `json:"id"`
	Name  string       `json:"name"`
	Color canvas.Color `json:"color"`
}

type TeamsResponse struct {
	Teams []TeamPayload `json:"teams"`
}

type EditRequest struct {
	X      int `json:"x" validate:"gte=0"`
	Y      int `json:"y" validate:"gte=0"`
	TeamID int `json:"teamId" validate:"gte=0"`
}

type EditResponse struct {
	Success bool         `json:"success"`
	X       int          `json:"x"`
	Y       int          `json:"y"`
	TeamID  int          `json:"teamId"`
	Color   canvas.Color `json:"color"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Websocket messages

type ClientMessage struct {
	Type   string `json:"type"` // "ApplyEdit"
	X      int    `json:"x"`
	Y      int    `json:"y"`
	TeamID int    `json:"team_id"`
}

type ServerMessage struct {
	Type    string        `json:"type"` // "CellEdited" | "Error"
	Version int           `json:"version,omitempty"`
	X       int           `json:"x"`
	Y       int           `json:"y"`
	TeamID  int           `json:"team_id"`
	Color   *canvas.Color `json:"color,omitempty"`
	Error   string        `json:"error,omitempty"`
}
