package grid

import (
	"context"
	"errors"
	"time"

	"github.com/DoyleJ11/color-grid-backend/internal/canvas"
	"github.com/DoyleJ11/color-grid-backend/internal/editstore"
	"github.com/DoyleJ11/color-grid-backend/internal/upstream"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrUnknownMode = errors.New("unknown grid mode")

type Mode string

const (
	// ModeOnline always reflects upstream truth.
	ModeOnline Mode = "online"
	// ModeLocally seeds from upstream and overlays local edits.
	ModeLocally Mode = "locally"
)

func ParseMode(s string) (Mode, bool) {
	switch s {
	case "online":
		return ModeOnline, true
	case "locally":
		return ModeLocally, true
	default:
		return "", false
	}
}

// Result is one grid fetch. Elapsed runs from dispatch start through
// merge end. Succeeded counts lookups that returned a color; Failed
// counts lookups that didn't. Both are explicit so either counting
// policy is observable.
type Result struct {
	Cells     []canvas.Cell
	Elapsed   time.Duration
	Succeeded int
	Failed    int
}

// Aggregator fans one upstream lookup per coordinate out across the
// whole grid, joins on all of them, and overlays the edit store when
// the mode asks for it. It only reads the store, never writes.
type Aggregator struct {
	client      *upstream.Client
	store       *editstore.Store
	bases       map[Mode]string
	size        int
	maxInFlight int
	log         *zap.Logger
}

// NewAggregator wires the fetch pipeline. maxInFlight caps concurrent
// upstream calls; 0 means unbounded, the reference behavior where all
// size×size calls are in flight at once.
func NewAggregator(client *upstream.Client, store *editstore.Store, bases map[Mode]string, size, maxInFlight int, log *zap.Logger) *Aggregator {
	return &Aggregator{
		client:      client,
		store:       store,
		bases:       bases,
		size:        size,
		maxInFlight: maxInFlight,
		log:         log,
	}
}

// cellResult keeps the success/failure distinction explicit until
// final assembly, where failures collapse to "omitted".
type cellResult struct {
	color canvas.Color
	err   error
}

// FetchGrid retrieves every cell of the grid concurrently and waits
// for all outcomes. Individual lookup failures drop the cell from the
// result; the fetch itself still succeeds, even when every lookup
// failed. Only an unknown mode is an error.
func (a *Aggregator) FetchGrid(ctx context.Context, mode Mode) (Result, error) {
	base, ok := a.bases[mode]
	if !ok {
		return Result{}, ErrUnknownMode
	}

	start := time.Now()
	coords := canvas.Coords(a.size)
	results := make([]cellResult, len(coords))

	var g errgroup.Group
	if a.maxInFlight > 0 {
		g.SetLimit(a.maxInFlight)
	}
	for i, c := range coords {
		i, c := i, c
		g.Go(func() error {
			color, err := a.client.Lookup(ctx, base, c.X, c.Y)
			results[i] = cellResult{color: color, err: err}
			// Failures are recorded, never propagated: no early exit.
			return nil
		})
	}
	_ = g.Wait()

	res := Result{Cells: make([]canvas.Cell, 0, len(coords))}
	for i, c := range coords {
		if results[i].err != nil {
			res.Failed++
			continue
		}
		res.Succeeded++
		cell := canvas.Cell{Coord: c, Color: results[i].color}
		if mode == ModeLocally {
			if e, hit := a.store.Lookup(c); hit {
				// Cache wins outright, no blending.
				cell.Color = e.Color
				teamID := e.TeamID
				cell.TeamID = &teamID
			}
		}
		res.Cells = append(res.Cells, cell)
	}
	res.Elapsed = time.Since(start)

	a.log.Info("grid fetched",
		zap.String("mode", string(mode)),
		zap.Int("succeeded", res.Succeeded),
		zap.Int("failed", res.Failed),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}
