// Package search is the seam between the selection queue and a path
// search engine. It turns the queue's current order into a Request and
// hands it to an Engine.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/toommyliu/cs146-finalproject/internal/catalog"
	"github.com/toommyliu/cs146-finalproject/internal/queue"
)

var (
	// ErrEmptyRequest is returned when a search is started with nothing queued.
	ErrEmptyRequest = errors.New("no buildings queued")
	// ErrNoEngine is returned by Stub: no path engine is wired in yet.
	ErrNoEngine = errors.New("no search engine configured")
	// ErrNoResult is returned when an engine reports neither a result nor an error.
	ErrNoResult = errors.New("engine returned no result")
)

// Stop is one queued building in search order.
type Stop struct {
	Position  int    `json:"position"`
	EntryID   string `json:"entry_id"`
	CatalogID string `json:"catalog_id"`
	Name      string `json:"name"`
}

// Request is the ordered input of a path search.
type Request struct {
	Stops []Stop `json:"stops"`
}

// NewRequest resolves a queue snapshot against the catalog.
func NewRequest(order []queue.Entry, c *catalog.Catalog) Request {
	stops := make([]Stop, len(order))
	for i, e := range order {
		stops[i] = Stop{
			Position:  i + 1,
			EntryID:   e.EntryID,
			CatalogID: e.CatalogID,
			Name:      c.Name(e.CatalogID),
		}
	}
	return Request{Stops: stops}
}

// Result is what an engine hands back.
type Result struct {
	// Path lists catalog ids in visiting order.
	Path     []string
	Distance float64
	Elapsed  time.Duration
}

// Engine computes a path over an ordered request.
type Engine interface {
	Search(ctx context.Context, req Request) (*Result, error)
}

// Trigger runs an engine with a deadline.
type Trigger struct {
	engine  Engine
	timeout time.Duration
}

// NewTrigger wraps engine. A non-positive timeout disables the deadline.
func NewTrigger(engine Engine, timeout time.Duration) *Trigger {
	if engine == nil {
		engine = Stub{}
	}
	return &Trigger{engine: engine, timeout: timeout}
}

// Run validates req and executes the search.
func (t *Trigger) Run(ctx context.Context, req Request) (*Result, error) {
	if len(req.Stops) == 0 {
		return nil, ErrEmptyRequest
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := t.engine.Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search over %d stops: %w", len(req.Stops), err)
	}
	if res == nil {
		return nil, fmt.Errorf("search over %d stops: %w", len(req.Stops), ErrNoResult)
	}
	if res.Elapsed == 0 {
		res.Elapsed = time.Since(start)
	}
	return res, nil
}

// Stub is the placeholder engine shipped until a real one exists.
type Stub struct{}

// Search implements Engine.
func (Stub) Search(ctx context.Context, _ Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, ErrNoEngine
}
