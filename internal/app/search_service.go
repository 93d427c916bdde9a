package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/toommyliu/cs146-finalproject/internal/search"
	"github.com/toommyliu/cs146-finalproject/internal/tui/events"
)

// SearchService hands the current queue to the search trigger.
type SearchService struct {
	app         *App
	eventBroker *events.Broker
}

// NewSearchService creates a new search service
func NewSearchService(app *App, eventBroker *events.Broker) *SearchService {
	return &SearchService{
		app:         app,
		eventBroker: eventBroker,
	}
}

// Start snapshots the queue and runs the search. It blocks until the
// engine returns, so callers on the UI loop should run it in a command.
func (s *SearchService) Start(ctx context.Context) (*search.Result, error) {
	req := search.NewRequest(s.app.Queue.Order(), s.app.Catalog)

	s.eventBroker.Publish(events.Event{
		Type:    events.SearchStartedEvent,
		Payload: events.SearchPayload{Request: req},
	})

	res, err := s.app.Trigger.Run(ctx, req)
	if err != nil {
		s.eventBroker.Publish(events.Event{
			Type:    events.SearchFailedEvent,
			Payload: events.SearchPayload{Request: req, Err: err},
		})

		switch {
		case errors.Is(err, search.ErrEmptyRequest):
			s.eventBroker.Status("warning", "Add at least one building before searching")
		case errors.Is(err, search.ErrNoEngine):
			s.eventBroker.Status("warning", fmt.Sprintf("Path search is not available yet (%d stops queued)", len(req.Stops)))
		default:
			s.eventBroker.Status("error", err.Error())
		}
		return nil, err
	}

	s.eventBroker.Publish(events.Event{
		Type:    events.SearchCompletedEvent,
		Payload: events.SearchPayload{Request: req, Result: res},
	})
	s.eventBroker.Status("success", fmt.Sprintf("Found a route through %d stops", len(req.Stops)))
	return res, nil
}
