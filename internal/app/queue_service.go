package app

import (
	"errors"
	"fmt"

	"github.com/toommyliu/cs146-finalproject/internal/catalog"
	"github.com/toommyliu/cs146-finalproject/internal/queue"
	"github.com/toommyliu/cs146-finalproject/internal/tui/events"
)

// ErrUnknownEntry is returned when an edit names an entry id the queue no longer holds.
var ErrUnknownEntry = errors.New("entry not in queue")

// QueueService turns UI intents into queue edits and reports them.
type QueueService struct {
	app         *App
	eventBroker *events.Broker
}

// NewQueueService creates a new queue service
func NewQueueService(app *App, eventBroker *events.Broker) *QueueService {
	return &QueueService{
		app:         app,
		eventBroker: eventBroker,
	}
}

// Add appends a catalog entry (the "+" button).
func (s *QueueService) Add(c catalog.Entry) queue.Entry {
	e := s.app.Queue.Append(c)
	s.changed("append", e, s.app.Queue.Len()-1)
	s.eventBroker.Status("success", fmt.Sprintf("Queued %s", c.Name))
	return e
}

// Insert places a catalog entry at index (a drop onto the queue).
func (s *QueueService) Insert(c catalog.Entry, index int) (queue.Entry, error) {
	e, err := s.app.Queue.InsertAt(c, index)
	if err != nil {
		s.fail(err)
		return queue.Entry{}, err
	}
	s.changed("insert", e, index)
	s.eventBroker.Status("success", fmt.Sprintf("Queued %s at #%d", c.Name, index+1))
	return e, nil
}

// Move reorders within the queue; dst is a post-removal index.
func (s *QueueService) Move(src, dst int) error {
	if err := s.app.Queue.Move(src, dst); err != nil {
		s.fail(err)
		return err
	}
	if src == dst {
		return nil
	}
	e, _ := s.app.Queue.At(dst)
	s.changed("move", e, dst)
	return nil
}

// MoveEntry moves the entry with entryID so that it ends up at dst.
// Repeating it with the same arguments leaves the queue unchanged.
func (s *QueueService) MoveEntry(entryID string, dst int) error {
	src := s.app.Queue.IndexOf(entryID)
	if src < 0 {
		err := fmt.Errorf("move %s: %w", entryID, ErrUnknownEntry)
		s.fail(err)
		return err
	}
	return s.Move(src, dst)
}

// Remove drops the entry at index (the X button).
func (s *QueueService) Remove(index int) (queue.Entry, error) {
	e, err := s.app.Queue.RemoveAt(index)
	if err != nil {
		s.fail(err)
		return queue.Entry{}, err
	}
	s.changed("remove", e, index)
	s.eventBroker.Status("info", fmt.Sprintf("Removed %s", s.app.Catalog.Name(e.CatalogID)))
	return e, nil
}

// Reset clears the queue (the Reset button).
func (s *QueueService) Reset() {
	s.app.Queue.Clear()
	s.eventBroker.Publish(events.Event{
		Type: events.QueueClearedEvent,
		Payload: events.QueueChangedPayload{
			Op:    "clear",
			Index: -1,
			Order: s.app.Queue.Order(),
		},
	})
	s.eventBroker.Status("info", "Queue cleared")
}

// Stops resolves the current order to display names.
func (s *QueueService) Stops() []string {
	order := s.app.Queue.Order()
	names := make([]string, len(order))
	for i, e := range order {
		names[i] = s.app.Catalog.Name(e.CatalogID)
	}
	return names
}

func (s *QueueService) changed(op string, e queue.Entry, index int) {
	s.eventBroker.Publish(events.Event{
		Type: events.QueueChangedEvent,
		Payload: events.QueueChangedPayload{
			Op:    op,
			Entry: e,
			Index: index,
			Order: s.app.Queue.Order(),
		},
	})
}

func (s *QueueService) fail(err error) {
	s.eventBroker.Status("error", err.Error())
}
