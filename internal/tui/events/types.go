package events

import (
	"github.com/toommyliu/cs146-finalproject/internal/queue"
	"github.com/toommyliu/cs146-finalproject/internal/search"
)

// EventType identifies the type of event
type EventType string

const (
	// Queue events
	QueueChangedEvent EventType = "queue.changed"
	QueueClearedEvent EventType = "queue.cleared"

	// Search events
	SearchStartedEvent   EventType = "search.started"
	SearchCompletedEvent EventType = "search.completed"
	SearchFailedEvent    EventType = "search.failed"

	// UI events
	StatusMessageEvent EventType = "ui.status"
	DialogOpenEvent    EventType = "ui.dialog.open"
	DialogCloseEvent   EventType = "ui.dialog.close"
)

// Event represents an event in the system
type Event struct {
	Type    EventType
	Payload interface{}
}

// Event payload types

// QueueChangedPayload carries the queue after an edit.
type QueueChangedPayload struct {
	// Op is "append", "insert", "move", "remove" or "clear".
	Op    string
	Entry queue.Entry
	// Index is where Entry ended up (or was removed from).
	Index int
	Order []queue.Entry
}

type SearchPayload struct {
	Request search.Request
	Result  *search.Result
	Err     error
}

type StatusMessagePayload struct {
	Message string
	Type    string // "info", "warning", "error", "success"
}

type DialogPayload struct {
	DialogID string
	Data     interface{}
}
