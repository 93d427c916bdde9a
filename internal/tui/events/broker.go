package events

import "sync"

// wildcard subscribes to every event type
const wildcard EventType = "*"

// Broker fans events out from app services to the TUI.
// Publishing never blocks: a subscriber whose buffer is full misses the event.
type Broker struct {
	subscribers map[EventType][]chan Event
	mu          sync.RWMutex
	bufferSize  int
}

// NewBroker creates a new event broker
func NewBroker() *Broker {
	return NewBrokerWithBuffer(32)
}

// NewBrokerWithBuffer creates a broker whose subscription channels hold size events
func NewBrokerWithBuffer(size int) *Broker {
	if size < 1 {
		size = 1
	}
	return &Broker{
		subscribers: make(map[EventType][]chan Event),
		bufferSize:  size,
	}
}

// Subscribe creates a subscription to specific event types, or to all when none are given
func (b *Broker) Subscribe(eventTypes ...EventType) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)

	if len(eventTypes) == 0 {
		eventTypes = []EventType{wildcard}
	}

	for _, eventType := range eventTypes {
		b.subscribers[eventType] = append(b.subscribers[eventType], ch)
	}

	return ch
}

// Unsubscribe removes a subscription and closes its channel
func (b *Broker) Unsubscribe(ch <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	closed := false
	for eventType, subscribers := range b.subscribers {
		for i, sub := range subscribers {
			if sub != ch {
				continue
			}
			subscribers = append(subscribers[:i], subscribers[i+1:]...)
			if !closed {
				close(sub)
				closed = true
			}
			break
		}
		if len(subscribers) == 0 {
			delete(b.subscribers, eventType)
		} else {
			b.subscribers[eventType] = subscribers
		}
	}
}

// Publish sends an event to all matching subscribers
func (b *Broker) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	deliver := func(subscribers []chan Event) {
		for _, ch := range subscribers {
			select {
			case ch <- event:
			default:
				// Channel full, skip this event
			}
		}
	}

	deliver(b.subscribers[event.Type])
	if event.Type != wildcard {
		deliver(b.subscribers[wildcard])
	}
}

// Status publishes a status bar message
func (b *Broker) Status(kind, message string) {
	b.Publish(Event{
		Type: StatusMessageEvent,
		Payload: StatusMessagePayload{
			Message: message,
			Type:    kind,
		},
	})
}

// Clear removes all subscriptions
func (b *Broker) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	closed := make(map[chan Event]bool)
	for _, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			if !closed[ch] {
				close(ch)
				closed[ch] = true
			}
		}
	}

	b.subscribers = make(map[EventType][]chan Event)
}
