package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/toommyliu/cs146-finalproject/internal/tui/components/status"
	"github.com/toommyliu/cs146-finalproject/internal/tui/events"
)

// listenForEvents listens for events from the event broker
func (m *Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.eventSub
		if !ok {
			return nil
		}
		return event
	}
}

// handleEvent processes events from the event broker
func (m *Model) handleEvent(event events.Event) tea.Cmd {
	if m.app.Config.Debug {
		log.Printf("event %s: %+v", event.Type, event.Payload)
	}

	switch event.Type {
	case events.QueueChangedEvent, events.QueueClearedEvent:
		// The queue is the source of truth; payload order may already be stale
		m.syncQueue()

	case events.SearchStartedEvent:
		if payload, ok := event.Payload.(events.SearchPayload); ok && len(payload.Request.Stops) > 0 {
			return m.statusBar.ShowInfo("Searching…")
		}

	case events.SearchCompletedEvent:
		if payload, ok := event.Payload.(events.SearchPayload); ok && payload.Result != nil && m.app.Config.Debug {
			log.Printf("route %v (%.1f)", payload.Result.Path, payload.Result.Distance)
		}

	case events.StatusMessageEvent:
		if payload, ok := event.Payload.(events.StatusMessagePayload); ok {
			return m.statusBar.SetMessage(payload.Message, status.ParseType(payload.Type))
		}
	}

	return nil
}
