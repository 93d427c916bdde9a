package app

import (
	"fmt"

	"github.com/toommyliu/cs146-finalproject/internal/catalog"
	"github.com/toommyliu/cs146-finalproject/internal/config"
	"github.com/toommyliu/cs146-finalproject/internal/queue"
	"github.com/toommyliu/cs146-finalproject/internal/search"
	"github.com/toommyliu/cs146-finalproject/internal/tui/events"
)

// App holds the state of one session and the services that edit it.
// The TUI owns exactly one App and passes it to its event handlers.
type App struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Queue   *queue.Queue
	Trigger *search.Trigger

	QueueService  *QueueService
	SearchService *SearchService

	EventBroker *events.Broker
}

// New creates an app from a loaded configuration.
func New(cfg *config.Config, eventBroker *events.Broker) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		cat = loaded
	}

	return NewWith(cfg, cat, queue.New(queue.WithIDGenerator(queue.GeneratorFor(cfg.IDStrategy))),
		search.NewTrigger(search.Stub{}, cfg.Timeout()), eventBroker), nil
}

// NewWith wires an app from explicit parts.
func NewWith(cfg *config.Config, cat *catalog.Catalog, q *queue.Queue, trigger *search.Trigger, eventBroker *events.Broker) *App {
	a := &App{
		Config:      cfg,
		Catalog:     cat,
		Queue:       q,
		Trigger:     trigger,
		EventBroker: eventBroker,
	}

	a.QueueService = NewQueueService(a, eventBroker)
	a.SearchService = NewSearchService(a, eventBroker)

	return a
}
