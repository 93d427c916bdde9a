package queue

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces entry ids. Implementations must never return the
// same id twice for the lifetime of the generator.
type IDGenerator interface {
	NextID(catalogID string) string
}

// Counter issues "<catalogID>-<n>" ids from a monotonic counter shared by
// all catalog ids, so "ENG-3" can only ever be issued once.
type Counter struct {
	next atomic.Uint64
}

// NewCounter creates a counter starting at 1.
func NewCounter() *Counter {
	return &Counter{}
}

// NextID implements IDGenerator.
func (c *Counter) NextID(catalogID string) string {
	return fmt.Sprintf("%s-%d", catalogID, c.next.Add(1))
}

// UUID issues random version 4 UUIDs prefixed with the catalog id.
type UUID struct{}

// NewUUID creates a UUID generator.
func NewUUID() UUID {
	return UUID{}
}

// NextID implements IDGenerator.
func (UUID) NextID(catalogID string) string {
	return catalogID + "-" + uuid.NewString()
}

// GeneratorFor maps a configured strategy name to a generator.
// Unknown names fall back to the counter.
func GeneratorFor(strategy string) IDGenerator {
	switch strategy {
	case "uuid":
		return NewUUID()
	default:
		return NewCounter()
	}
}
