package queue

import (
	"github.com/toommyliu/cs146-finalproject/internal/catalog"
	"github.com/toommyliu/cs146-finalproject/internal/csync"
)

// Entry is one placement of a building in the queue.
type Entry struct {
	// CatalogID refers back to a catalog.Entry; lookup only.
	CatalogID string `json:"catalog_id"`
	// EntryID is unique among all entries this queue has ever created.
	EntryID string `json:"entry_id"`
}

// Queue is the ordered selection of buildings for one session.
//
// Every method is atomic with respect to the others, so the UI may read
// Order() from a command goroutine while the event loop edits the queue.
type Queue struct {
	entries *csync.Slice[Entry]
	ids     IDGenerator
}

// Option configures a Queue.
type Option func(*Queue)

// WithIDGenerator replaces the default counter-based id strategy.
func WithIDGenerator(g IDGenerator) Option {
	return func(q *Queue) {
		if g != nil {
			q.ids = g
		}
	}
}

// New creates an empty queue.
func New(opts ...Option) *Queue {
	q := &Queue{
		entries: csync.NewSlice[Entry](),
		ids:     NewCounter(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Append queues a new entry for c at the end and returns it.
func (q *Queue) Append(c catalog.Entry) Entry {
	e := q.newEntry(c)
	q.entries.Append(e)
	return e
}

// InsertAt queues a new entry for c so that exactly index entries precede it.
func (q *Queue) InsertAt(c catalog.Entry, index int) (Entry, error) {
	// The id is only drawn once the index is accepted, under the same lock.
	e, ok := q.entries.InsertFunc(index, func() Entry { return q.newEntry(c) })
	if !ok {
		return Entry{}, &IndexError{Op: "insert", Index: index, Len: q.entries.Len()}
	}
	return e, nil
}

// Move takes the entry at src out and re-inserts it at dst, where dst is an
// index into the queue after removal. Moving an entry onto itself is a no-op.
func (q *Queue) Move(src, dst int) error {
	if !q.entries.Move(src, dst) {
		n := q.entries.Len()
		bad := src
		if src >= 0 && src < n {
			bad = dst
		}
		return &IndexError{Op: "move", Index: bad, Len: n}
	}
	return nil
}

// RemoveAt drops the entry at index and returns it.
func (q *Queue) RemoveAt(index int) (Entry, error) {
	e, ok := q.entries.Remove(index)
	if !ok {
		return Entry{}, &IndexError{Op: "remove", Index: index, Len: q.entries.Len()}
	}
	return e, nil
}

// Clear empties the queue. Issued ids stay retired.
func (q *Queue) Clear() {
	q.entries.Clear()
}

// Order returns a snapshot of the queue in priority order.
func (q *Queue) Order() []Entry {
	return q.entries.All()
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	return q.entries.Len()
}

// At returns the entry at index.
func (q *Queue) At(index int) (Entry, bool) {
	return q.entries.Get(index)
}

// IndexOf returns the position of the entry with the given id, or -1.
func (q *Queue) IndexOf(entryID string) int {
	return q.entries.Find(func(e Entry) bool { return e.EntryID == entryID })
}

func (q *Queue) newEntry(c catalog.Entry) Entry {
	return Entry{
		CatalogID: c.ID,
		EntryID:   q.ids.NextID(c.ID),
	}
}
