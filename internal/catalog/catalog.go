package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
)

var (
	// ErrDuplicateID is returned when two entries share an id.
	ErrDuplicateID = errors.New("duplicate catalog id")
	// ErrInvalidEntry is returned for entries with an empty id or name.
	ErrInvalidEntry = errors.New("invalid catalog entry")
)

// Entry is a single building record.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Label renders the entry the way lists show it: "Engineering (ENG)".
func (e Entry) Label() string {
	return fmt.Sprintf("%s (%s)", e.Name, e.ID)
}

// Catalog is an immutable, ordered set of entries indexed by id.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New validates entries and builds a catalog from them.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		e.ID = strings.TrimSpace(e.ID)
		e.Name = strings.TrimSpace(e.Name)
		if e.ID == "" || e.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrInvalidEntry)
		}
		if _, exists := c.index[e.ID]; exists {
			return nil, fmt.Errorf("entry %d %q: %w", i, e.ID, ErrDuplicateID)
		}
		c.index[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	return c, nil
}

// LoadFile reads a JSON array of entries from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	c, err := New(entries)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at display position i.
func (c *Catalog) At(i int) (Entry, bool) {
	if i < 0 || i >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Lookup finds an entry by id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Name resolves an id to its display name, falling back to the id itself.
func (c *Catalog) Name(id string) string {
	if e, ok := c.Lookup(id); ok {
		return e.Name
	}
	return id
}

// Entries returns a copy of all entries in display order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Match is a search hit.
type Match struct {
	Entry Entry
	// Index is the entry's display position in the catalog.
	Index int
	// MatchedIndexes are byte offsets into Entry.Label() that matched.
	MatchedIndexes []int
	Score          int
}

// Search fuzzy-matches query against entry labels, best match first.
// An empty query returns every entry in display order.
func (c *Catalog) Search(query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		matches := make([]Match, len(c.entries))
		for i, e := range c.entries {
			matches[i] = Match{Entry: e, Index: i}
		}
		return matches
	}

	results := fuzzy.FindFrom(query, labels(c.entries))
	matches := make([]Match, 0, len(results))
	for _, r := range results {
		matches = append(matches, Match{
			Entry:          c.entries[r.Index],
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		})
	}
	return matches
}

// labels adapts entries to fuzzy.Source.
type labels []Entry

func (l labels) String(i int) string { return l[i].Label() }
func (l labels) Len() int            { return len(l) }
