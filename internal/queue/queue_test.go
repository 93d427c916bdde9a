package queue

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toommyliu/cs146-finalproject/internal/catalog"
)

var (
	adm = catalog.Entry{ID: "ADM", Name: "Administration"}
	alq = catalog.Entry{ID: "ALQ", Name: "Alquist Building"}
	art = catalog.Entry{ID: "ART", Name: "Art Building"}
	ash = catalog.Entry{ID: "ASH", Name: "Associated Students House"}
	eng = catalog.Entry{ID: "ENG", Name: "Engineering"}
)

func catalogIDs(entries []Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.CatalogID
	}
	return ids
}

func filled(entries ...catalog.Entry) *Queue {
	q := New()
	for _, e := range entries {
		q.Append(e)
	}
	return q
}

func TestQueue_StartsEmpty(t *testing.T) {
	q := New()
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Order())
}

func TestQueue_AppendPlacesLast(t *testing.T) {
	q := filled(adm, alq)

	e := q.Append(art)

	order := q.Order()
	require.Len(t, order, 3)
	assert.Equal(t, e, order[len(order)-1])
	assert.Equal(t, "ART", e.CatalogID)
}

func TestQueue_InsertAt(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		expected []string
	}{
		{name: "front", index: 0, expected: []string{"ENG", "ADM", "ALQ", "ART"}},
		{name: "middle", index: 2, expected: []string{"ADM", "ALQ", "ENG", "ART"}},
		{name: "end", index: 3, expected: []string{"ADM", "ALQ", "ART", "ENG"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := filled(adm, alq, art)

			e, err := q.InsertAt(eng, tt.index)
			require.NoError(t, err)

			order := q.Order()
			assert.Equal(t, tt.expected, catalogIDs(order))
			assert.Equal(t, tt.index, q.IndexOf(e.EntryID), "exactly index entries precede the new one")
		})
	}
}

func TestQueue_MovePostRemovalIndex(t *testing.T) {
	tests := []struct {
		name     string
		src, dst int
		expected []string
	}{
		{name: "front_to_2", src: 0, dst: 2, expected: []string{"ALQ", "ART", "ADM", "ASH"}},
		{name: "front_to_last", src: 0, dst: 3, expected: []string{"ALQ", "ART", "ASH", "ADM"}},
		{name: "last_to_front", src: 3, dst: 0, expected: []string{"ASH", "ADM", "ALQ", "ART"}},
		{name: "back_one", src: 2, dst: 1, expected: []string{"ADM", "ART", "ALQ", "ASH"}},
		{name: "noop", src: 1, dst: 1, expected: []string{"ADM", "ALQ", "ART", "ASH"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := filled(adm, alq, art, ash)
			moved, _ := q.At(tt.src)

			require.NoError(t, q.Move(tt.src, tt.dst))

			assert.Equal(t, tt.expected, catalogIDs(q.Order()))
			got, _ := q.At(tt.dst)
			assert.Equal(t, moved, got, "moved entry keeps its ids")
		})
	}
}

func TestQueue_OutOfRangeLeavesQueueUnchanged(t *testing.T) {
	q := filled(adm, alq, art)
	before := q.Order()

	ops := map[string]func() error{
		"remove_len":      func() error { _, err := q.RemoveAt(q.Len()); return err },
		"remove_negative": func() error { _, err := q.RemoveAt(-1); return err },
		"insert_negative": func() error { _, err := q.InsertAt(eng, -1); return err },
		"insert_past_len": func() error { _, err := q.InsertAt(eng, q.Len()+1); return err },
		"move_src_len":    func() error { return q.Move(q.Len(), 0) },
		"move_dst_len":    func() error { return q.Move(0, q.Len()) },
		"move_negative":   func() error { return q.Move(-1, 0) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrIndexOutOfRange))

			var idxErr *IndexError
			require.True(t, errors.As(err, &idxErr))
			assert.Equal(t, 3, idxErr.Len)

			assert.Equal(t, before, q.Order())
		})
	}
}

func TestQueue_MoveOnEmptyFails(t *testing.T) {
	q := New()
	assert.ErrorIs(t, q.Move(0, 0), ErrIndexOutOfRange)
}

func TestQueue_ClearIsIdempotent(t *testing.T) {
	empty := New()
	empty.Clear()
	assert.Empty(t, empty.Order())

	q := filled(adm, alq)
	q.Clear()
	once := q.Order()
	q.Clear()
	assert.Equal(t, once, q.Order())
	assert.Equal(t, 0, q.Len())
}

func TestQueue_DuplicateCatalogEntries(t *testing.T) {
	q := New()

	first := q.Append(eng)
	second := q.Append(eng)

	assert.Equal(t, first.CatalogID, second.CatalogID)
	assert.NotEqual(t, first.EntryID, second.EntryID)
	assert.Equal(t, []string{"ENG", "ENG"}, catalogIDs(q.Order()))
}

func TestQueue_RemoveReturnsEntry(t *testing.T) {
	q := filled(adm, alq)
	want, _ := q.At(0)

	got, err := q.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, -1, q.IndexOf(want.EntryID))
}

func TestQueue_Scenario(t *testing.T) {
	q := New()
	q.Append(catalog.Entry{ID: "ADM"})
	q.Append(catalog.Entry{ID: "ALQ"})

	require.NoError(t, q.Move(0, 1))
	assert.Equal(t, []string{"ALQ", "ADM"}, catalogIDs(q.Order()))

	_, err := q.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"ADM"}, catalogIDs(q.Order()))
}

// Random operation sequences must never produce a duplicate or recycled id.
func TestQueue_IDsNeverRepeat(t *testing.T) {
	for name, gen := range map[string]IDGenerator{"counter": NewCounter(), "uuid": NewUUID()} {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			q := New(WithIDGenerator(gen))
			buildings := []catalog.Entry{adm, alq, art, eng}
			issued := make(map[string]bool)

			record := func(e Entry) {
				require.False(t, issued[e.EntryID], "id %s issued twice", e.EntryID)
				issued[e.EntryID] = true
			}

			for i := 0; i < 500; i++ {
				b := buildings[rng.Intn(len(buildings))]
				switch rng.Intn(6) {
				case 0, 1:
					record(q.Append(b))
				case 2:
					if e, err := q.InsertAt(b, rng.Intn(q.Len()+2)); err == nil {
						record(e)
					}
				case 3:
					_ = q.Move(rng.Intn(q.Len()+1), rng.Intn(q.Len()+1))
				case 4:
					_, _ = q.RemoveAt(rng.Intn(q.Len() + 1))
				case 5:
					if rng.Intn(10) == 0 {
						q.Clear()
					}
				}

				seen := make(map[string]bool)
				for _, e := range q.Order() {
					require.False(t, seen[e.EntryID], "duplicate id %s in queue", e.EntryID)
					seen[e.EntryID] = true
				}
			}
		})
	}
}

func TestQueue_InsertAtRacingRemove(t *testing.T) {
	counter := NewCounter()
	q := New(WithIDGenerator(counter))
	q.Append(adm)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		inserted int
	)
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			// Valid only while ADM is still queued.
			if _, err := q.InsertAt(eng, q.Len()); err == nil {
				mu.Lock()
				inserted++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, ErrIndexOutOfRange)
			}
		}()
		go func() {
			defer wg.Done()
			_, _ = q.RemoveAt(0)
		}()
	}
	wg.Wait()

	// The counter has issued one id for ADM plus one per accepted insert.
	assert.Equal(t, fmt.Sprintf("ENG-%d", inserted+2), counter.NextID("ENG"))
	seen := make(map[string]bool)
	for _, e := range q.Order() {
		assert.False(t, seen[e.EntryID])
		seen[e.EntryID] = true
	}
}

func TestGenerators(t *testing.T) {
	c := NewCounter()
	assert.Equal(t, "ENG-1", c.NextID("ENG"))
	assert.Equal(t, "ADM-2", c.NextID("ADM"))

	u := NewUUID().NextID("ENG")
	assert.True(t, strings.HasPrefix(u, "ENG-"))
	assert.Len(t, u, len("ENG-")+36)

	_, isUUID := GeneratorFor("uuid").(UUID)
	assert.True(t, isUUID)
	_, isCounter := GeneratorFor("anything").(*Counter)
	assert.True(t, isCounter)
}
