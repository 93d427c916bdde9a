// Package queue implements the selection queue: the user-ordered list of
// buildings that becomes the input of a path search.
//
// # Identity
//
// A building may be queued more than once, so every queued Entry carries
// its own EntryID in addition to the CatalogID it refers to. EntryIDs come
// from an IDGenerator and are never reused within a queue, even after the
// entry is removed or the queue is cleared. Uniqueness is a property of
// the generator alone; the queue never inspects its contents to enforce
// it.
//
// # Index semantics
//
//   - Append adds to the end.
//   - InsertAt(e, i) needs 0 <= i <= Len(); afterwards exactly i entries
//     precede the new one.
//   - Move(src, dst) needs both indexes in [0, Len()-1]. The entry is taken
//     out first and dst is read against the shortened sequence, so on
//     [A B C D] Move(0, 2) gives [B C A D].
//   - RemoveAt(i) needs 0 <= i < Len().
//
// Out-of-range indexes fail with ErrIndexOutOfRange and leave the queue
// exactly as it was.
//
// # Example
//
//	q := queue.New()
//	q.Append(catalog.Entry{ID: "ADM", Name: "Administration"})
//	q.Append(catalog.Entry{ID: "ALQ", Name: "Alquist Building"})
//	if err := q.Move(0, 1); err != nil {
//	    return err
//	}
//	for _, e := range q.Order() {
//	    fmt.Println(e.CatalogID) // ALQ, ADM
//	}
package queue
