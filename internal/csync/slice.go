package csync

import "sync"

// Slice is a thread-safe slice implementation with generic types.
// It uses a RWMutex for concurrent read access and exclusive write access.
type Slice[T any] struct {
	data []T
	mu   sync.RWMutex
}

// NewSlice creates a new thread-safe slice
func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{
		data: make([]T, 0),
	}
}

// Append adds elements to the end of the slice
func (s *Slice[T]) Append(elements ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, elements...)
}

// Get retrieves an element by index, returns the element and whether index is valid
func (s *Slice[T]) Get(index int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	if index < 0 || index >= len(s.data) {
		return zero, false
	}
	return s.data[index], true
}

// Len returns the length of the slice
func (s *Slice[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Remove removes and returns the element at index.
// The slice is left untouched when index is out of range.
func (s *Slice[T]) Remove(index int) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if index < 0 || index >= len(s.data) {
		return zero, false
	}

	element := s.data[index]
	s.data = append(s.data[:index], s.data[index+1:]...)
	return element, true
}

// InsertFunc inserts the element returned by build at index, shifting later
// elements right. Valid indexes are 0 through Len() inclusive; build runs
// under the write lock and only once the index has been accepted.
func (s *Slice[T]) InsertFunc(index int, build func() T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if index < 0 || index > len(s.data) {
		return zero, false
	}

	element := build()
	s.data = append(s.data, zero)
	copy(s.data[index+1:], s.data[index:])
	s.data[index] = element
	return element, true
}

// Move takes the element at from out of the slice and re-inserts it so that
// it ends up at index to. Both indexes must address an existing element;
// to is interpreted against the slice after the element has been taken out.
func (s *Slice[T]) Move(from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.data)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	if from == to {
		return true
	}

	element := s.data[from]
	if from < to {
		copy(s.data[from:to], s.data[from+1:to+1])
	} else {
		copy(s.data[to+1:from+1], s.data[to:from])
	}
	s.data[to] = element
	return true
}

// Find returns the index of the first element that matches the predicate, or -1
func (s *Slice[T]) Find(predicate func(T) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, value := range s.data {
		if predicate(value) {
			return i
		}
	}
	return -1
}

// Clear removes all elements from the slice
func (s *Slice[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.data)
	s.data = s.data[:0]
}

// All returns a copy of the underlying slice
func (s *Slice[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, len(s.data))
	copy(result, s.data)
	return result
}
