package queue

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is the only failure the queue reports.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError describes which operation rejected which index.
// It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("queue %s: index %d with length %d: %v", e.Op, e.Index, e.Len, ErrIndexOutOfRange)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
