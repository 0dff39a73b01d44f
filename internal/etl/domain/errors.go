package domain

import (
	"errors"
	"fmt"
)

// ErrConnectionUnavailable marks a store that never became reachable within
// the attempt ceiling. It aborts the whole run.
var ErrConnectionUnavailable = errors.New("connection unavailable")

// ConnectionUnavailableError names the target store and how long we tried.
type ConnectionUnavailableError struct {
	Target   string
	Attempts int
	Err      error
}

func (e *ConnectionUnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable after %d attempts: %v", e.Target, e.Attempts, e.Err)
}

func (e *ConnectionUnavailableError) Unwrap() error { return ErrConnectionUnavailable }

// ErrLoadFailed marks a batch transaction failure during the load phase.
var ErrLoadFailed = errors.New("load failed")

// LoadError identifies the entity kind and chunk index of a failed batch.
// Earlier committed chunks stay committed; the run is not resumable.
type LoadError struct {
	Kind  string
	Chunk int
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s chunk %d: %v", e.Kind, e.Chunk, e.Err)
}

func (e *LoadError) Unwrap() error { return ErrLoadFailed }
