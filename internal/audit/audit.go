// Package audit provides a JSONL event stream for recording what a
// synchronization run did to a vocabulary: which run started where, every
// row it appended, and the closing counts. The log is append-only, so
// successive runs accumulate a reviewable history.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Event kinds identify the type of audit event.
const (
	KindRunStart = "run_start"
	KindAdded    = "added"
	KindRunDone  = "run_done"
	KindRunError = "run_error"
)

// Event represents a single audit record. Each event carries a timestamp,
// a kind tag, the identifier of the run that produced it, and arbitrary
// structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	RunID     string    `json:"run"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes audit events to a JSONL file. It is safe for concurrent
// use by multiple goroutines. A nil *Emitter is a valid no-op emitter, so
// callers never guard their Emit calls.
type Emitter struct {
	file  *os.File
	enc   *json.Encoder
	runID string
	mu    sync.Mutex
}

// NewEmitter creates an Emitter that appends JSONL events to the file at
// path, tagging every event with runID. The file is created if it does not
// exist.
func NewEmitter(path, runID string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("audit: open %s: %w", path, err)
	}
	return &Emitter{
		file:  f,
		enc:   json.NewEncoder(f),
		runID: runID,
	}, nil
}

// Emit writes a single event stamped with the current time and the run
// identifier. Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(kind string, data any) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	evt := Event{
		Timestamp: time.Now().UTC(),
		Kind:      kind,
		RunID:     e.runID,
		Data:      data,
	}
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("audit: encode event: %w", err)
	}
	return nil
}

// RunID reports the identifier every event from this emitter carries.
// A nil Emitter reports an empty identifier.
func (e *Emitter) RunID() string {
	if e == nil {
		return ""
	}
	return e.runID
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("audit: close: %w", err)
	}
	return nil
}
