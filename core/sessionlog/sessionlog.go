// Package sessionlog records every dispatched command as a line of
// JSON so a session can be audited or replayed later.
package sessionlog

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Entry describes one dispatched command.
type Entry struct {
	Time    time.Time `json:"time"`
	User    string    `json:"user"`
	Dir     string    `json:"dir"`
	Argv    []string  `json:"argv"`
	Builtin bool      `json:"builtin"`
}

// Recorder appends entries to a writer as newline-delimited JSON. A
// nil *Recorder is valid and records nothing.
type Recorder struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func New(w io.Writer) *Recorder {
	return &Recorder{enc: json.NewEncoder(w)}
}

// Record writes one entry, stamping the time if unset.
func (r *Recorder) Record(e Entry) error {
	if r == nil {
		return nil
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enc.Encode(e)
}

// Read parses a newline-delimited JSON log, calling handler for each
// entry.
func Read(r io.Reader, handler func(e Entry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var e Entry
		if err := decoder.Decode(&e); err != nil {
			return err
		}
		handler(e)
	}
	return nil
}
