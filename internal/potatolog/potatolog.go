// Package potatolog holds log entries in memory, so that a full-screen UI can
// show them instead of having them garble the screen.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = MemoryLogReaderWriter{}

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It expects to be written JSON log entries, as zerolog writes them.
type MemoryLogReaderWriter struct {
	mtx sync.Mutex
	log []LogEntry
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	return len(p), nil
}

// Get returns the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// LatestAtLeast returns the most recent entry with one of the given levels,
// or nil.
func (w *MemoryLogReaderWriter) LatestAtLeast(levels ...string) LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	for i := len(w.log) - 1; i >= 0; i-- {
		level, _ := w.log[i]["level"].(string)
		for _, l := range levels {
			if level == l {
				return w.log[i]
			}
		}
	}
	return nil
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
	LatestAtLeast(levels ...string) LogEntry
}
