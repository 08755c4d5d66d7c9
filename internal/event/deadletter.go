package event

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/quinfall/companion/internal/logger"
)

// DeadLetterSchemaVersion is written with every entry. Bump it when
// DeadLetterEntry changes shape.
const DeadLetterSchemaVersion = "1.0"

const deadLetterFileMode = 0644

// DeadLetterEntry is one undeliverable event as appended to the
// dead-letter log, one JSON object per line.
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends undeliverable events to a JSONL file. The
// file is created on the first write, so a healthy session leaves no
// empty log behind.
type DeadLetterWriter struct {
	path string
	mu   sync.Mutex
	file *os.File
}

// NewDeadLetterWriter prepares a writer for path. The parent directory
// must already exist; the file itself is created lazily.
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("dead-letter directory: %w", err)
	}
	return &DeadLetterWriter{path: path}, nil
}

// Write appends one entry for an event that could not be delivered.
func (dlw *DeadLetterWriter) Write(event Event, attempts int, lastError error) error {
	dlw.mu.Lock()
	defer dlw.mu.Unlock()

	if dlw.file == nil {
		f, err := os.OpenFile(dlw.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, deadLetterFileMode)
		if err != nil {
			return fmt.Errorf("open dead-letter log: %w", err)
		}
		dlw.file = f
	}

	errMsg := ""
	if lastError != nil {
		errMsg = lastError.Error()
	}

	logger.Warn(LogMsgEventDeadLettered,
		"event_type", event.Type,
		"player_id", event.PlayerID,
		"attempts", attempts,
		"error", errMsg)

	data, err := json.Marshal(DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now(),
		Event:         event,
		Attempts:      attempts,
		LastError:     errMsg,
	})
	if err != nil {
		return fmt.Errorf("marshal dead-letter entry: %w", err)
	}

	_, err = dlw.file.Write(append(data, '\n'))
	return err
}

// Close closes the log if it was ever opened.
func (dlw *DeadLetterWriter) Close() error {
	dlw.mu.Lock()
	defer dlw.mu.Unlock()

	if dlw.file == nil {
		return nil
	}
	err := dlw.file.Close()
	dlw.file = nil
	return err
}
