// Package eventlog records pagegen runs in a JSON lines build log.
// Each run appends one event per outcome (header written or failed,
// upload completed or failed) so CI jobs can audit which pages went
// into a firmware image.
package eventlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EventType represents the type of event.
type EventType string

// Header event types.
const (
	HeaderGenerated EventType = "header_generated"
	HeaderFailed    EventType = "header_failed"
)

// Upload event types.
const (
	UploadCompleted EventType = "upload_completed"
	UploadFailed    EventType = "upload_failed"
)

// Event represents a single log entry with type-specific details.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Type      EventType `json:"type"`
	Input     string    `json:"input,omitempty"`
	Message   string    `json:"msg,omitempty"`
	Details   any       `json:"details,omitempty"`
}

// HeaderDetails contains header-specific event details.
type HeaderDetails struct {
	OutputPath     string `json:"output_path,omitempty"`
	Symbol         string `json:"symbol,omitempty"`
	InputSize      int    `json:"input_size,omitempty"`
	CompressedSize int    `json:"compressed_size,omitempty"`
	Error          string `json:"error,omitempty"`
}

// UploadDetails contains upload-specific event details.
type UploadDetails struct {
	Bucket string `json:"bucket,omitempty"`
	Key    string `json:"s3_key,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Logger writes events to a JSON lines file.
type Logger struct {
	mu       sync.Mutex
	filePath string
	file     *os.File
	encoder  *json.Encoder
}

// NewLogger creates a new event logger at the specified path.
func NewLogger(filePath string) (*Logger, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{
		filePath: filePath,
		file:     file,
		encoder:  json.NewEncoder(file),
	}, nil
}

// Log writes an event to the log file.
func (l *Logger) Log(event *Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	return l.encoder.Encode(event)
}

// LogHeader logs a header event.
func (l *Logger) LogHeader(eventType EventType, input string, details *HeaderDetails) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      eventType,
		Input:     input,
		Details:   details,
	})
}

// LogUpload logs an upload event.
func (l *Logger) LogUpload(eventType EventType, input, bucket, key, errMsg string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      eventType,
		Input:     input,
		Details: &UploadDetails{
			Bucket: bucket,
			Key:    key,
			Error:  errMsg,
		},
	})
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Path returns the path to the log file.
func (l *Logger) Path() string {
	return l.filePath
}

// MaxReadLimit is the maximum number of events that can be read at once.
const MaxReadLimit = 500

// ReadLast returns up to n events from the log file, newest first.
// Malformed lines are skipped. A missing file yields no events.
func ReadLast(filePath string, n int) ([]Event, error) {
	if n > MaxReadLimit {
		n = MaxReadLimit
	}
	if n <= 0 {
		return []Event{}, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []Event{}, nil
		}
		return nil, err
	}
	defer file.Close() //nolint:errcheck // Read-only operation, close error not critical

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	events := make([]Event, 0, n)
	for i := len(lines) - 1; i >= 0 && len(events) < n; i-- {
		var event Event
		if err := json.Unmarshal([]byte(lines[i]), &event); err != nil {
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

// IsUploadEvent returns true if the event type is an upload event.
func IsUploadEvent(t EventType) bool {
	return t == UploadCompleted || t == UploadFailed
}
