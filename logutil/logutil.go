// Package logutil writes one JSON object per log line.
package logutil

import (
	"encoding/json"
	"log"
	"time"
)

// Fields holds structured key/value pairs attached to a log line.
// Callers keep ownership; the logger never writes to it.
type Fields map[string]interface{}

// reserved keys are set by the logger and win over caller fields
const (
	keyLevel     = "level"
	keyMessage   = "message"
	keyTimestamp = "timestamp"
	keyError     = "error"
)

// Info logs a structured info message.
func Info(msg string, fields Fields) {
	write(newEntry("info", msg, fields))
}

// Warn logs a structured warning.
func Warn(msg string, fields Fields) {
	write(newEntry("warn", msg, fields))
}

// Error logs a structured error message including the error string.
func Error(msg string, err error, fields Fields) {
	entry := newEntry("error", msg, fields)
	if err != nil {
		entry[keyError] = err.Error()
	}
	write(entry)
}

// newEntry copies fields into a fresh map under the reserved keys.
func newEntry(level, msg string, fields Fields) Fields {
	entry := make(Fields, len(fields)+3)
	for k, v := range fields {
		entry[k] = v
	}
	entry[keyLevel] = level
	entry[keyMessage] = msg
	entry[keyTimestamp] = time.Now().UTC().Format(time.RFC3339Nano)
	return entry
}

func write(entry Fields) {
	payload, err := json.Marshal(entry)
	if err != nil {
		// unencodable field values; fall back to Go formatting
		log.Printf("%s %s: %+v", entry[keyLevel], entry[keyMessage], entry)
		return
	}
	log.Printf("%s", payload)
}
