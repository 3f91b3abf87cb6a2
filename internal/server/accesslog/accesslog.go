// Package accesslog writes the one-line-per-request log of the status endpoint.
//
// The line format is fixed:
//
//	[INFO] GET /  message=<message> release=<release>
//
// Emitters depend on the Sink interface so tests can capture lines directly.
package accesslog

import (
	"errors"
	"fmt"
)

// SeverityInfo is the only severity tag the access log emits.
const SeverityInfo = "INFO"

// ErrWrite is returned when a line cannot be written to the underlying writer
var ErrWrite = errors.New("failed to write access log line")

// Sink receives one Entry per handled request.
type Sink interface {
	Emit(Entry) error
}

// Entry is a single access log record.
type Entry struct {
	Route   string
	Message string
	Release string
}

// String formats the entry without a trailing newline. There are two spaces between
// the route and the first field.
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s  message=%s release=%s", SeverityInfo, e.Route, e.Message, e.Release)
}
