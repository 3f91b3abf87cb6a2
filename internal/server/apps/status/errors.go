package status

import "errors"

// ErrNilSink is returned when the app is created without an access log sink
var ErrNilSink = errors.New("access log sink is required")
