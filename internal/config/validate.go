package config

import (
	"errors"
	"fmt"
)

const (
	minPort = 1
	maxPort = 65535
)

// Validate checks that the configuration can be served.
func (c Config) Validate() error {
	var errz []error

	if c.Port < minPort || c.Port > maxPort {
		errz = append(errz, fmt.Errorf("%w: %d (must be %d-%d)", ErrPortOutOfRange, c.Port, minPort, maxPort))
	}

	return errors.Join(errz...)
}
