package config

import "errors"

var (
	// ErrInvalidPort is returned when PORT is set but is not an integer
	ErrInvalidPort = errors.New("invalid port")

	// ErrPortOutOfRange is returned when the port cannot be bound by a TCP listener
	ErrPortOutOfRange = errors.New("port out of range")

	// ErrFailedToLoadEnvFile is returned when a dotenv file cannot be read
	ErrFailedToLoadEnvFile = errors.New("failed to load env file")
)
