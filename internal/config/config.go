// Package config resolves the service configuration from the process environment.
//
// A Config is built once at startup and passed by value to whatever needs it; nothing in
// this package re-reads the environment after FromEnv returns.
package config

import (
	"net"
	"strconv"
)

// Environment variable names
const (
	EnvPort    = "PORT"
	EnvMessage = "MESSAGE"
	EnvRelease = "RELEASE"
)

// Defaults used when the corresponding environment variable is unset or empty
const (
	DefaultPort    = 8080
	DefaultMessage = "Hola"
	DefaultRelease = "v0"
)

// LoopbackHost is the only address the service binds to.
const LoopbackHost = "127.0.0.1"

// Config is the immutable set of values resolved at process startup.
type Config struct {
	Port    int
	Message string
	Release string
}

// NewConfig returns a Config populated with the default values.
func NewConfig() Config {
	return Config{
		Port:    DefaultPort,
		Message: DefaultMessage,
		Release: DefaultRelease,
	}
}

// Address returns the loopback host:port pair the listener binds to.
func (c Config) Address() string {
	return net.JoinHostPort(LoopbackHost, strconv.Itoa(c.Port))
}
