package config

import (
	"fmt"

	"github.com/atlanticdynamic/statusd/internal/fancy"
)

// String returns a pretty-printed tree representation of the config
func (c Config) String() string {
	return ConfigTree(c)
}

// ConfigTree renders the resolved configuration, noting the environment variable each
// value is read from.
func ConfigTree(cfg Config) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render("Status Service Config"))

	listener := fancy.BranchNode("Listener", "")
	listener.Child(fmt.Sprintf("Address: %s", fancy.ListenerText(cfg.Address())))
	listener.Child(fmt.Sprintf("Port: %d %s", cfg.Port, fancy.PathText(EnvPort)))
	t.Child(listener)

	payload := fancy.BranchNode("Payload", "")
	payload.Child(fmt.Sprintf("Message: %s %s", cfg.Message, fancy.PathText(EnvMessage)))
	payload.Child(fmt.Sprintf("Release: %s %s", cfg.Release, fancy.PathText(EnvRelease)))
	t.Child(payload)

	return t.String()
}
