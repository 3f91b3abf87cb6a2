package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// Version is set during build using ldflags
var Version = "dev"

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "statusd",
		Version: Version,
		Usage:   "Loopback HTTP status service configured from the environment",
		Description: "Serves GET / on 127.0.0.1:$PORT with the configured MESSAGE and RELEASE.\n" +
			"PORT defaults to 8080, MESSAGE to \"Hola\" and RELEASE to \"v0\".",
		Flags:  globalFlags(),
		Action: serveAction,
		Commands: []*cli.Command{
			versionCmd,
			configCmd,
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
