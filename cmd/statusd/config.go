package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/statusd/internal/fancy"
	"github.com/urfave/cli/v3"
)

var configCmd = &cli.Command{
	Name:  "config",
	Usage: "Resolve the configuration from the environment and print it",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := loadConfig(cmd.String(flagEnvFile))
		if err != nil {
			fmt.Fprintf(cmd.Root().ErrWriter, "%s %v\n", fancy.ErrorText("✗"), err)
			return cli.Exit("invalid configuration", 1)
		}

		fmt.Fprintf(cmd.Root().Writer, "%s configuration is valid\n\n", fancy.ValidText("✓"))
		fmt.Fprintln(cmd.Root().Writer, cfg)
		return nil
	},
}
