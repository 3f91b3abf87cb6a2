package main

import (
	"github.com/urfave/cli/v3"
)

const (
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagEnvFile   = "env-file"
	flagAccessLog = "access-log"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "Operational log level (trace, debug, info, warn, error)",
			Value:   "info",
			Sources: cli.EnvVars("LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    flagLogFormat,
			Usage:   "Operational log format (text, json)",
			Value:   "text",
			Sources: cli.EnvVars("LOG_FORMAT"),
		},
		&cli.StringFlag{
			Name:    flagEnvFile,
			Usage:   "Dotenv file providing PORT, MESSAGE and RELEASE; existing variables take precedence",
			Sources: cli.EnvVars("ENV_FILE"),
		},
		&cli.StringFlag{
			Name:    flagAccessLog,
			Usage:   "Destination of the request log lines (stdout, stderr, or a file path)",
			Value:   "stdout",
			Sources: cli.EnvVars("ACCESS_LOG"),
		},
	}
}
