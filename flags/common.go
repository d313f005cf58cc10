package flags

import (
	cli "gopkg.in/urfave/cli.v1"
)

// CommonFlags returns the base set of CLI flags shared across commands.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "datadir",
			Usage: "Data directory for the cold-chain ledger node",
			Value: "~/.coldchain",
		},
		cli.StringFlag{
			Name:  "log.format",
			Usage: "Log output format (text|json)",
			Value: "text",
		},
		cli.IntFlag{
			Name:  "log.verbosity",
			Usage: "Logging verbosity (0=panic,1=fatal,2=error,3=warn,4=info,5=debug)",
			Value: 4,
		},
		cli.BoolFlag{
			Name:  "log.color",
			Usage: "Enable colored log output",
		},
		cli.StringFlag{
			Name:  "sentry.dsn",
			Usage: "Sentry DSN for error reporting (empty disables the hook)",
		},
	}
}

// NetworkFlags returns the flags selecting the network and its economic
// parameter overrides.
func NetworkFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "network",
			Usage: "Network preset to run (main|test|fake)",
			Value: "main",
		},
		cli.StringFlag{
			Name:  "authority",
			Usage: "Hex address of the governing authority principal",
		},
		cli.Uint64Flag{
			Name:  "fees.mint",
			Usage: "Override the batch mint fee (native units)",
		},
		cli.Uint64Flag{
			Name:  "fees.alert",
			Usage: "Override the deviation alert fee (native units)",
		},
	}
}
