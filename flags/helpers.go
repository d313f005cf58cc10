package flags

import (
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

// NewApp creates the base CLI application for the cold-chain ledger node.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "coldchain"
	app.Usage = "Cold-chain custody ledger node"
	app.Version = "0.1.0"
	app.Writer = os.Stdout
	return app
}
