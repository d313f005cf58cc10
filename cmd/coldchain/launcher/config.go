// This file maps CLI context to the launcher config struct.

package launcher

import (
	"github.com/ethereum/go-ethereum/common"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-coldchain-ledger/coldchain"
)

// Config aggregates everything the launcher needs to bring a node up.
type Config struct {
	Node      NodeConfig
	Rules     coldchain.Rules
	Authority common.Address
}

// NodeConfig captures top-level node settings.
type NodeConfig struct {
	DataDir string
	Logging LoggingConfig
}

// LoggingConfig selects the logrus output format and level, plus the
// optional Sentry hook.
type LoggingConfig struct {
	Verbosity int
	Format    string
	Color     bool
	SentryDSN string
}

// MakeAllConfigs merges the network preset defaults with CLI flag
// overrides.
func MakeAllConfigs(c *cli.Context) Config {
	var rules coldchain.Rules
	switch c.GlobalString("network") {
	case "test":
		rules = coldchain.TestNetRules()
	case "fake":
		rules = coldchain.FakeNetRules()
	default:
		rules = coldchain.MainNetRules()
	}
	if c.GlobalIsSet("fees.mint") {
		rules.Registry.MintFee = c.GlobalUint64("fees.mint")
	}
	if c.GlobalIsSet("fees.alert") {
		rules.Alerts.AlertFee = c.GlobalUint64("fees.alert")
	}

	return Config{
		Node: NodeConfig{
			DataDir: c.GlobalString("datadir"),
			Logging: LoggingConfig{
				Verbosity: c.GlobalInt("log.verbosity"),
				Format:    c.GlobalString("log.format"),
				Color:     c.GlobalBool("log.color"),
				SentryDSN: c.GlobalString("sentry.dsn"),
			},
		},
		Rules:     rules,
		Authority: common.HexToAddress(c.GlobalString("authority")),
	}
}
