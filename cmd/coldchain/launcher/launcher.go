package launcher

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-coldchain-ledger/coldchain"
	"github.com/rony4d/go-coldchain-ledger/coldchain/genesis"
	"github.com/rony4d/go-coldchain-ledger/deviation"
	"github.com/rony4d/go-coldchain-ledger/flags"
	"github.com/rony4d/go-coldchain-ledger/incentive"
	"github.com/rony4d/go-coldchain-ledger/integration"
	"github.com/rony4d/go-coldchain-ledger/inter"
	"github.com/rony4d/go-coldchain-ledger/registry"
)

var app = flags.NewApp()

func init() {
	app.Flags = append(flags.CommonFlags(), flags.NetworkFlags()...)
	app.Action = run
}

// Launch parses the CLI arguments and brings a ledger instance up.
func Launch(args []string) error {
	return app.Run(args)
}

func run(c *cli.Context) error {
	cfg := MakeAllConfigs(c)
	log := makeLogger(cfg.Node.Logging)

	g := makeGenesis(cfg)
	if err := g.Validate(); err != nil {
		return err
	}

	ledger, err := integration.NewLedger(g, log)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"network":   cfg.Rules.Name,
		"networkID": fmt.Sprintf("%#x", cfg.Rules.NetworkID),
		"authority": g.Authority.Hex(),
	}).Info("ledger is up")

	if cfg.Rules.NetworkID == coldchain.FakeNetworkID {
		return smokeRun(ledger, g, log)
	}

	// Main and test networks expect the host chain to drive the engines;
	// there is nothing to run standalone.
	log.Info("no transaction source configured, exiting")
	return nil
}

func makeGenesis(cfg Config) genesis.Genesis {
	if cfg.Rules.NetworkID == coldchain.FakeNetworkID {
		authority := cfg.Authority
		if authority == (common.Address{}) {
			authority = common.HexToAddress("0x00000000000000000000000000000000000000cc")
		}
		g := genesis.FakeGenesis(authority)
		g.Rules = cfg.Rules
		return g
	}
	return genesis.Genesis{
		Rules:           cfg.Rules,
		Authority:       cfg.Authority,
		SupplyRecipient: cfg.Authority,
		StartHeight:     1,
	}
}

func makeLogger(cfg LoggingConfig) *logrus.Logger {
	log := logrus.New()

	switch cfg.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			ForceColors:   cfg.Color,
			DisableColors: !cfg.Color,
			FullTimestamp: true,
		})
	}

	// Verbosity follows the usual 0=panic .. 5=trace ladder.
	level := logrus.Level(cfg.Verbosity)
	if level > logrus.TraceLevel {
		level = logrus.TraceLevel
	}
	log.SetLevel(level)

	if cfg.SentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.SentryDSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			log.WithError(err).Warn("failed to attach sentry hook")
		} else {
			log.AddHook(hook)
		}
	}
	return log
}

// smokeRun walks a full batch lifecycle against a fresh fakenet ledger:
// mint, monitoring rules, a deviation alert, a stake, resolution with
// penalty and the slash. It exists so `coldchain --network fake` proves the
// wiring end to end.
func smokeRun(l *integration.Ledger, g genesis.Genesis, log *logrus.Logger) error {
	authority := g.Authority
	manufacturer := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	l.SeedNative(manufacturer, 100000)

	height := g.StartHeight + 100
	ctx := func(caller common.Address) inter.Ctx {
		return inter.Ctx{Caller: caller, Height: height}
	}

	// Deviation rules key on batch identifiers starting at 1, so burn the
	// zero identifier with a throwaway mint first.
	meta := registry.Metadata{
		VaccineType:    "mRNA-1273",
		DoseCount:      1000,
		ProductionDate: g.StartHeight,
		ExpirationDate: height + 100000,
		Manufacturer:   "BioGenix Labs",
		StorageMin:     2,
		StorageMax:     8,
		TransportMode:  registry.ModeAir,
		Origin:         "Basel",
		Destination:    "Lagos",
	}
	if _, err := l.Registry.MintBatch(ctx(manufacturer), meta); err != nil {
		return err
	}
	batchID, err := l.Registry.MintBatch(ctx(manufacturer), meta)
	if err != nil {
		return err
	}
	log.WithField("batch", batchID).Info("batch minted")

	if err := l.Alerts.SetBatchRules(ctx(authority), batchID, meta.StorageMin, meta.StorageMax, 3, 24); err != nil {
		return err
	}

	// The genesis supply sits with the authority, so it is the only
	// principal able to stake on a fresh ledger.
	stakeID, err := l.Incentives.StakeTokens(ctx(authority), batchID, 500000, incentive.RoleManufacturer)
	if err != nil {
		return err
	}
	log.WithField("stake", stakeID).Info("stake placed")

	height += 10
	alertID, err := l.Alerts.TriggerAlert(ctx(authority), batchID, 12, "sensor-7", "Lagos customs", 2, deviation.AlertHigh)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"alert":      alertID,
		"deviations": l.Alerts.DeviationCount(batchID),
	}).Warn("temperature deviation recorded")

	if err := l.Registry.FlagCompromised(ctx(authority), batchID); err != nil {
		return err
	}
	if err := l.Alerts.ResolveAlert(ctx(authority), alertID, true); err != nil {
		return err
	}

	height += 10
	penalty, err := l.Incentives.SlashStake(ctx(authority), stakeID, 2000)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"stake":   stakeID,
		"penalty": penalty,
	}).Info("stake slashed")

	log.WithFields(logrus.Fields{
		"batches": l.Registry.BatchCount(),
		"alerts":  l.Alerts.AlertCount(),
		"stakes":  l.Incentives.StakeCount(),
	}).Info("smoke run complete")
	return nil
}
