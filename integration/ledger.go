// Package integration assembles the three cold-chain engines into a runnable
// ledger instance. It owns the pieces the deterministic cores delegate to
// the environment: the native balance book that funds mint and alert fees,
// genesis application (authority binding, initial supply mint), and
// structured logging of the bring-up.
//
// Usage:
//
//	lgr, err := integration.NewLedger(genesis.FakeGenesis(authority), log)
//	id, err := lgr.Registry.MintBatch(ctx, meta)
//
// The engines stay I/O-free; all logging happens here and in the launcher.
package integration

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-coldchain-ledger/coldchain/genesis"
	"github.com/rony4d/go-coldchain-ledger/deviation"
	"github.com/rony4d/go-coldchain-ledger/incentive"
	"github.com/rony4d/go-coldchain-ledger/inter"
	"github.com/rony4d/go-coldchain-ledger/registry"
)

// ErrInsufficientFunds is returned by the native balance book when a fee
// transfer cannot be covered. The engines surface it verbatim, before any
// state mutation.
var ErrInsufficientFunds = errors.New("integration: insufficient native funds")

// Ledger is a fully wired ledger instance: the three engines plus the
// native balance book they draw fees from.
type Ledger struct {
	Registry   *registry.Registry
	Alerts     *deviation.Engine
	Incentives *incentive.Engine

	native map[common.Address]uint64
	log    *logrus.Logger
}

// NewLedger builds a ledger from a genesis: seeds the native balance book,
// constructs the engines against it, binds the authority on all three, and
// mints the incentive genesis supply to the configured recipient.
func NewLedger(g genesis.Genesis, log *logrus.Logger) (*Ledger, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.New()
	}

	l := &Ledger{
		native: make(map[common.Address]uint64, len(g.NativeAlloc)),
		log:    log,
	}
	for addr, amount := range g.NativeAlloc {
		l.native[addr] = amount
	}

	l.Registry = registry.New(g.Rules.Registry, l.ExecuteTransfer)
	l.Alerts = deviation.New(g.Rules.Alerts, l.ExecuteTransfer)
	l.Incentives = incentive.New(g.Rules.Incentives)

	if err := l.Registry.BindAuthority(g.Authority); err != nil {
		return nil, err
	}
	if err := l.Alerts.BindAuthority(g.Authority); err != nil {
		return nil, err
	}
	if err := l.Incentives.BindAuthority(g.Authority); err != nil {
		return nil, err
	}

	bootCtx := inter.Ctx{Caller: g.Authority, Height: g.StartHeight}
	if err := l.Incentives.MintInitialSupply(bootCtx, g.SupplyRecipient); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"network":   g.Rules.Name,
		"networkID": g.Rules.NetworkID,
		"authority": g.Authority.Hex(),
		"supply":    g.Rules.Incentives.TotalSupply,
		"height":    g.StartHeight,
	}).Info("cold-chain ledger initialized")

	return l, nil
}

// ExecuteTransfer is the inter.TransferFn the engines emit fee instructions
// to. It moves native units between accounts and fails (without partial
// effect) when the sender cannot cover the amount.
func (l *Ledger) ExecuteTransfer(t inter.Transfer) error {
	if l.native[t.From] < t.Amount {
		return ErrInsufficientFunds
	}
	l.native[t.From] -= t.Amount
	l.native[t.To] += t.Amount
	l.log.WithFields(logrus.Fields{
		"amount": t.Amount,
		"from":   t.From.Hex(),
		"to":     t.To.Hex(),
	}).Debug("native transfer executed")
	return nil
}

// NativeBalance returns the native balance of an account.
func (l *Ledger) NativeBalance(p common.Address) uint64 {
	return l.native[p]
}

// SeedNative credits a native balance, for tests and fakenet runs.
func (l *Ledger) SeedNative(p common.Address, amount uint64) {
	l.native[p] += amount
}
