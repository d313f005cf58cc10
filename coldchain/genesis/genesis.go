// Package genesis defines the configuration structure and validation logic
// for bringing up a cold-chain ledger instance. The genesis establishes the
// network rules, the governing authority, the initial native allocations
// and the recipient of the incentive token supply: everything the host
// must agree on before the first operation commits.
package genesis

import (
	"errors"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-coldchain-ledger/coldchain"
)

// Validation errors.
var (
	ErrNoAuthority       = errors.New("genesis: authority is the null principal")
	ErrNoSupplyRecipient = errors.New("genesis: supply recipient is the null principal")
)

// Genesis is the complete bring-up definition of a ledger instance.
type Genesis struct {
	// Rules carries the network parameters (see coldchain.Rules presets).
	Rules coldchain.Rules

	// Authority is bound on all three engines before any other call. It
	// governs fees, rules, alert resolution and slashing.
	Authority common.Address

	// SupplyRecipient receives the entire incentive token genesis supply.
	SupplyRecipient common.Address

	// NativeAlloc seeds the host's native balance book (the one that funds
	// mint and alert fees). Keys are principals, values native units.
	NativeAlloc map[common.Address]uint64

	// StartHeight is the block height of the first call.
	StartHeight idx.Block
}

// Validate checks the genesis for the mistakes that would brick the ledger:
// an unbindable authority or an unmintable supply recipient.
func (g Genesis) Validate() error {
	if g.Authority == (common.Address{}) {
		return ErrNoAuthority
	}
	if g.SupplyRecipient == (common.Address{}) {
		return ErrNoSupplyRecipient
	}
	return nil
}

// FakeGenesis returns a deterministic single-authority genesis on fakenet
// rules, for tests and local smoke runs. The authority doubles as the
// supply recipient and gets a native float large enough to pay fees.
func FakeGenesis(authority common.Address) Genesis {
	return Genesis{
		Rules:           coldchain.FakeNetRules(),
		Authority:       authority,
		SupplyRecipient: authority,
		NativeAlloc: map[common.Address]uint64{
			authority: 1000000000,
		},
		StartHeight: 1,
	}
}
