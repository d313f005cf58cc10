// Package incentive implements the Incentive Accounting engine: a fungible
// balance ledger with a fixed genesis supply, per-batch/per-role collateral
// stakes, and the reward/penalty arithmetic applied to them.
//
// Key concepts:
//   - Balances: a single fungible unit; supply is fixed at genesis and only
//     ever moves between accounts (sum(balances) + unminted supply is
//     constant across every operation)
//   - Stake: a pledge, not an escrow-with-refund: the principal moves to the
//     authority at stake time, and only a slash's remainder path ever sends
//     any of it back
//   - Rates: basis points (1/10000), floor arithmetic, never rounded up
package incentive

import (
	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-coldchain-ledger/inter"
)

// StakeID is a sequential stake identifier, unique and never reused.
type StakeID uint64

// BatchID is re-exported from inter.
type BatchID = inter.BatchID

// RateDenominator is the basis-point scale used by reward and penalty
// arithmetic.
const RateDenominator = 10000

// Role identifies the stakeholder class a stake is pledged under. Closed
// enum.
type Role uint8

const (
	RoleManufacturer Role = iota
	RoleDistributor
	RoleProvider
)

// Valid reports whether r is one of the three defined roles.
func (r Role) Valid() bool {
	return r <= RoleProvider
}

func (r Role) String() string {
	switch r {
	case RoleManufacturer:
		return "manufacturer"
	case RoleDistributor:
		return "distributor"
	case RoleProvider:
		return "provider"
	}
	return "unknown"
}

// RoleFromString parses the canonical string form of a role.
func RoleFromString(s string) (Role, bool) {
	switch s {
	case "manufacturer":
		return RoleManufacturer, true
	case "distributor":
		return RoleDistributor, true
	case "provider":
		return RoleProvider, true
	}
	return 0, false
}

// Stake is a collateral pledge against a batch. Claimed is one-way: both
// ClaimReward and SlashStake retire the stake by setting it, and a retired
// stake can never be claimed or slashed again.
type Stake struct {
	BatchID     BatchID
	Amount      uint64
	Staker      common.Address
	StartHeight idx.Block
	Claimed     bool
	Role        Role
}
