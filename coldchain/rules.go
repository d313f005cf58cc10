// Package coldchain defines the network rules and configuration parameters
// for a cold-chain ledger deployment.
//
// This package provides:
//   - Network identification constants (MainNet, TestNet, FakeNet)
//   - Registry rules (batch capacity, mint fee)
//   - Alert rules (alert capacity, alert fee)
//   - Incentive rules (stake capacity, genesis supply, reward rate, lock)
//
// The Rules type is the central configuration structure: every parameter a
// deployment must agree on lives here, and the per-network constructors
// (MainNetRules, TestNetRules, FakeNetRules) are the only sources of
// defaults.
package coldchain

import (
	"encoding/json"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"

	"github.com/rony4d/go-coldchain-ledger/deviation"
	"github.com/rony4d/go-coldchain-ledger/incentive"
	"github.com/rony4d/go-coldchain-ledger/registry"
)

// Network identification constants.
const (
	// MainNetworkID is the chain ID for the production cold-chain ledger.
	MainNetworkID uint64 = 0xcc

	// TestNetworkID is the chain ID for the public test deployment.
	TestNetworkID uint64 = 0xcc2

	// FakeNetworkID is the chain ID for local/fake networks used in testing.
	FakeNetworkID uint64 = 0xcc3
)

// Default economic parameters shared by the main and test networks. They
// match the genesis constants of the on-chain contract deployment.
const (
	DefaultMaxBatches uint64 = 100000
	DefaultMintFee    uint64 = 1000

	DefaultMaxAlerts uint64 = 10000
	DefaultAlertFee  uint64 = 500

	DefaultMaxStakes   uint64 = 50000
	DefaultTotalSupply uint64 = 100000000000000
	DefaultRewardRate  uint64 = 100 // basis points

	// DefaultLockPeriod is roughly two weeks of 10-minute blocks.
	DefaultLockPeriod idx.Block = 20160
)

// Rules describes the complete configuration of a cold-chain ledger
// network: identification plus the three engines' parameters.
type Rules struct {
	Name      string // network name identifier (e.g. "main", "test", "fake")
	NetworkID uint64

	Registry   registry.Config
	Alerts     deviation.Config
	Incentives incentive.Config
}

// MainNetRules returns the production network configuration.
func MainNetRules() Rules {
	return Rules{
		Name:       "main",
		NetworkID:  MainNetworkID,
		Registry:   DefaultRegistryConfig(),
		Alerts:     DefaultAlertConfig(),
		Incentives: DefaultIncentiveConfig(),
	}
}

// TestNetRules returns the testnet configuration. Testnet uses the same
// parameters as mainnet for realistic testing.
func TestNetRules() Rules {
	return Rules{
		Name:       "test",
		NetworkID:  TestNetworkID,
		Registry:   DefaultRegistryConfig(),
		Alerts:     DefaultAlertConfig(),
		Incentives: DefaultIncentiveConfig(),
	}
}

// FakeNetRules returns the configuration for fake/local networks. Fakenet
// shrinks capacities and the lock period so tests can hit capacity and
// unlock boundaries quickly.
func FakeNetRules() Rules {
	r := Rules{
		Name:       "fake",
		NetworkID:  FakeNetworkID,
		Registry:   DefaultRegistryConfig(),
		Alerts:     DefaultAlertConfig(),
		Incentives: DefaultIncentiveConfig(),
	}
	r.Registry.MaxBatches = 1000
	r.Alerts.MaxAlerts = 1000
	r.Incentives.MaxStakes = 1000
	r.Incentives.LockPeriod = 10
	return r
}

// DefaultRegistryConfig returns the mainnet batch registry parameters.
func DefaultRegistryConfig() registry.Config {
	return registry.Config{
		MaxBatches: DefaultMaxBatches,
		MintFee:    DefaultMintFee,
	}
}

// DefaultAlertConfig returns the mainnet deviation alert parameters.
func DefaultAlertConfig() deviation.Config {
	return deviation.Config{
		MaxAlerts: DefaultMaxAlerts,
		AlertFee:  DefaultAlertFee,
	}
}

// DefaultIncentiveConfig returns the mainnet incentive accounting
// parameters.
func DefaultIncentiveConfig() incentive.Config {
	return incentive.Config{
		MaxStakes:   DefaultMaxStakes,
		TotalSupply: DefaultTotalSupply,
		RewardRate:  DefaultRewardRate,
		LockPeriod:  DefaultLockPeriod,
	}
}

// Copy returns a deep copy of the rules. Rules currently holds no pointer
// fields, so the value copy is already deep; the method exists so callers
// never have to know that.
func (r Rules) Copy() Rules {
	return r
}

// String returns a JSON representation of the rules for logging and config
// dumps.
func (r Rules) String() string {
	b, _ := json.Marshal(&r)
	return string(b)
}
