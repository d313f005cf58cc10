// Package inter defines the core primitives shared by the cold-chain ledger
// engines: the per-call environment context, the native value-transfer
// instruction, and the one-shot authority binding that gates privileged
// operations.
//
// The engines (registry, deviation, incentive) never talk to each other and
// never perform I/O. The surrounding execution environment serializes calls,
// supplies the caller identity and block-height clock through Ctx, and
// executes the Transfer instructions the engines emit. State changes commit
// only when an operation returns success.
package inter

import (
	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
)

// Ctx carries the environment-supplied facts an operation may not invent for
// itself: who is calling and what the current block height is. Every
// operation of every engine takes a Ctx as its first argument.
type Ctx struct {
	// Caller is the principal the environment authenticated for this call.
	// Signature verification happened outside the core; the engines trust
	// this value as-is.
	Caller common.Address

	// Height is the monotonically increasing block-height clock. All
	// temporal comparisons (date validation, stake lock gating, alert
	// timestamps) use this value, never wall-clock time.
	Height idx.Block
}

// Transfer is a native value-transfer instruction emitted by a
// side-effecting operation. The host ledger executes it atomically with the
// operation's state mutation; if it cannot be satisfied, the whole call
// fails and no state changes.
type Transfer struct {
	Amount uint64
	From   common.Address
	To     common.Address
}

// TransferFn executes a Transfer on behalf of an engine. A non-nil error
// aborts the calling operation before it mutates any state.
//
// Engines invoke the function after all validation checks and before the
// first mutation, so a failed transfer never leaves partial state behind.
type TransferFn func(Transfer) error

// NopTransfer accepts every transfer without moving anything. Useful for
// tests and for deployments where fees are accounted for elsewhere.
func NopTransfer(Transfer) error {
	return nil
}
