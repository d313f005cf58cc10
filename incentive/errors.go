package incentive

import (
	"github.com/rony4d/go-coldchain-ledger/inter"
)

// The incentive engine error table, matching the on-chain contract's
// numeric taxonomy. Codes 107 and 108 are allocated in the contract's
// unused range for failures the contract reports as a bare boolean false.
var (
	ErrNotAuthorized        = &inter.Error{Code: 100, Msg: "incentive: not authorized"}
	ErrInvalidBatchID       = &inter.Error{Code: 101, Msg: "incentive: invalid batch id"}
	ErrInsufficientBalance  = &inter.Error{Code: 103, Msg: "incentive: insufficient balance"}
	ErrInvalidAmount        = &inter.Error{Code: 104, Msg: "incentive: amount must be positive"}
	ErrStakeLocked          = &inter.Error{Code: 105, Msg: "incentive: stake still locked"}
	ErrInvalidPenalty       = &inter.Error{Code: 106, Msg: "incentive: penalty rate above 10000 bps"}
	ErrStakeNotFound        = &inter.Error{Code: 107, Msg: "incentive: stake not found"}
	ErrSupplyAlreadyMinted  = &inter.Error{Code: 108, Msg: "incentive: initial supply already minted"}
	ErrMaxStakesExceeded    = &inter.Error{Code: 113, Msg: "incentive: max stakes exceeded"}
	ErrInvalidRole          = &inter.Error{Code: 114, Msg: "incentive: invalid role"}
	ErrRewardAlreadyClaimed = &inter.Error{Code: 115, Msg: "incentive: stake already claimed"}
	ErrInsufficientRewards  = &inter.Error{Code: 118, Msg: "incentive: authority balance cannot fund payout"}
)
