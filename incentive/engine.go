package incentive

import (
	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-coldchain-ledger/inter"
)

// Config holds the engine parameters fixed at construction. The reward rate
// is only the initial value; the bound authority may change it at runtime
// via SetRewardRate.
type Config struct {
	// MaxStakes caps the sequential stake id space.
	MaxStakes uint64

	// TotalSupply is the genesis supply of the fungible unit. It is minted
	// to a recipient exactly once via MintInitialSupply and conserved
	// forever after.
	TotalSupply uint64

	// RewardRate is the claim reward in basis points of the staked amount.
	RewardRate uint64

	// LockPeriod is the number of blocks a stake stays locked after its
	// start height before ClaimReward is allowed.
	LockPeriod idx.Block
}

// Engine is the Incentive Accounting engine. It owns the balance ledger,
// the stake records, the per-batch stake index and the per-role running
// totals.
//
// Not safe for concurrent use; calls are serialized by the environment.
// Every operation validates completely before its first mutation, so the
// conservation invariant (sum of balances + unminted supply is constant)
// holds at every commit point.
type Engine struct {
	cfg       Config
	authority inter.Binding

	rewardRate uint64
	supply     uint64 // unminted genesis supply; zero serves as the used-marker
	nextID     StakeID

	balances      map[common.Address]uint64
	stakes        map[StakeID]Stake
	stakesByBatch map[BatchID][]StakeID
	stakedByRole  map[Role]uint64
}

// New creates an empty engine holding the whole unminted genesis supply.
func New(cfg Config) *Engine {
	return &Engine{
		cfg:           cfg,
		rewardRate:    cfg.RewardRate,
		supply:        cfg.TotalSupply,
		balances:      make(map[common.Address]uint64),
		stakes:        make(map[StakeID]Stake),
		stakesByBatch: make(map[BatchID][]StakeID),
		stakedByRole:  make(map[Role]uint64),
	}
}

// BindAuthority sets the engine's authority exactly once.
func (e *Engine) BindAuthority(p common.Address) error {
	return e.authority.Bind(p)
}

// Authority returns the bound authority and whether one is set.
func (e *Engine) Authority() (common.Address, bool) {
	return e.authority.Get()
}

// MintInitialSupply moves the entire genesis supply to recipient. Authority
// only, one-shot: the unminted supply dropping to zero is the used-marker,
// so a second call fails.
func (e *Engine) MintInitialSupply(ctx inter.Ctx, recipient common.Address) error {
	if !e.authority.Is(ctx.Caller) {
		return ErrNotAuthorized
	}
	if e.supply != e.cfg.TotalSupply || e.supply == 0 {
		return ErrSupplyAlreadyMinted
	}
	e.balances[recipient] += e.supply
	e.supply = 0
	return nil
}

// StakeTokens pledges amount against a batch under a role. The principal
// moves from the caller to the authority immediately; it comes back only
// through a slash's remainder path (a clean claim pays the reward on top
// and keeps the principal with the authority).
func (e *Engine) StakeTokens(ctx inter.Ctx, batchID BatchID, amount uint64, role Role) (StakeID, error) {
	if uint64(e.nextID) >= e.cfg.MaxStakes {
		return 0, ErrMaxStakesExceeded
	}
	if batchID == 0 {
		return 0, ErrInvalidBatchID
	}
	if amount == 0 {
		return 0, ErrInvalidAmount
	}
	if !role.Valid() {
		return 0, ErrInvalidRole
	}
	if e.balances[ctx.Caller] < amount {
		return 0, ErrInsufficientBalance
	}
	auth, ok := e.authority.Get()
	if !ok {
		return 0, ErrNotAuthorized
	}

	e.balances[ctx.Caller] -= amount
	e.balances[auth] += amount

	id := e.nextID
	e.stakes[id] = Stake{
		BatchID:     batchID,
		Amount:      amount,
		Staker:      ctx.Caller,
		StartHeight: ctx.Height,
		Claimed:     false,
		Role:        role,
	}
	e.stakesByBatch[batchID] = append(e.stakesByBatch[batchID], id)
	e.stakedByRole[role] += amount
	e.nextID++
	return id, nil
}

// ClaimReward pays floor(amount * rewardRate / 10000) from the authority
// balance to the staker and retires the stake. Only the stake's own staker
// may call it, only after the lock period has elapsed, and only once.
//
// Claiming does not release the staked principal and does not touch the
// role running total: the stake is unlocked and rewarded, not refunded.
func (e *Engine) ClaimReward(ctx inter.Ctx, id StakeID) (uint64, error) {
	s, ok := e.stakes[id]
	if !ok {
		return 0, ErrStakeNotFound
	}
	if ctx.Caller != s.Staker {
		return 0, ErrNotAuthorized
	}
	if s.Claimed {
		return 0, ErrRewardAlreadyClaimed
	}
	if ctx.Height < s.StartHeight+e.cfg.LockPeriod {
		return 0, ErrStakeLocked
	}
	auth, _ := e.authority.Get()
	reward := s.Amount * e.rewardRate / RateDenominator
	if e.balances[auth] < reward {
		return 0, ErrInsufficientRewards
	}

	e.balances[auth] -= reward
	e.balances[s.Staker] += reward
	s.Claimed = true
	e.stakes[id] = s
	return reward, nil
}

// SlashStake retires a stake with a penalty: penalty = floor(amount *
// penaltyRate / 10000) stays with the authority, the remainder (if any)
// returns to the staker. Authority only.
//
// The role running total drops by the full original amount, not by the
// remainder: a slashed stake is fully retired from the role pool no matter
// how much came back. Returns the penalty withheld.
func (e *Engine) SlashStake(ctx inter.Ctx, id StakeID, penaltyRate uint64) (uint64, error) {
	s, ok := e.stakes[id]
	if !ok {
		return 0, ErrStakeNotFound
	}
	if !e.authority.Is(ctx.Caller) {
		return 0, ErrNotAuthorized
	}
	if penaltyRate > RateDenominator {
		return 0, ErrInvalidPenalty
	}
	if s.Claimed {
		return 0, ErrRewardAlreadyClaimed
	}
	auth, _ := e.authority.Get()
	penalty := s.Amount * penaltyRate / RateDenominator
	remaining := s.Amount - penalty
	// The remainder is funded from the authority balance. If the authority
	// cannot cover it the slash fails whole, keeping balances non-negative.
	if e.balances[auth] < remaining {
		return 0, ErrInsufficientRewards
	}

	s.Claimed = true
	e.stakes[id] = s
	e.stakedByRole[s.Role] -= s.Amount
	if remaining > 0 {
		e.balances[auth] -= remaining
		e.balances[s.Staker] += remaining
	}
	return penalty, nil
}

// SetRewardRate replaces the reward rate (basis points). Authority only.
func (e *Engine) SetRewardRate(ctx inter.Ctx, rate uint64) error {
	if !e.authority.Is(ctx.Caller) {
		return ErrNotAuthorized
	}
	e.rewardRate = rate
	return nil
}

// BalanceOf returns the fungible balance of an account.
func (e *Engine) BalanceOf(p common.Address) uint64 {
	return e.balances[p]
}

// Stake returns the stake record for id.
func (e *Engine) Stake(id StakeID) (Stake, bool) {
	s, ok := e.stakes[id]
	return s, ok
}

// StakeCount returns the number of stakes ever created.
func (e *Engine) StakeCount() uint64 {
	return uint64(e.nextID)
}

// StakesForBatch returns the ids of all stakes pledged against a batch, in
// creation order. The returned slice is a copy.
func (e *Engine) StakesForBatch(batchID BatchID) []StakeID {
	ids := e.stakesByBatch[batchID]
	out := make([]StakeID, len(ids))
	copy(out, ids)
	return out
}

// TotalStakedByRole returns the running total of live stake for a role. It
// grows on stake, shrinks by the full stake amount on slash, and is
// untouched by claims.
func (e *Engine) TotalStakedByRole(r Role) uint64 {
	return e.stakedByRole[r]
}

// TotalSupply returns the unminted genesis supply (zero once
// MintInitialSupply has run).
func (e *Engine) TotalSupply() uint64 {
	return e.supply
}

// RewardRate returns the current reward rate in basis points.
func (e *Engine) RewardRate() uint64 {
	return e.rewardRate
}

// LockPeriod returns the stake lock period in blocks.
func (e *Engine) LockPeriod() idx.Block {
	return e.cfg.LockPeriod
}
