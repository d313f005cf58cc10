package registry

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-coldchain-ledger/inter"
)

// Config holds the registry parameters fixed at construction. The mint fee
// is only the initial value; the bound authority may change it at runtime
// via SetMintFee.
type Config struct {
	// MaxBatches caps the sequential id space. Once NextBatchID reaches it,
	// minting fails with ErrMaxBatchesExceeded.
	MaxBatches uint64

	// MintFee is the fee (in native units) routed from the minter to the
	// bound authority on every successful mint.
	MintFee uint64
}

// Registry is the Batch Registry engine. It owns batch identity, ownership
// and lifecycle metadata, and nothing else.
//
// A Registry is not safe for concurrent use: the execution environment
// serializes calls (one commits fully before the next begins). Every
// operation validates completely before its first mutation, so a failure
// never leaves partial state behind.
type Registry struct {
	cfg       Config
	authority inter.Binding
	transfer  inter.TransferFn

	mintFee uint64
	nextID  BatchID

	// nfts is the ownership record; owners is the secondary owner index.
	// Both are rewritten together on transfer.
	nfts    map[BatchID]common.Address
	owners  map[BatchID]common.Address
	batches map[BatchID]Batch
}

// New creates an empty registry. A nil transfer falls back to
// inter.NopTransfer, for hosts that account for fees elsewhere.
func New(cfg Config, transfer inter.TransferFn) *Registry {
	if transfer == nil {
		transfer = inter.NopTransfer
	}
	return &Registry{
		cfg:      cfg,
		transfer: transfer,
		mintFee:  cfg.MintFee,
		nfts:     make(map[BatchID]common.Address),
		owners:   make(map[BatchID]common.Address),
		batches:  make(map[BatchID]Batch),
	}
}

// BindAuthority sets the registry's authority exactly once. See
// inter.Binding for the rejection rules.
func (r *Registry) BindAuthority(p common.Address) error {
	return r.authority.Bind(p)
}

// Authority returns the bound authority and whether one is set.
func (r *Registry) Authority() (common.Address, bool) {
	return r.authority.Get()
}

// MintBatch validates meta, charges the mint fee from the caller to the
// bound authority, and records a new batch owned by the caller with status
// "produced". It returns the allocated sequential id.
//
// Checks run in the documented order and the first failure wins; no fee is
// charged and no state is mutated on any failure, including a failed fee
// transfer.
func (r *Registry) MintBatch(ctx inter.Ctx, meta Metadata) (BatchID, error) {
	if uint64(r.nextID) >= r.cfg.MaxBatches {
		return 0, ErrMaxBatchesExceeded
	}
	if len(meta.VaccineType) == 0 || len(meta.VaccineType) > MaxVaccineTypeLen {
		return 0, ErrInvalidVaccineType
	}
	if meta.DoseCount == 0 {
		return 0, ErrInvalidDoseCount
	}
	if meta.ProductionDate > ctx.Height {
		return 0, ErrInvalidProductionDate
	}
	if meta.ExpirationDate <= ctx.Height {
		return 0, ErrInvalidExpirationDate
	}
	if meta.ExpirationDate <= meta.ProductionDate {
		return 0, ErrInvalidExpirationDate
	}
	if len(meta.Manufacturer) == 0 || len(meta.Manufacturer) > MaxManufacturerLen {
		return 0, ErrInvalidManufacturer
	}
	if meta.StorageMin < MinStorageTemp || meta.StorageMin > MaxStorageTemp {
		return 0, ErrInvalidStorageTemp
	}
	if meta.StorageMax < MinStorageTemp || meta.StorageMax > MaxStorageTemp {
		return 0, ErrInvalidStorageTemp
	}
	if meta.StorageMax <= meta.StorageMin {
		return 0, ErrInvalidStorageTemp
	}
	if !meta.TransportMode.Valid() {
		return 0, ErrInvalidTransportMode
	}
	if len(meta.Origin) == 0 || len(meta.Origin) > MaxLocationLen {
		return 0, ErrInvalidLocation
	}
	if len(meta.Destination) == 0 || len(meta.Destination) > MaxLocationLen {
		return 0, ErrInvalidLocation
	}
	auth, ok := r.authority.Get()
	if !ok {
		return 0, ErrNotAuthorized
	}

	// All checks passed. The fee transfer is the single side effect allowed
	// to fail; it runs before the first mutation.
	err := r.transfer(inter.Transfer{Amount: r.mintFee, From: ctx.Caller, To: auth})
	if err != nil {
		return 0, err
	}

	id := r.nextID
	r.nfts[id] = ctx.Caller
	r.owners[id] = ctx.Caller
	r.batches[id] = Batch{
		Meta:   meta,
		Status: StatusProduced,
	}
	r.nextID++
	return id, nil
}

// TransferBatch moves ownership of a batch to recipient. Only the current
// owner may call it. Both the ownership record and the secondary owner
// index are rewritten.
func (r *Registry) TransferBatch(ctx inter.Ctx, id BatchID, recipient common.Address) error {
	owner, ok := r.nfts[id]
	if !ok {
		return ErrBatchNotFound
	}
	if ctx.Caller != owner {
		return ErrNotOwner
	}
	r.nfts[id] = recipient
	r.owners[id] = recipient
	return nil
}

// UpdateBatchStatus replaces the batch status with newStatus. Only the
// owner may call it. The compromised flag is untouched: flagging a batch is
// the authority's one-way operation, not a status update.
func (r *Registry) UpdateBatchStatus(ctx inter.Ctx, id BatchID, newStatus Status) error {
	owner, ok := r.nfts[id]
	if !ok {
		return ErrBatchNotFound
	}
	b, ok := r.batches[id]
	if !ok {
		return ErrBatchNotFound
	}
	if ctx.Caller != owner {
		return ErrNotOwner
	}
	if !newStatus.Valid() {
		return ErrInvalidStatus
	}
	b.Status = newStatus
	r.batches[id] = b
	return nil
}

// FlagCompromised marks a batch compromised and forces its status to
// StatusCompromised, atomically. Authority only. The flag is monotonic:
// re-flagging an already compromised batch is rejected, not absorbed.
func (r *Registry) FlagCompromised(ctx inter.Ctx, id BatchID) error {
	b, ok := r.batches[id]
	if !ok {
		return ErrBatchNotFound
	}
	if !r.authority.Is(ctx.Caller) {
		return ErrNotAuthorized
	}
	if b.Compromised {
		return ErrAlreadyCompromised
	}
	b.Compromised = true
	b.Status = StatusCompromised
	r.batches[id] = b
	return nil
}

// SetMintFee replaces the mint fee. Authority only.
func (r *Registry) SetMintFee(ctx inter.Ctx, fee uint64) error {
	if !r.authority.Is(ctx.Caller) {
		return ErrNotAuthorized
	}
	r.mintFee = fee
	return nil
}

// Batch returns the batch record for id.
func (r *Registry) Batch(id BatchID) (Batch, bool) {
	b, ok := r.batches[id]
	return b, ok
}

// OwnerOf returns the current owner of a batch.
func (r *Registry) OwnerOf(id BatchID) (common.Address, bool) {
	owner, ok := r.nfts[id]
	return owner, ok
}

// BatchCount returns the number of batches ever minted (the next id to be
// allocated).
func (r *Registry) BatchCount() uint64 {
	return uint64(r.nextID)
}

// MintFee returns the current mint fee.
func (r *Registry) MintFee() uint64 {
	return r.mintFee
}
