// Package registry implements the Batch Registry engine: batch identity,
// ownership, lifecycle metadata, and status transitions for vaccine batches.
//
// Key concepts:
//   - Batch: lifecycle metadata + status + one-way compromised flag
//   - Ownership: an NFT-style ownership record plus a secondary owner index,
//     both rewritten on transfer
//   - Minting: fee-charging, capacity-bounded sequential id allocation
//
// The registry is authoritative only for its own slice of state. Batch ids
// are shared with the other engines by value; the registry is never
// consulted by them (a weak reference by value, documented behavior).
package registry

import (
	"github.com/Fantom-foundation/lachesis-base/inter/idx"

	"github.com/rony4d/go-coldchain-ledger/inter"
)

// BatchID is re-exported from inter: batch ids are the one datum shared by
// value across the three engines.
type BatchID = inter.BatchID

// Field bounds of the batch metadata. Lengths are counted in bytes, storage
// temperatures in degrees Celsius.
const (
	MaxVaccineTypeLen  = 50
	MaxManufacturerLen = 100
	MaxLocationLen     = 100

	MinStorageTemp = -50
	MaxStorageTemp = 50
)

// Status is the lifecycle status of a batch. A closed enum: values outside
// the four constants are invalid and rejected by every operation.
type Status uint8

const (
	StatusProduced Status = iota
	StatusInTransit
	StatusDelivered
	StatusCompromised
)

// Valid reports whether s is one of the four defined statuses.
func (s Status) Valid() bool {
	return s <= StatusCompromised
}

func (s Status) String() string {
	switch s {
	case StatusProduced:
		return "produced"
	case StatusInTransit:
		return "in-transit"
	case StatusDelivered:
		return "delivered"
	case StatusCompromised:
		return "compromised"
	}
	return "unknown"
}

// StatusFromString parses the canonical string form of a status. It is the
// boundary converter for hosts that speak the contract's string encoding.
func StatusFromString(s string) (Status, bool) {
	switch s {
	case "produced":
		return StatusProduced, true
	case "in-transit":
		return StatusInTransit, true
	case "delivered":
		return StatusDelivered, true
	case "compromised":
		return StatusCompromised, true
	}
	return 0, false
}

// TransportMode is the shipping mode of a batch. Closed enum.
type TransportMode uint8

const (
	ModeAir TransportMode = iota
	ModeSea
	ModeRoad
	ModeRail
)

// Valid reports whether m is one of the four defined transport modes.
func (m TransportMode) Valid() bool {
	return m <= ModeRail
}

func (m TransportMode) String() string {
	switch m {
	case ModeAir:
		return "air"
	case ModeSea:
		return "sea"
	case ModeRoad:
		return "road"
	case ModeRail:
		return "rail"
	}
	return "unknown"
}

// TransportModeFromString parses the canonical string form of a transport
// mode.
func TransportModeFromString(s string) (TransportMode, bool) {
	switch s {
	case "air":
		return ModeAir, true
	case "sea":
		return ModeSea, true
	case "road":
		return ModeRoad, true
	case "rail":
		return ModeRail, true
	}
	return 0, false
}

// Metadata is the immutable descriptive part of a batch, supplied at mint
// time. Field order matches the mint call signature and the binary
// record encoding.
type Metadata struct {
	VaccineType    string
	DoseCount      uint64
	ProductionDate idx.Block // block height; must not be in the future at mint
	ExpirationDate idx.Block // block height; must be strictly in the future at mint
	Manufacturer   string
	StorageMin     int64 // degrees Celsius, within [-50, 50]
	StorageMax     int64 // degrees Celsius, within [-50, 50], > StorageMin
	TransportMode  TransportMode
	Origin         string
	Destination    string
}

// Batch is the full lifecycle record of a batch. Status and Compromised are
// the only mutable fields; Compromised is monotonic (once true, never
// false) and forces Status to StatusCompromised when set.
type Batch struct {
	Meta        Metadata
	Status      Status
	Compromised bool
}
