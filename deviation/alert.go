// Package deviation implements the Deviation Alert Engine: per-batch
// environmental rules and the temperature deviation alert log.
//
// Key concepts:
//   - BatchRules: temperature band, threshold and grace period, set by the
//     bound oracle authority (overwriting is allowed, rules are updatable)
//   - Alert: an immutable deviation record, mutable only in its
//     status/penaltyApplied pair, closed exactly once
//   - Deviation counter: a monotonic per-batch audit signal; a zero count,
//     not an alert's own status, is what "not in deviation" means
//
// The engine maintains its own identifier space, independent from the Batch
// Registry; batch ids are foreign values whose existence is never checked.
package deviation

import (
	"github.com/Fantom-foundation/lachesis-base/inter/idx"

	"github.com/rony4d/go-coldchain-ledger/inter"
)

// AlertID is a sequential alert identifier, unique and never reused.
type AlertID uint64

// BatchID is re-exported from inter.
type BatchID = inter.BatchID

// Field bounds. Temperatures are degrees Celsius, the grace period is in
// blocks.
const (
	MinTemp = -50
	MaxTemp = 50

	MaxGracePeriod = 144
	MaxSeverity    = 3

	MaxSensorIDLen = 50
	MaxLocationLen = 100
)

// AlertType classifies a deviation reading. Closed enum.
type AlertType uint8

const (
	AlertHigh AlertType = iota
	AlertLow
	AlertExtreme
)

// Valid reports whether t is one of the three defined alert types.
func (t AlertType) Valid() bool {
	return t <= AlertExtreme
}

func (t AlertType) String() string {
	switch t {
	case AlertHigh:
		return "high"
	case AlertLow:
		return "low"
	case AlertExtreme:
		return "extreme"
	}
	return "unknown"
}

// AlertTypeFromString parses the canonical string form of an alert type.
func AlertTypeFromString(s string) (AlertType, bool) {
	switch s {
	case "high":
		return AlertHigh, true
	case "low":
		return AlertLow, true
	case "extreme":
		return AlertExtreme, true
	}
	return 0, false
}

// BatchRules is the environmental compliance envelope of a batch. Set (and
// freely re-set) by the oracle authority.
type BatchRules struct {
	MinTemp            int64 // degrees Celsius, within [-50, 50]
	MaxTemp            int64 // degrees Celsius, within [-50, 50], > MinTemp
	DeviationThreshold uint64
	GracePeriod        idx.Block // blocks, at most 144
	Active             bool
}

// Alert is a recorded temperature deviation. Everything except Open and
// PenaltyApplied is immutable; the pair flips exactly once, open to closed,
// via ResolveAlert.
type Alert struct {
	BatchID        BatchID
	TempRecorded   int64
	Timestamp      idx.Block // block height at creation
	SensorID       string
	Location       string
	Severity       uint64
	Type           AlertType
	Open           bool
	PenaltyApplied bool
}
