package deviation

import (
	"github.com/Fantom-foundation/lachesis-base/inter/idx"

	"github.com/rony4d/go-coldchain-ledger/inter"
	"github.com/rony4d/go-coldchain-ledger/utils/cser"
)

// Binary codec for Alert records, for the host's storage layer.

// MarshalCSER writes the alert record to w.
func (a *Alert) MarshalCSER(w *cser.Writer) error {
	w.U64(uint64(a.BatchID))
	w.I64(a.TempRecorded)
	w.U64(uint64(a.Timestamp))
	w.ASCII(a.SensorID)
	w.ASCII(a.Location)
	w.U8(uint8(a.Severity))
	w.U8(uint8(a.Type))
	w.Bool(a.Open)
	w.Bool(a.PenaltyApplied)
	return nil
}

// UnmarshalCSER reads an alert record from r. Severities above the maximum
// and out-of-enum alert types are rejected as malformed.
func (a *Alert) UnmarshalCSER(r *cser.Reader) error {
	a.BatchID = inter.BatchID(r.U64())
	a.TempRecorded = r.I64()
	a.Timestamp = idx.Block(r.U64())
	a.SensorID = r.ASCII(MaxSensorIDLen)
	a.Location = r.ASCII(MaxLocationLen)
	severity := r.U8()
	if severity > MaxSeverity {
		return cser.ErrMalformedEncoding
	}
	a.Severity = uint64(severity)
	typ := AlertType(r.U8())
	if !typ.Valid() {
		return cser.ErrMalformedEncoding
	}
	a.Type = typ
	a.Open = r.Bool()
	a.PenaltyApplied = r.Bool()
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (a *Alert) MarshalBinary() ([]byte, error) {
	return cser.MarshalBinaryAdapter(a.MarshalCSER)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *Alert) UnmarshalBinary(raw []byte) error {
	return cser.UnmarshalBinaryAdapter(raw, a.UnmarshalCSER)
}
