package registry

import (
	"github.com/Fantom-foundation/lachesis-base/inter/idx"

	"github.com/rony4d/go-coldchain-ledger/utils/cser"
)

// Binary codec for Batch records, for the host's storage layer. The field
// order matches the mint call signature; the encoding is canonical, so
// a record has exactly one legal byte representation.

// MarshalCSER writes the batch record to w.
func (b *Batch) MarshalCSER(w *cser.Writer) error {
	w.ASCII(b.Meta.VaccineType)
	w.U64(b.Meta.DoseCount)
	w.U64(uint64(b.Meta.ProductionDate))
	w.U64(uint64(b.Meta.ExpirationDate))
	w.ASCII(b.Meta.Manufacturer)
	w.I64(b.Meta.StorageMin)
	w.I64(b.Meta.StorageMax)
	w.U8(uint8(b.Meta.TransportMode))
	w.ASCII(b.Meta.Origin)
	w.ASCII(b.Meta.Destination)
	w.U8(uint8(b.Status))
	w.Bool(b.Compromised)
	return nil
}

// UnmarshalCSER reads a batch record from r. Out-of-enum transport modes
// and statuses are rejected as malformed.
func (b *Batch) UnmarshalCSER(r *cser.Reader) error {
	b.Meta.VaccineType = r.ASCII(MaxVaccineTypeLen)
	b.Meta.DoseCount = r.U64()
	b.Meta.ProductionDate = idx.Block(r.U64())
	b.Meta.ExpirationDate = idx.Block(r.U64())
	b.Meta.Manufacturer = r.ASCII(MaxManufacturerLen)
	b.Meta.StorageMin = r.I64()
	b.Meta.StorageMax = r.I64()
	mode := TransportMode(r.U8())
	if !mode.Valid() {
		return cser.ErrMalformedEncoding
	}
	b.Meta.TransportMode = mode
	b.Meta.Origin = r.ASCII(MaxLocationLen)
	b.Meta.Destination = r.ASCII(MaxLocationLen)
	status := Status(r.U8())
	if !status.Valid() {
		return cser.ErrMalformedEncoding
	}
	b.Status = status
	b.Compromised = r.Bool()
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b *Batch) MarshalBinary() ([]byte, error) {
	return cser.MarshalBinaryAdapter(b.MarshalCSER)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Batch) UnmarshalBinary(raw []byte) error {
	return cser.UnmarshalBinaryAdapter(raw, b.UnmarshalCSER)
}
