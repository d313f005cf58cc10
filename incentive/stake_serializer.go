package incentive

import (
	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-coldchain-ledger/inter"
	"github.com/rony4d/go-coldchain-ledger/utils/cser"
)

// Binary codec for Stake records, for the host's storage layer.

// MarshalCSER writes the stake record to w.
func (s *Stake) MarshalCSER(w *cser.Writer) error {
	w.U64(uint64(s.BatchID))
	w.U64(s.Amount)
	w.FixedBytes(s.Staker.Bytes())
	w.U64(uint64(s.StartHeight))
	w.Bool(s.Claimed)
	w.U8(uint8(s.Role))
	return nil
}

// UnmarshalCSER reads a stake record from r. Out-of-enum roles are rejected
// as malformed.
func (s *Stake) UnmarshalCSER(r *cser.Reader) error {
	s.BatchID = inter.BatchID(r.U64())
	s.Amount = r.U64()
	staker := make([]byte, common.AddressLength)
	r.FixedBytes(staker)
	s.Staker = common.BytesToAddress(staker)
	s.StartHeight = idx.Block(r.U64())
	s.Claimed = r.Bool()
	role := Role(r.U8())
	if !role.Valid() {
		return cser.ErrMalformedEncoding
	}
	s.Role = role
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Stake) MarshalBinary() ([]byte, error) {
	return cser.MarshalBinaryAdapter(s.MarshalCSER)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Stake) UnmarshalBinary(raw []byte) error {
	return cser.UnmarshalBinaryAdapter(raw, s.UnmarshalCSER)
}
