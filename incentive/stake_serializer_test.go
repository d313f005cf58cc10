package incentive

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestStakeSerialization(t *testing.T) {
	require := require.New(t)
	s := &Stake{
		BatchID:     7,
		Amount:      500000,
		Staker:      common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		StartHeight: 1000,
		Claimed:     true,
		Role:        RoleDistributor,
	}

	raw, err := s.MarshalBinary()
	require.NoError(err)

	got := &Stake{}
	require.NoError(got.UnmarshalBinary(raw))
	require.Equal(s, got)
}

func TestStakeSerializationRejectsDamage(t *testing.T) {
	require := require.New(t)
	s := &Stake{
		BatchID:     1,
		Amount:      1,
		Staker:      common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		StartHeight: 1,
		Role:        RoleProvider,
	}
	raw, err := s.MarshalBinary()
	require.NoError(err)

	require.Error(new(Stake).UnmarshalBinary(raw[:len(raw)-1]))
	require.Error(new(Stake).UnmarshalBinary(append(append([]byte{}, raw...), 0)))
	require.Error(new(Stake).UnmarshalBinary(nil))
}
