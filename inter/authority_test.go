package inter

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

// TestBinding_oneShot verifies that Bind succeeds exactly once and that the
// bound value never changes after the first success, no matter how many
// rebind attempts follow.
func TestBinding_oneShot(t *testing.T) {
	require := require.New(t)

	var b Binding
	auth := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	other := common.HexToAddress("0x00000000000000000000000000000000000000bb")

	require.False(b.IsSet())
	_, ok := b.Get()
	require.False(ok)
	require.False(b.Is(auth))

	require.NoError(b.Bind(auth))
	require.True(b.IsSet())
	got, ok := b.Get()
	require.True(ok)
	require.Equal(auth, got)
	require.True(b.Is(auth))
	require.False(b.Is(other))

	// Rebinding fails and leaves the original binding intact.
	err := b.Bind(other)
	require.Equal(ErrAlreadyBound, err)
	got, _ = b.Get()
	require.Equal(auth, got)
}

// TestBinding_rejectsNull verifies that the zero (burn) address can never be
// bound, and that a failed bind does not consume the one-shot slot.
func TestBinding_rejectsNull(t *testing.T) {
	require := require.New(t)

	var b Binding
	err := b.Bind(common.Address{})
	require.Equal(ErrNullAuthority, err)
	require.False(b.IsSet())

	// The slot is still free after the rejected bind.
	auth := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	require.NoError(b.Bind(auth))
	require.True(b.Is(auth))
}
