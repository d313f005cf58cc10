package incentive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoleStrings(t *testing.T) {
	require := require.New(t)

	for _, r := range []Role{RoleManufacturer, RoleDistributor, RoleProvider} {
		require.True(r.Valid())
		parsed, ok := RoleFromString(r.String())
		require.True(ok, r.String())
		require.Equal(r, parsed)
	}

	require.False(Role(3).Valid())
	_, ok := RoleFromString("courier")
	require.False(ok)
}
