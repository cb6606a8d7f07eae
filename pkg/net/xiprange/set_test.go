package xiprange

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCIDRBlocks(t *testing.T) {
	set, err := ParseCIDRBlocks([]string{
		"10.0.0.0/8",
		"192.168.0.0/16",
		"2001:db8::/32",
	})
	require.NoError(t, err)

	assert.True(t, set.Contains(netip.MustParseAddr("10.1.2.3")))
	assert.True(t, set.Contains(netip.MustParseAddr("192.168.5.9")))
	assert.True(t, set.Contains(netip.MustParseAddr("2001:db8::1")))
	assert.False(t, set.Contains(netip.MustParseAddr("172.16.0.1")))
	assert.False(t, set.Contains(netip.MustParseAddr("2001:db9::1")))
}

func TestParseCIDRBlocks_Empty(t *testing.T) {
	set, err := ParseCIDRBlocks(nil)
	require.NoError(t, err)
	require.NotNil(t, set)
	assert.Empty(t, set.Ranges())
}

func TestParseCIDRBlocks_Invalid(t *testing.T) {
	_, err := ParseCIDRBlocks([]string{"10.0.0.0/8", "not-a-cidr"})
	assert.ErrorIs(t, err, ErrInvalidCIDRSyntax)
	assert.ErrorContains(t, err, "not-a-cidr")
}

func TestParseCIDRBlocks_MergesAdjacent(t *testing.T) {
	set, err := ParseCIDRBlocks([]string{
		"10.0.0.0/25",
		"10.0.0.128/25",
	})
	require.NoError(t, err)

	ranges := set.Ranges()
	require.Len(t, ranges, 1)
	assert.Equal(t, "10.0.0.0", ranges[0].From().String())
	assert.Equal(t, "10.0.0.255", ranges[0].To().String())
}

func TestMergeBlocks(t *testing.T) {
	merged, err := MergeBlocks([]Range{
		MustParseCIDRBlock("10.0.0.0/25"),
		MustParseCIDRBlock("10.0.0.128/25"),
		MustParseCIDRBlock("192.168.0.0/16"),
	})
	require.NoError(t, err)

	require.Len(t, merged, 2)
	assert.Equal(t, "10.0.0.0/24", merged[0].String())
	assert.Equal(t, "192.168.0.0/16", merged[1].String())
}

func TestMergeBlocks_Empty(t *testing.T) {
	merged, err := MergeBlocks(nil)
	require.NoError(t, err)
	assert.Nil(t, merged)
}

func TestMergeBlocks_ZeroRange(t *testing.T) {
	_, err := MergeBlocks([]Range{MustParseCIDRBlock("10.0.0.0/8"), {}})
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
