package xiprange

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromBytes_AddressLength(t *testing.T) {
	tests := []struct {
		name    string
		address []byte
		wantErr error
	}{
		{"IPv4", []byte{10, 0, 0, 0}, nil},
		{"IPv6", make([]byte, 16), nil},
		{"empty", []byte{}, ErrInvalidAddress},
		{"three bytes", []byte{10, 0, 0}, ErrInvalidAddress},
		{"five bytes", []byte{10, 0, 0, 0, 0}, ErrInvalidAddress},
		{"eight bytes", make([]byte, 8), ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFromBytes(tt.address, 0)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, r.IsValid())
				return
			}
			require.NoError(t, err)
			assert.True(t, r.IsValid())
			assert.Equal(t, len(tt.address)*8, r.Bits())
		})
	}
}

func TestNewFromBytes_MaskSizeRange(t *testing.T) {
	v4 := []byte{192, 168, 0, 0}
	v6 := make([]byte, 16)

	tests := []struct {
		name     string
		address  []byte
		maskSize int
		wantErr  error
	}{
		{"v4 zero", v4, 0, nil},
		{"v4 full", v4, 32, nil},
		{"v4 negative", v4, -1, ErrInvalidPrefix},
		{"v4 too large", v4, 33, ErrInvalidPrefix},
		{"v6 zero", v6, 0, nil},
		{"v6 full", v6, 128, nil},
		{"v6 too large", v6, 129, ErrInvalidPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromBytes(tt.address, tt.maskSize)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew_InvalidAddr(t *testing.T) {
	_, err := New(netip.Addr{}, 0)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNew_UnmapsIPv4Mapped(t *testing.T) {
	r, err := New(netip.MustParseAddr("::ffff:192.168.0.0"), 16)
	require.NoError(t, err)

	assert.Equal(t, 32, r.Bits())
	assert.Equal(t, "192.168.0.0", r.NetworkAddr().String())
	assert.True(t, r.Contains(netip.MustParseAddr("192.168.5.9")))
}

// 16 字节的 IPv4-mapped 输入必须与 New 同样 Unmap，
// 否则网络地址经 netip.Addr 分类回来会落到另一个地址族，
// 破坏"网络地址被自身包含"的不变量。
func TestNewFromBytes_UnmapsIPv4Mapped(t *testing.T) {
	mapped := netip.MustParseAddr("::ffff:10.0.0.0").As16()

	r, err := NewFromBytes(mapped[:], 24)
	require.NoError(t, err)

	assert.Equal(t, 32, r.Bits())
	assert.Equal(t, "10.0.0.0", r.NetworkAddr().String())
	assert.True(t, r.Contains(r.NetworkAddr()), "network address must be contained in itself")
	assert.True(t, r.Contains(netip.MustParseAddr("10.0.0.7")))
	assert.True(t, r.Contains(netip.MustParseAddr("::ffff:10.0.0.7")))

	// 与 New 的判定一致：Unmap 后按 32 位范围校验前缀长度
	_, err = NewFromBytes(mapped[:], 104)
	assert.ErrorIs(t, err, ErrInvalidPrefix)
	_, err = New(netip.MustParseAddr("::ffff:10.0.0.0"), 104)
	assert.ErrorIs(t, err, ErrInvalidPrefix)
}

// 网络地址归约幂等：network == address AND mask，
// 且从 network 再次构造得到完全相同的 network、无 host 分量。
func TestNetworkReductionIdempotent(t *testing.T) {
	r, err := ParseCIDRBlock("10.0.0.5/24")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0", r.NetworkAddr().String())

	again, err := New(r.NetworkAddr(), r.MaskSize())
	require.NoError(t, err)
	assert.Equal(t, r.NetworkAddr(), again.NetworkAddr())

	_, ok := again.HostAddr()
	assert.False(t, ok, "network address input must not retain a host component")
}

func TestHostAddr(t *testing.T) {
	t.Run("host input retained", func(t *testing.T) {
		r := MustParseCIDRBlock("10.0.0.5/24")
		host, ok := r.HostAddr()
		require.True(t, ok)
		assert.Equal(t, "10.0.0.5", host.String())
		assert.Equal(t, "10.0.0.0", r.NetworkAddr().String())
	})

	t.Run("network input absent", func(t *testing.T) {
		r := MustParseCIDRBlock("10.0.0.0/24")
		_, ok := r.HostAddr()
		assert.False(t, ok)
	})

	t.Run("zero mask keeps nonzero host", func(t *testing.T) {
		r := MustParseCIDRBlock("10.0.0.5/0")
		host, ok := r.HostAddr()
		require.True(t, ok)
		assert.Equal(t, "10.0.0.5", host.String())
		assert.Equal(t, "0.0.0.0", r.NetworkAddr().String())
	})
}

// 包含自反性：范围的网络地址永远落在该范围内。
func TestContains_Reflexive(t *testing.T) {
	for _, block := range []string{
		"0.0.0.0/0",
		"10.0.0.5/24",
		"192.168.0.0/16",
		"255.255.255.255/32",
		"::/0",
		"2001:db8::/32",
		"2001:db8::1/128",
	} {
		r := MustParseCIDRBlock(block)
		assert.True(t, r.Contains(r.NetworkAddr()), "network address of %s must be contained", block)
	}
}

func TestContains_V4(t *testing.T) {
	r := MustParseCIDRBlock("192.168.0.0/16")

	tests := []struct {
		name string
		addr string
		want bool
	}{
		{"inside", "192.168.5.9", true},
		{"network itself", "192.168.0.0", true},
		{"broadcast", "192.168.255.255", true},
		{"adjacent above", "192.169.0.1", false},
		{"adjacent below", "192.167.255.255", false},
		{"different net", "10.0.0.1", false},
		{"mapped inside", "::ffff:192.168.5.9", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(netip.MustParseAddr(tt.addr)))
		})
	}
}

func TestContains_HostAlignedBlock(t *testing.T) {
	r := MustParseCIDRBlock("10.0.0.5/24")
	assert.True(t, r.Contains(netip.MustParseAddr("10.0.0.255")))
	assert.True(t, r.Contains(netip.MustParseAddr("10.0.0.0")))
	assert.False(t, r.Contains(netip.MustParseAddr("10.0.1.0")))
}

func TestContains_V6(t *testing.T) {
	r := MustParseCIDRBlock("2001:db8::/32")

	tests := []struct {
		name string
		addr string
		want bool
	}{
		{"inside", "2001:db8::1", true},
		{"network itself", "2001:db8::", true},
		{"last address", "2001:db8:ffff:ffff:ffff:ffff:ffff:ffff", true},
		{"adjacent block", "2001:db9::1", false},
		{"unrelated", "fe80::1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(netip.MustParseAddr(tt.addr)))
		})
	}
}

// 掩码长度 0 的范围包含同族的全部地址。
func TestContains_ZeroMask(t *testing.T) {
	v4 := MustParseCIDRBlock("0.0.0.0/0")
	assert.True(t, v4.Contains(netip.MustParseAddr("0.0.0.0")))
	assert.True(t, v4.Contains(netip.MustParseAddr("8.8.8.8")))
	assert.True(t, v4.Contains(netip.MustParseAddr("255.255.255.255")))

	v6 := MustParseCIDRBlock("::/0")
	assert.True(t, v6.Contains(netip.MustParseAddr("::")))
	assert.True(t, v6.Contains(netip.MustParseAddr("2001:db8::1")))
	assert.True(t, v6.Contains(netip.MustParseAddr("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff")))
}

// 掩码长度等于地址位长的范围只包含原地址本身。
func TestContains_FullMask(t *testing.T) {
	v4 := MustParseCIDRBlock("10.0.0.5/32")
	assert.True(t, v4.Contains(netip.MustParseAddr("10.0.0.5")))
	assert.False(t, v4.Contains(netip.MustParseAddr("10.0.0.4")))
	assert.False(t, v4.Contains(netip.MustParseAddr("10.0.0.6")))

	v6 := MustParseCIDRBlock("2001:db8::1/128")
	assert.True(t, v6.Contains(netip.MustParseAddr("2001:db8::1")))
	assert.False(t, v6.Contains(netip.MustParseAddr("2001:db8::2")))
}

// 跨族查询定义为不包含，而非错误。
func TestContains_CrossFamily(t *testing.T) {
	v6 := MustParseCIDRBlock("2001:db8::/32")
	assert.False(t, v6.Contains(netip.MustParseAddr("192.168.0.1")))
	assert.False(t, v6.ContainsBytes([]byte{192, 168, 0, 1}))

	v4 := MustParseCIDRBlock("192.168.0.0/16")
	assert.False(t, v4.Contains(netip.MustParseAddr("2001:db8::1")))
	assert.False(t, v4.ContainsBytes(make([]byte, 16)))
}

func TestContains_InvalidInput(t *testing.T) {
	r := MustParseCIDRBlock("192.168.0.0/16")
	assert.False(t, r.Contains(netip.Addr{}))
	assert.False(t, r.ContainsBytes(nil))
	assert.False(t, r.ContainsBytes([]byte{192, 168}))
}

func TestZeroRange(t *testing.T) {
	var r Range
	assert.False(t, r.IsValid())
	assert.Equal(t, 0, r.Bits())
	assert.False(t, r.Contains(netip.MustParseAddr("10.0.0.1")))
	assert.False(t, r.ContainsBytes([]byte{10, 0, 0, 1}))
	assert.Equal(t, netip.Addr{}, r.NetworkAddr())
	_, ok := r.HostAddr()
	assert.False(t, ok)
	assert.Equal(t, netip.Prefix{}, r.Prefix())
	assert.Equal(t, "invalid Range", r.String())
}

func TestPrefix(t *testing.T) {
	r := MustParseCIDRBlock("10.0.0.5/24")
	p := r.Prefix()
	assert.Equal(t, "10.0.0.0/24", p.String())
	assert.True(t, p.Contains(netip.MustParseAddr("10.0.0.255")))
}

func TestIPRange(t *testing.T) {
	tests := []struct {
		block string
		from  string
		to    string
	}{
		{"192.168.0.0/16", "192.168.0.0", "192.168.255.255"},
		{"10.0.0.5/32", "10.0.0.5", "10.0.0.5"},
		{"0.0.0.0/0", "0.0.0.0", "255.255.255.255"},
		{"2001:db8::/32", "2001:db8::", "2001:db8:ffff:ffff:ffff:ffff:ffff:ffff"},
		{"::/0", "::", "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"},
	}

	for _, tt := range tests {
		t.Run(tt.block, func(t *testing.T) {
			ipr := MustParseCIDRBlock(tt.block).IPRange()
			require.True(t, ipr.IsValid())
			assert.Equal(t, tt.from, ipr.From().String())
			assert.Equal(t, tt.to, ipr.To().String())
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "10.0.0.0/24", MustParseCIDRBlock("10.0.0.5/24").String())
	assert.Equal(t, "2001:db8::/32", MustParseCIDRBlock("2001:db8::/32").String())
}

func TestMustParseCIDRBlock_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseCIDRBlock("not a cidr") })
}
