package xiprange

import (
	"fmt"
	"net/netip"
	"strconv"

	"go4.org/netipx"
)

// Range 表示一个 CIDR 地址范围（IPv4 或 IPv6）。
//
// Range 是不可变值类型：构造成功后所有字段不再变化，
// 可安全地在多个 goroutine 间共享。零值 Range 无效，
// 不包含任何地址，访问器返回零值。
type Range struct {
	// bits 是地址位长，32（IPv4）或 128（IPv6），零值表示无效。
	bits int

	// maskSize 是前缀长度，区间 [0, bits]。
	maskSize int

	// network 是主机位清零后的网络地址，恒等于 host AND mask。
	network uint128

	// mask 是最高 maskSize 位为 1 的掩码。
	mask uint128

	// host 记录构造时的原始地址，仅当其带有非零主机位时有效。
	host uint128

	// hasHost 标记 host 字段是否有效。
	hasHost bool
}

// New 从地址和前缀长度构造 Range。
//
// addr 可以是网络地址，也可以是网络内某个主机的地址；
// 后者会被记录为 HostAddr，网络地址则由掩码推导。
// IPv4-mapped IPv6 地址（::ffff:a.b.c.d）统一 Unmap 为纯 IPv4，
// 得到 32 位范围。
//
// 无效地址返回 [ErrInvalidAddress]；
// maskSize 超出 [0, 地址位长] 返回 [ErrInvalidPrefix]。
func New(addr netip.Addr, maskSize int) (Range, error) {
	if !addr.IsValid() {
		return Range{}, fmt.Errorf("%w: zero netip.Addr", ErrInvalidAddress)
	}
	if addr.Is4() || addr.Is4In6() {
		b := addr.Unmap().As4()
		return NewFromBytes(b[:], maskSize)
	}
	b := addr.As16()
	return NewFromBytes(b[:], maskSize)
}

// NewFromBytes 从原始字节和前缀长度构造 Range。
//
// address 必须是 4 字节（IPv4）或 16 字节（IPv6）的网络序字节数组，
// 否则返回 [ErrInvalidAddress]。16 字节的 IPv4-mapped 形式
// （::ffff:a.b.c.d）与 [New]、[Contains] 保持同一分类规则，
// Unmap 为 4 字节后按 32 位范围处理。maskSize 超出
// [0, 地址位长] 返回 [ErrInvalidPrefix]。
//
// 构造是原子的：要么得到合法 Range，要么返回错误。
func NewFromBytes(address []byte, maskSize int) (Range, error) {
	bits := len(address) * 8
	if bits != 32 && bits != 128 {
		return Range{}, fmt.Errorf("%w: address is neither an IPv4 nor an IPv6 address (%d bytes)",
			ErrInvalidAddress, len(address))
	}
	if bits == 128 {
		if mapped := netip.AddrFrom16([16]byte(address)); mapped.Is4In6() {
			b := mapped.Unmap().As4()
			address = b[:]
			bits = 32
		}
	}
	if maskSize < 0 || maskSize > bits {
		return Range{}, fmt.Errorf("%w: prefix length must be in range 0 to %d, got %d",
			ErrInvalidPrefix, bits, maskSize)
	}

	mask := maskWord(maskSize, bits)
	host := wordFromBytes(address)
	network := host.and(mask)

	r := Range{
		bits:     bits,
		maskSize: maskSize,
		network:  network,
		mask:     mask,
	}
	if host != network {
		r.host = host
		r.hasHost = true
	}
	return r, nil
}

// MustParseCIDRBlock 与 [ParseCIDRBlock] 相同，但失败时 panic。
// 仅用于测试和初始化已知合法的常量。
func MustParseCIDRBlock(s string) Range {
	r, err := ParseCIDRBlock(s)
	if err != nil {
		panic(err)
	}
	return r
}

// IsValid 报告 r 是否由构造函数成功构造。零值 Range 返回 false。
func (r Range) IsValid() bool {
	return r.bits == 32 || r.bits == 128
}

// Bits 返回地址位长：32（IPv4）、128（IPv6），零值 Range 返回 0。
func (r Range) Bits() int {
	return r.bits
}

// MaskSize 返回前缀长度。
func (r Range) MaskSize() int {
	return r.maskSize
}

// NetworkAddr 返回范围的网络地址（主机位全零）。
// 零值 Range 返回零值 netip.Addr。
func (r Range) NetworkAddr() netip.Addr {
	if !r.IsValid() {
		return netip.Addr{}
	}
	return addrFromWord(r.network, r.bits)
}

// HostAddr 返回构造时的原始主机地址。
// 仅当构造输入带有非零主机位时 ok 为 true；
// 输入本身就是网络地址时返回 (netip.Addr{}, false)。
func (r Range) HostAddr() (netip.Addr, bool) {
	if !r.IsValid() || !r.hasHost {
		return netip.Addr{}, false
	}
	return addrFromWord(r.host, r.bits), true
}

// Contains 报告 addr 是否落在范围内。
//
// 候选地址按族分类：IPv4 与 IPv4-mapped IPv6 视为 4 字节，
// 其余视为 16 字节。与范围地址族不一致时返回 false 而非错误。
// 查询是纯函数，永不失败。
func (r Range) Contains(addr netip.Addr) bool {
	if !addr.IsValid() {
		return false
	}
	if addr.Is4() || addr.Is4In6() {
		b := addr.Unmap().As4()
		return r.ContainsBytes(b[:])
	}
	b := addr.As16()
	return r.ContainsBytes(b[:])
}

// ContainsBytes 报告网络序字节形式的地址是否落在范围内。
// 字节长度与范围地址位长不一致时返回 false。
func (r Range) ContainsBytes(address []byte) bool {
	if !r.IsValid() || len(address)*8 != r.bits {
		return false
	}
	return wordFromBytes(address).and(r.mask) == r.network
}

// Prefix 返回等价的 [netip.Prefix]（网络地址 + 前缀长度）。
// 零值 Range 返回零值 Prefix。
func (r Range) Prefix() netip.Prefix {
	if !r.IsValid() {
		return netip.Prefix{}
	}
	return netip.PrefixFrom(r.NetworkAddr(), r.maskSize)
}

// IPRange 返回等价的 [netipx.IPRange]，
// 起点为网络地址，终点为主机位全 1 的广播地址。
// 零值 Range 返回零值 IPRange。
func (r Range) IPRange() netipx.IPRange {
	if !r.IsValid() {
		return netipx.IPRange{}
	}
	last := r.network.or(r.mask.notMasked(r.bits))
	return netipx.IPRangeFrom(r.NetworkAddr(), addrFromWord(last, r.bits))
}

// String 返回规范化的 CIDR 文本，如 "10.0.0.0/24"。
// 零值 Range 返回 "invalid Range"。
func (r Range) String() string {
	if !r.IsValid() {
		return "invalid Range"
	}
	return r.NetworkAddr().String() + "/" + strconv.Itoa(r.maskSize)
}

// addrFromWord 把内部字还原为 netip.Addr，bits ∈ {32, 128}。
func addrFromWord(u uint128, bits int) netip.Addr {
	if bits == 32 {
		var b [4]byte
		copy(b[:], wordToBytes(u, 32))
		return netip.AddrFrom4(b)
	}
	var b [16]byte
	copy(b[:], wordToBytes(u, 128))
	return netip.AddrFrom16(b)
}
