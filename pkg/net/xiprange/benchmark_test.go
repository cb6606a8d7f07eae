package xiprange

import (
	"net/netip"
	"testing"
)

func BenchmarkContains_V4(b *testing.B) {
	r := MustParseCIDRBlock("192.168.0.0/16")
	addr := netip.MustParseAddr("192.168.5.9")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Contains(addr)
	}
}

func BenchmarkContains_V6(b *testing.B) {
	r := MustParseCIDRBlock("2001:db8::/32")
	addr := netip.MustParseAddr("2001:db8::1")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Contains(addr)
	}
}

func BenchmarkContainsBytes_V4(b *testing.B) {
	r := MustParseCIDRBlock("192.168.0.0/16")
	addr := []byte{192, 168, 5, 9}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.ContainsBytes(addr)
	}
}

func BenchmarkParseCIDRBlock_V4(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = ParseCIDRBlock("192.168.0.0/16")
	}
}

func BenchmarkParseCIDRBlock_V6(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = ParseCIDRBlock("2001:db8::/32")
	}
}

func BenchmarkParseCIDRBlocks(b *testing.B) {
	blocks := []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16", "2001:db8::/32"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = ParseCIDRBlocks(blocks)
	}
}
