package xiprange

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// ParseCIDRBlocks 解析多个 CIDR 块并合并为 [*netipx.IPSet]。
// 重叠和相邻的块会被自动合并，查询复杂度 O(log n)。
// 任一块解析失败时返回错误并标注出错的块。
// 空切片或 nil 返回空的 IPSet（非 nil）。
func ParseCIDRBlocks(blocks []string) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, s := range blocks {
		r, err := ParseCIDRBlock(s)
		if err != nil {
			return nil, fmt.Errorf("parse CIDR block %q: %w", s, err)
		}
		b.AddRange(r.IPRange())
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build IPSet: %w", err)
	}
	return set, nil
}

// MergeBlocks 合并多个 Range 为最少数量的 CIDR 前缀。
// 返回的前缀已排序且互不重叠。
// 输入包含零值 Range 时返回 [ErrInvalidAddress]。
// 空切片或 nil 返回 (nil, nil)。
func MergeBlocks(ranges []Range) ([]netip.Prefix, error) {
	if len(ranges) == 0 {
		return nil, nil
	}
	var b netipx.IPSetBuilder
	for i, r := range ranges {
		if !r.IsValid() {
			return nil, fmt.Errorf("%w: block [%d] is the zero Range", ErrInvalidAddress, i)
		}
		b.AddPrefix(r.Prefix())
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("merge blocks: %w", err)
	}
	return set.Prefixes(), nil
}
