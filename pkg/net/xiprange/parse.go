package xiprange

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// ParseCIDRBlock 解析 "addr/prefix" 形式的 CIDR 块定义。
//
// 解析流程：
//  1. 去除首尾空白；结果为空返回 [ErrInvalidCIDRSyntax]
//  2. 按 '/' 拆分，分隔符缺失或多于一个返回 [ErrInvalidCIDRSyntax]
//  3. 地址部分含 ':' 按 IPv6 校验，否则按 IPv4 校验，
//     语法非法返回 [ErrInvalidAddress]
//  4. 前缀部分解析为非负整数，非数字返回 [ErrInvalidPrefix]
//  5. 地址交给 [netip.ParseAddr] 完成最终解析后委托给 [New]
//
// 只接受字面量地址，任何情况下不做 DNS 解析。
// 本地校验有意保持宽松（仅检查分段数值区间），
// 完整的结构校验（如多个 "::" 缩写）由 netip.ParseAddr 兜底完成。
func ParseCIDRBlock(cidrBlock string) (Range, error) {
	block := strings.TrimSpace(cidrBlock)
	if block == "" {
		return Range{}, fmt.Errorf("%w: CIDR block definition can not be empty", ErrInvalidCIDRSyntax)
	}

	parts := strings.Split(block, "/")
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("%w: check for missing or extra slash in %q", ErrInvalidCIDRSyntax, block)
	}
	addrPart, prefixPart := parts[0], parts[1]

	// 任何冒号意味着 IPv6，否则按 IPv4 处理
	if strings.Contains(addrPart, ":") {
		if err := validateV6Address(addrPart); err != nil {
			return Range{}, err
		}
	} else {
		if err := validateV4Address(addrPart); err != nil {
			return Range{}, err
		}
	}

	maskSize, err := strconv.Atoi(prefixPart)
	if err != nil {
		return Range{}, fmt.Errorf("%w: prefix %q is not a number", ErrInvalidPrefix, prefixPart)
	}

	addr, err := netip.ParseAddr(addrPart)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, addrPart, err)
	}

	return New(addr, maskSize)
}

// validateV4Address 校验 IPv4 地址语法：
// 恰好 4 个点分十进制分段，每段数值在 [0, 255]。
func validateV4Address(address string) error {
	components := strings.Split(address, ".")
	if len(components) != 4 {
		return fmt.Errorf("%w: IPv4 address should have four components: %q", ErrInvalidAddress, address)
	}
	for _, component := range components {
		value, err := strconv.Atoi(component)
		if err != nil {
			return fmt.Errorf("%w: IPv4 component %q is not a number", ErrInvalidAddress, component)
		}
		if value < 0 || value > 255 {
			return fmt.Errorf("%w: IPv4 component range error: %q", ErrInvalidAddress, component)
		}
	}
	return nil
}

// validateV6Address 校验 IPv6 地址语法：
// 冒号分隔的每个非空分段必须是 [0, 0xFFFF] 区间的十六进制数。
// 分段个数与 "::" 缩写的合法性交给 netip.ParseAddr 校验。
// 点分写法（IPv4-mapped）与 zone ID 会在此处被拒绝。
func validateV6Address(address string) error {
	for _, component := range strings.Split(address, ":") {
		if component == "" {
			continue
		}
		value, err := strconv.ParseUint(component, 16, 32)
		if err != nil {
			return fmt.Errorf("%w: IPv6 component %q is not a hexadecimal number", ErrInvalidAddress, component)
		}
		if value > 0xFFFF {
			return fmt.Errorf("%w: IPv6 component range error: %q", ErrInvalidAddress, component)
		}
	}
	return nil
}
