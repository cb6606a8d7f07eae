package xacl

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"

	"github.com/omeyang/xsupport/pkg/net/xiprange"
)

// List 是编译后的地址访问控制列表。
//
// List 构造后不可变，可在任意多个 goroutine 间共享查询。
// 零值 List 等价于空 allow/deny，即默认放行全部地址。
type List struct {
	allow *netipx.IPSet
	deny  *netipx.IPSet

	allowBlocks []string
	denyBlocks  []string
}

// NewList 把 allow / deny 两组 CIDR 块编译为 List。
// 任一块解析失败时返回 [xiprange] 的对应错误，List 为 nil。
// 两组都可以为空。
func NewList(allow, deny []string) (*List, error) {
	allowSet, err := xiprange.ParseCIDRBlocks(allow)
	if err != nil {
		return nil, fmt.Errorf("compile allow list: %w", err)
	}
	denySet, err := xiprange.ParseCIDRBlocks(deny)
	if err != nil {
		return nil, fmt.Errorf("compile deny list: %w", err)
	}
	return &List{
		allow:       allowSet,
		deny:        denySet,
		allowBlocks: append([]string(nil), allow...),
		denyBlocks:  append([]string(nil), deny...),
	}, nil
}

// Allowed 报告 addr 是否被列表放行。
//
// 规则：deny 命中一律拒绝；allow 为空时默认放行，
// 否则仅放行命中 allow 的地址。无效地址一律拒绝。
func (l *List) Allowed(addr netip.Addr) bool {
	if !addr.IsValid() {
		return false
	}
	if l == nil {
		return true
	}
	if l.deny != nil && l.deny.Contains(addr.Unmap()) {
		return false
	}
	if len(l.allowBlocks) == 0 {
		return true
	}
	return l.allow != nil && l.allow.Contains(addr.Unmap())
}

// AllowBlocks 返回构造时的 allow CIDR 块副本。
func (l *List) AllowBlocks() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.allowBlocks...)
}

// DenyBlocks 返回构造时的 deny CIDR 块副本。
func (l *List) DenyBlocks() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.denyBlocks...)
}
