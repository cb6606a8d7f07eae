// Package xiprange 提供 CIDR 地址范围的表示与包含判断。
//
// xiprange 围绕不可变值类型 [Range] 构建：一个 Range 表示一个 CIDR 块
// （IPv4 为 32 位，IPv6 为 128 位），对外提供网络地址、掩码长度、
// 原始主机地址等访问器，以及 O(1) 的 [Range.Contains] 包含查询。
// 与 [go4.org/netipx] 互操作：[Range.IPRange] 转换为 [netipx.IPRange]，
// [ParseCIDRBlocks] 将多个 CIDR 块合并为 [*netipx.IPSet]。
//
// # 核心功能
//
//   - iprange.go: [Range] 值类型、[New] / [NewFromBytes] 构造、[Range.Contains] 查询
//   - parse.go: [ParseCIDRBlock] 解析 "addr/prefix" 形式的 CIDR 文本
//   - set.go: [ParseCIDRBlocks] / [MergeBlocks] 基于 netipx 的集合操作
//   - uint128.go: 定长 128 位字的位运算（内部）
//
// # 快速示例
//
// 解析 CIDR 块并判断包含关系：
//
//	r, _ := xiprange.ParseCIDRBlock("192.168.0.0/16")
//	r.Contains(netip.MustParseAddr("192.168.5.9"))   // true
//	r.Contains(netip.MustParseAddr("192.169.0.1"))   // false
//
// 从主机地址构造范围，网络地址自动推导：
//
//	r, _ := xiprange.ParseCIDRBlock("10.0.0.5/24")
//	r.NetworkAddr()        // 10.0.0.0
//	host, ok := r.HostAddr() // 10.0.0.5, true
//
// 批量解析并合并为 IPSet：
//
//	set, _ := xiprange.ParseCIDRBlocks([]string{"10.0.0.0/8", "192.168.0.0/16"})
//	set.Contains(netip.MustParseAddr("10.1.2.3"))    // true
//
// # 表示方式
//
// Range 内部使用一对 uint64 组成的定长 128 位字存储网络地址与掩码，
// 字节序为网络序（大端）：字节数组解释为大端无符号整数，位 0 是最后
// 一个字节的最低位。掩码由最高的 maskSize 位置 1 构成，
// network 恒等于 hostAddress AND mask，构造后不再变化。
//
// # 设计决策
//
//   - 定长字而非可增长位集合：32/128 位是仅有的两种宽度，
//     AND 掩码退化为一至两条机器指令，同时消除越界问题。
//   - [ParseCIDRBlock] 只接受字面量地址：本地语法校验后交给
//     [netip.ParseAddr] 完成解析，任何情况下都不会触发 DNS 查询。
//   - 地址族按 ':' 分类做语法校验；IPv4-mapped IPv6（"::ffff:a.b.c.d"）
//     的点分写法会被 IPv6 语法校验拒绝。[New] 与 [NewFromBytes]
//     收到 IPv4-mapped 输入（netip.Addr 或 16 字节形式）时
//     统一 Unmap 为纯 IPv4（32 位范围），与候选地址的分类规则一致。
//   - 跨族查询定义为不包含而非错误：IPv6 范围对 4 字节候选地址
//     一律返回 false，反之亦然。
//   - 构造期立即完成全部校验：要么得到合法的不可变 Range，
//     要么返回错误，不存在部分初始化状态。查询本身永不失败。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xiprange.ParseCIDRBlock("10.0.0.0")
//	if errors.Is(err, xiprange.ErrInvalidCIDRSyntax) {
//	    // 缺少 '/' 分隔符
//	}
//
//   - [ErrInvalidCIDRSyntax]: 输入为空、缺少或多出 '/' 分隔符
//   - [ErrInvalidAddress]: 地址部分语法非法，或字节长度不是 4/16
//   - [ErrInvalidPrefix]: 前缀长度非数字，或超出 [0, 地址位长] 区间
//
// # 并发安全
//
// Range 构造后完全不可变，可在任意多个 goroutine 间共享，
// 无需同步。所有操作均为有界的同步纯计算，不做 I/O。
package xiprange
