package xiprange

import "errors"

var (
	// ErrInvalidAddress 表示地址语法非法或字节长度不是 4/16。
	ErrInvalidAddress = errors.New("xiprange: invalid IP address")

	// ErrInvalidPrefix 表示前缀长度非数字或超出 [0, 地址位长] 区间。
	ErrInvalidPrefix = errors.New("xiprange: invalid prefix length")

	// ErrInvalidCIDRSyntax 表示 CIDR 文本为空或 '/' 分隔符数量不为一。
	ErrInvalidCIDRSyntax = errors.New("xiprange: invalid CIDR block syntax")
)
