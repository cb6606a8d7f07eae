package xstr

import "errors"

// ErrInvalidBoolean 表示 xs:boolean 文本不是 0/1/true/false 之一。
var ErrInvalidBoolean = errors.New("xstr: XML booleans must be 0/1/true/false")
