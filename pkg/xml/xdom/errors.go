package xdom

import "errors"

var (
	// ErrInvalidDateTime 表示文本不是合法的 xs:dateTime。
	ErrInvalidDateTime = errors.New("xdom: invalid xs:dateTime value")

	// ErrInvalidDuration 表示文本不是可转换的 xs:duration。
	// 含年或月分量的合法 xs:duration 也落入此错误：
	// 这类分量没有固定时长，无法映射到 time.Duration。
	ErrInvalidDuration = errors.New("xdom: invalid xs:duration value")
)
