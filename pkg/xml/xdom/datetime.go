package xdom

import (
	"fmt"
	"strings"
	"time"
)

// dateTimeLayouts 按尝试顺序排列：先带时区，再裸形式（按 UTC 解释）。
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
}

// ParseDateTime 解析 xs:dateTime 文本。
// 不带时区偏移的值按 UTC 解释。
func ParseDateTime(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrInvalidDateTime)
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, trimmed)
}

// FormatDateTime 输出 xs:dateTime 文本，UTC、毫秒精度。
//
//	2024-05-01T08:30:00.000Z
func FormatDateTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
