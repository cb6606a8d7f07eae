package xstr

import (
	"fmt"
	"strings"
)

// TrimOrEmpty 去除首尾空白，结果可能为空字符串。
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// TrimNonEmpty 去除首尾空白；结果非空时 ok 为 true。
// 用于"空白等价于缺失"的配置语义。
func TrimNonEmpty(s string) (trimmed string, ok bool) {
	trimmed = strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// ToList 按分隔符集合把字符串拆分为切片。
// delimiters 中的每个字符都是分隔符，连续分隔符不产生空元素；
// 但当原始输入以完整的 delimiters 字符串结尾时，结果末尾
// 追加一个空字符串——这保留了"尾部存在一个空值"的信息。
// 注意尾部判断用的是整个 delimiters 串而非其中任一字符。
// 输入修剪后为空时返回空切片。
func ToList(s, delimiters string) []string {
	trimmed, ok := TrimNonEmpty(s)
	if !ok {
		return []string{}
	}

	values := strings.FieldsFunc(trimmed, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})
	if strings.HasSuffix(s, delimiters) {
		values = append(values, "")
	}
	return values
}

// ListToString 把任意切片按分隔符拼接为单个字符串。
// 元素使用 fmt.Sprint 转换。
func ListToString[T any](values []T, delimiter string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, delimiter)
}

// NormalizeSlice 规范化字符串切片：
// 逐个修剪首尾空白，去掉修剪后为空的元素。
// nil 输入返回空切片。
func NormalizeSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed, ok := TrimNonEmpty(v); ok {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}

// BoolOf 解析 xs:boolean 文本。
//
// 返回值语义：
//   - 空白或空输入: present 为 false，无错误
//   - "1" / "true": (true, true, nil)
//   - "0" / "false": (false, true, nil)
//   - 其他: [ErrInvalidBoolean]
//
// 注意与 XML Schema 一致，不接受 "True"/"TRUE" 等大小写变体。
func BoolOf(s string) (value, present bool, err error) {
	trimmed, ok := TrimNonEmpty(s)
	if !ok {
		return false, false, nil
	}
	switch trimmed {
	case "1", "true":
		return true, true, nil
	case "0", "false":
		return false, true, nil
	default:
		return false, false, fmt.Errorf("%w: %q", ErrInvalidBoolean, trimmed)
	}
}
