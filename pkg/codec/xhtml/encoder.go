package xhtml

import (
	"strconv"
	"strings"
)

// immuneHTML 是 HTML 正文上下文的豁免字符。
var immuneHTML = map[rune]bool{',': true, '.': true, '-': true, '_': true, ' ': true}

// immuneHTMLAttr 是 HTML 属性上下文的豁免字符，不含空格。
var immuneHTMLAttr = map[rune]bool{',': true, '.': true, '-': true, '_': true}

// EncodeForHTML 对字符串做 HTML 正文上下文转义。
// 豁免字符为 , . - _ 和空格。
func EncodeForHTML(input string) string {
	return encode(immuneHTML, input)
}

// EncodeForHTMLAttribute 对字符串做 HTML 属性值上下文转义。
// 豁免字符为 , . - _（空格也会被转义）。
func EncodeForHTMLAttribute(input string) string {
	return encode(immuneHTMLAttr, input)
}

func encode(immune map[rune]bool, input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		encodeRune(&b, immune, r)
	}
	return b.String()
}

func encodeRune(b *strings.Builder, immune map[rune]bool, r rune) {
	if immune[r] || isASCIIAlnum(r) {
		b.WriteRune(r)
		return
	}

	// HTML 非法控制字符统一替换为 U+FFFD 后再编码。
	if isIllegalInHTML(r) {
		r = '�'
	}

	if name, ok := namedEntities[r]; ok {
		b.WriteByte('&')
		b.WriteString(name)
		b.WriteByte(';')
		return
	}

	b.WriteString("&#x")
	b.WriteString(strconv.FormatInt(int64(r), 16))
	b.WriteByte(';')
}

func isASCIIAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// isIllegalInHTML 判断字符是否属于 HTML 中不允许出现的控制区间。
// \t \n \r 是合法空白，不在其列。
func isIllegalInHTML(r rune) bool {
	if r <= 0x1f {
		return r != '\t' && r != '\n' && r != '\r'
	}
	return r >= 0x7f && r <= 0x9f
}
