// Package xhtml 提供面向输出转义的 HTML 实体编码。
//
// 编码策略沿用 OWASP ESAPI 的白名单模型：
// 只有 ASCII 字母数字和显式豁免的字符原样输出，
// 其余字符一律转义为命名实体（如 &amp;）或十六进制数字实体
// （如 &#x2603;）。HTML 中非法的控制字符（00-08、0B-0C、0E-1F、
// 7F-9F）替换为 U+FFFD 后再转义，避免注入不可见字节。
//
//	xhtml.EncodeForHTML(`<a href="x">`)  // &lt;a href=&quot;x&quot;&gt;
//
// [EncodeForHTML] 与 [EncodeForHTMLAttribute] 只在豁免字符集上不同：
// 属性上下文不豁免空格。
package xhtml
