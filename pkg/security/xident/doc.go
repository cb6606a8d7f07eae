// Package xident 提供随机标识符生成。
//
// 基于版本 4（随机）UUID，适合用作会话、请求等一次性标识。
// XML ID 类型不允许以数字开头，[GenerateXMLSafe] 在 UUID 前
// 加下划线前缀以满足该约束。
package xident
