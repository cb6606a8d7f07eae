// Package xstr 提供字符串处理工具函数：
// 安全修剪、分隔串与切片互转、切片规范化，以及 xs:boolean 解析。
package xstr
