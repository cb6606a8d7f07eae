// Package xtpl 提供 text/template 的仓库式封装。
//
// # 核心功能
//
// [Repository] 负责模板的解析与缓存：相同源文本只解析一次，
// 解析结果按源文本做 LRU 缓存。[Template] 是解析产物的不可变
// 句柄，提供合并到字符串或 io.Writer 的便捷方法。
//
// # 设计决策
//
//   - 字面量模板没有天然的名字，仓库用随机标识符为其命名，
//     调用方通过 [Template.Name] 取回。
//   - 缓存使用容量受限的 LRU 而不是无界 map，长生命周期进程里
//     动态生成的模板源不会把内存撑爆。
//   - 合并失败返回错误而不是输出半成品，[Template.Merge] 在内部
//     缓冲完成后才返回字符串。
//
// # 快速示例
//
//	repo, _ := xtpl.NewRepository()
//	tpl, err := repo.FromLiteral("Hello, {{.Name}}!")
//	if err != nil { ... }
//	out, err := tpl.Merge(map[string]string{"Name": "world"})
//
// # 并发安全
//
// Repository 与 Template 的全部方法都是并发安全的。
package xtpl
