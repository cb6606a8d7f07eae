// Package xtypedmap 提供按值类型建立二级索引的映射容器。
//
// # 核心功能
//
// [Map] 在普通键值映射之上，为一组注册过的值类型维护类型 → 子映射
// 的索引。写入时自动归类，[Subset] 以 O(子集大小) 取出某一类型的
// 全部条目，无需遍历整个映射。
//
// # 设计决策
//
//   - 类型注册走包级泛型函数 [Register]，因为 Go 的方法不能携带
//     独立类型参数。注册后立即重建索引，已有条目同样被归类。
//   - 值的归类使用动态类型对注册类型的可赋值性判断，注册接口
//     类型时实现该接口的所有值都会被索引。
//   - nil 值被视为属于所有已注册类型。
//   - [Subset] 返回副本而非视图，调用方可以放心修改。
//
// # 并发安全
//
// Map 不做内部加锁，并发读写需要调用方自行同步。
package xtypedmap
