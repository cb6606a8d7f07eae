// Package xdom 提供 XML Schema 时间类型与 Go 时间类型的互转。
//
// # 核心功能
//
//   - xs:dateTime 词法形式 ↔ [time.Time]，格式化输出统一为 UTC
//     毫秒精度。
//   - xs:duration 词法形式 ↔ [time.Duration]。年月分量没有固定
//     长度，无法映射到确定的 Duration，解析时直接拒绝。
//
// # 设计决策
//
//   - 不带时区的 xs:dateTime 按 UTC 解释，避免结果随宿主机
//     时区漂移。
//   - 格式化只舍入到毫秒，与常见联邦协议栈的线格式一致。
//
// # 错误处理
//
// 解析失败返回 [ErrInvalidDateTime] 或 [ErrInvalidDuration]，
// 可用 errors.Is 判断。
package xdom
