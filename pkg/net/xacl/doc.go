// Package xacl 提供基于 CIDR 块的地址访问控制列表。
//
// xacl 在 [xiprange] 之上构建授权/过滤层：
// 把 allow / deny 两组 CIDR 块编译为合并后的 [*netipx.IPSet]，
// 提供 O(log n) 的 [List.Allowed] 查询；支持从 YAML/JSON 配置
// 加载列表，并可选地监视配置文件变更自动重载。
//
// # 核心功能
//
//   - list.go: 不可变的 [List] 值，allow/deny 集合编译与查询
//   - loader.go: koanf 驱动的 [LoadFile] / [LoadBytes] 配置加载
//   - watch.go: fsnotify 驱动的 [Watcher]，防抖重载 + 原子替换
//
// # 配置格式
//
// YAML（JSON 同构）：
//
//	allow:
//	  - 10.0.0.0/8
//	  - 192.168.0.0/16
//	deny:
//	  - 10.13.0.0/16
//
// # 匹配规则
//
//   - deny 命中优先于 allow 命中
//   - allow 列表为空时默认放行（纯黑名单模式）
//   - allow 列表非空时仅放行命中 allow 的地址（白名单模式）
//
// # 快速示例
//
//	list, _ := xacl.NewList([]string{"10.0.0.0/8"}, []string{"10.13.0.0/16"})
//	list.Allowed(netip.MustParseAddr("10.1.2.3"))   // true
//	list.Allowed(netip.MustParseAddr("10.13.0.9"))  // false（deny 优先）
//	list.Allowed(netip.MustParseAddr("8.8.8.8"))    // false（不在白名单）
//
// 监视配置文件并自动重载：
//
//	w, _ := xacl.Watch("/etc/app/acl.yaml",
//	    xacl.WithDebounce(200*time.Millisecond),
//	    xacl.WithLogger(logger),
//	)
//	defer w.Stop()
//	w.Current().Allowed(addr)
//
// # 设计决策
//
//   - List 不可变：重载通过构造新 List 并原子替换指针完成，
//     查询路径上没有锁。
//   - 重载失败保留旧列表：配置文件短暂不可读或内容非法时，
//     Watcher 记录日志并继续使用上一份合法列表，不会清空规则。
//   - 文件读取通过 retry-go 做有限次重试，吸收编辑器原子写入
//     （rename + truncate）造成的瞬时读取失败。
//   - 库代码不打日志；仅 Watcher 的后台 goroutine 接受可选的
//     *slog.Logger，默认丢弃。
package xacl
