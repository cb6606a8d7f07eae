// Package xcookie 提供统一属性的 HTTP Cookie 读写。
//
// [Manager] 把路径、域、Secure、HttpOnly 等属性集中配置一次，
// 之后的设置与清除都带上相同属性。清除 Cookie 时属性必须与
// 设置时一致，否则浏览器会把它当作另一个 Cookie，这是集中
// 管理属性的主要动机。
//
//	mgr := xcookie.New(xcookie.WithPath("/app"))
//	mgr.Add(w, "session", id)
//	mgr.Unset(w, "session")
//
// 默认 Secure 和 HttpOnly 都开启，明文站点需显式关闭 Secure。
package xcookie
