package xcookie

import "net/http"

// Manager 以固定属性读写 Cookie。通过 [New] 创建，创建后不可变，
// 可在多个请求间并发复用。
type Manager struct {
	opts *options
}

// New 创建 Cookie 管理器。
func New(opts ...Option) *Manager {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Manager{opts: o}
}

// Add 写入一个带统一属性的 Cookie。
func (m *Manager) Add(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, m.cookie(name, value, m.opts.maxAge))
}

// Unset 清除同名 Cookie：空值加 MaxAge<0，
// 属性与 [Manager.Add] 保持一致以确保命中同一个 Cookie。
func (m *Manager) Unset(w http.ResponseWriter, name string) {
	http.SetCookie(w, m.cookie(name, "", -1))
}

// Get 从请求中读取 Cookie 值。
func (m *Manager) Get(r *http.Request, name string) (string, bool) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

func (m *Manager) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     m.opts.path,
		Domain:   m.opts.domain,
		Secure:   m.opts.secure,
		HttpOnly: m.opts.httpOnly,
		MaxAge:   maxAge,
		SameSite: m.opts.sameSite,
	}
}
