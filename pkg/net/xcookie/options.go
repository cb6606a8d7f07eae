package xcookie

import "net/http"

// Option 配置 [Manager]。
type Option func(*options)

type options struct {
	path     string
	domain   string
	secure   bool
	httpOnly bool
	maxAge   int
	sameSite http.SameSite
}

func defaultOptions() *options {
	return &options{
		path:     "/",
		secure:   true,
		httpOnly: true,
		// maxAge 0 表示不写 Max-Age 属性，即会话 Cookie
		maxAge:   0,
		sameSite: http.SameSiteDefaultMode,
	}
}

// WithPath 设置 Cookie 的 Path 属性，默认 "/"。
func WithPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.path = path
		}
	}
}

// WithDomain 设置 Cookie 的 Domain 属性，默认不写。
func WithDomain(domain string) Option {
	return func(o *options) {
		o.domain = domain
	}
}

// WithSecure 控制 Secure 属性，默认开启。
func WithSecure(secure bool) Option {
	return func(o *options) {
		o.secure = secure
	}
}

// WithHTTPOnly 控制 HttpOnly 属性，默认开启。
func WithHTTPOnly(httpOnly bool) Option {
	return func(o *options) {
		o.httpOnly = httpOnly
	}
}

// WithMaxAge 设置 Cookie 的生存秒数。
// 默认 0，即不写 Max-Age、随会话结束失效。
func WithMaxAge(seconds int) Option {
	return func(o *options) {
		if seconds > 0 {
			o.maxAge = seconds
		}
	}
}

// WithSameSite 设置 SameSite 属性。
func WithSameSite(mode http.SameSite) Option {
	return func(o *options) {
		o.sameSite = mode
	}
}
