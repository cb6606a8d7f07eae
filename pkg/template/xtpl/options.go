package xtpl

import "text/template"

// Option 配置 [Repository]。
type Option func(*options)

type options struct {
	cacheSize int
	funcs     template.FuncMap
}

func defaultOptions() *options {
	return &options{
		cacheSize: 128,
	}
}

// WithCacheSize 设置解析缓存的容量，默认 128。
func WithCacheSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.cacheSize = size
		}
	}
}

// WithFuncs 设置模板可用的函数表，对仓库解析的所有模板生效。
func WithFuncs(funcs template.FuncMap) Option {
	return func(o *options) {
		o.funcs = funcs
	}
}
