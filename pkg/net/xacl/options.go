package xacl

import (
	"log/slog"
	"time"
)

// Option 定义 Watcher 配置选项。
type Option func(*options)

type options struct {
	logger        *slog.Logger
	debounce      time.Duration
	retryAttempts uint
	retryDelay    time.Duration
	onReload      func(*List, error)
}

func defaultOptions() *options {
	return &options{
		logger:        slog.New(slog.DiscardHandler),
		debounce:      100 * time.Millisecond,
		retryAttempts: 3,
		retryDelay:    50 * time.Millisecond,
	}
}

// WithLogger 设置 Watcher 后台 goroutine 使用的日志器。
// 默认丢弃全部日志。nil 被静默忽略。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDebounce 设置文件变更防抖时间。
// 在该时间窗口内的多次变更只触发一次重载，默认 100ms。
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// WithRetry 设置重载时文件读取的重试次数与间隔。
// 默认 3 次、间隔 50ms，用于吸收编辑器原子写入造成的瞬时读取失败。
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(o *options) {
		if attempts > 0 {
			o.retryAttempts = attempts
		}
		if delay > 0 {
			o.retryDelay = delay
		}
	}
}

// WithOnReload 设置重载回调。
// 每次重载尝试后调用：成功时携带新列表，失败时携带错误和 nil 列表。
func WithOnReload(fn func(list *List, err error)) Option {
	return func(o *options) {
		o.onReload = fn
	}
}
