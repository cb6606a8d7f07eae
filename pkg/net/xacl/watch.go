package xacl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	retry "github.com/avast/retry-go/v5"
	"github.com/fsnotify/fsnotify"
)

// Watcher 监视访问控制列表配置文件并自动重载。
//
// 当前列表通过 [Watcher.Current] 获取，重载以原子指针替换完成，
// 查询路径上没有锁。重载失败时保留上一份合法列表。
type Watcher struct {
	path string
	fw   *fsnotify.Watcher
	opts *options

	current atomic.Pointer[List]

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// Watch 加载配置文件并开始监视变更。
//
// 初始加载失败时直接返回错误，不会启动后台 goroutine。
// 调用方必须在不再需要时调用 [Watcher.Stop] 释放资源。
//
// 设计决策: 监视配置文件所在目录而非文件本身——
// 编辑器和配置管理工具普遍以 rename 原子替换文件，
// 直接监视文件会在第一次替换后失去事件。
func Watch(path string, opts ...Option) (*Watcher, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if _, err := detectFormat(path); err != nil {
		return nil, err
	}

	options := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(options)
	}

	initial, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:   path,
		fw:     fw,
		opts:   options,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	w.current.Store(initial)

	go w.loop(ctx)
	return w, nil
}

// Current 返回当前生效的列表。永不返回 nil。
func (w *Watcher) Current() *List {
	return w.current.Load()
}

// Path 返回被监视的配置文件路径。
func (w *Watcher) Path() string {
	return w.path
}

// Stop 停止监视并释放资源。可安全地多次调用。
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.cancel()
		w.fw.Close()
		<-w.done
	})
}

// loop 消费 fsnotify 事件，防抖后触发重载。
// 防抖和重载都在本 goroutine 内完成，Stop 返回时不再有在途工作。
func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)

	debounce := time.NewTimer(w.opts.debounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false
	base := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			debounce.Stop()
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				debounce.Stop()
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if pending && !debounce.Stop() {
				<-debounce.C
			}
			debounce.Reset(w.opts.debounce)
			pending = true

		case <-debounce.C:
			pending = false
			w.reload(ctx)

		case err, ok := <-w.fw.Errors:
			if !ok {
				debounce.Stop()
				return
			}
			w.opts.logger.Warn("acl watcher error",
				slog.String("path", w.path),
				slog.Any("error", err),
			)
		}
	}
}

// reload 重新加载配置并原子替换当前列表。
// 文件读取带重试；任何失败都保留旧列表。
func (w *Watcher) reload(ctx context.Context) {
	list, err := retry.NewWithData[*List](
		retry.Context(ctx),
		retry.Attempts(w.opts.retryAttempts),
		retry.Delay(w.opts.retryDelay),
		retry.LastErrorOnly(true),
	).Do(func() (*List, error) {
		return LoadFile(w.path)
	})

	if err != nil {
		w.opts.logger.Warn("acl reload failed, keeping previous list",
			slog.String("path", w.path),
			slog.Any("error", err),
		)
		if w.opts.onReload != nil {
			w.opts.onReload(nil, err)
		}
		return
	}

	w.current.Store(list)
	w.opts.logger.Info("acl reloaded",
		slog.String("path", w.path),
		slog.Int("allow_blocks", len(list.AllowBlocks())),
		slog.Int("deny_blocks", len(list.DenyBlocks())),
	)
	if w.opts.onReload != nil {
		w.opts.onReload(list, nil)
	}
}
