package xcomp

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Initializable 是需要显式初始化的组件。
type Initializable interface {
	// Initialize 完成组件启动，只应成功执行一次。
	Initialize(ctx context.Context) error
}

// Destructible 是需要显式销毁的组件。
type Destructible interface {
	// Destroy 释放组件资源，必须幂等。
	Destroy()
}

// InitializeAll 并发初始化全部组件。
// 任一组件失败时取消其余组件的 ctx 并返回第一个错误；
// 已经成功初始化的组件不会被回滚，调用方决定是否销毁。
func InitializeAll(ctx context.Context, components ...Initializable) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range components {
		g.Go(func() error {
			return c.Initialize(ctx)
		})
	}
	return g.Wait()
}

// DestroyAll 按传入顺序的逆序逐个销毁组件，
// 后初始化的组件先销毁。nil 组件被跳过。
func DestroyAll(components ...Destructible) {
	for i := len(components) - 1; i >= 0; i-- {
		if components[i] != nil {
			components[i].Destroy()
		}
	}
}
