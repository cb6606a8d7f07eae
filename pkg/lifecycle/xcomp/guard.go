package xcomp

import "sync/atomic"

// Guard 的三个状态，只允许单向迁移。
const (
	stateNew int32 = iota
	stateInitialized
	stateDestroyed
)

// Guard 是组件状态机：新建 → 已初始化 → 已销毁。
// 零值即为新建状态，适合直接嵌入组件结构体。
type Guard struct {
	state atomic.Int32
}

// Initialize 把状态迁移到已初始化。
// 重复初始化返回 [ErrAlreadyInitialized]，销毁后返回 [ErrDestroyed]。
func (g *Guard) Initialize() error {
	if g.state.CompareAndSwap(stateNew, stateInitialized) {
		return nil
	}
	if g.state.Load() == stateDestroyed {
		return ErrDestroyed
	}
	return ErrAlreadyInitialized
}

// CheckInitialized 校验组件处于可用状态，
// 供组件的业务方法在入口处调用。
func (g *Guard) CheckInitialized() error {
	switch g.state.Load() {
	case stateInitialized:
		return nil
	case stateDestroyed:
		return ErrDestroyed
	default:
		return ErrNotInitialized
	}
}

// Destroy 把状态迁移到已销毁，返回是否由本次调用完成迁移。
// 可从任意状态进入，幂等。
func (g *Guard) Destroy() bool {
	for {
		current := g.state.Load()
		if current == stateDestroyed {
			return false
		}
		if g.state.CompareAndSwap(current, stateDestroyed) {
			return true
		}
	}
}

// IsInitialized 报告组件是否处于已初始化状态。
func (g *Guard) IsInitialized() bool {
	return g.state.Load() == stateInitialized
}

// IsDestroyed 报告组件是否已销毁。
func (g *Guard) IsDestroyed() bool {
	return g.state.Load() == stateDestroyed
}
