package xcomp

import "errors"

var (
	// ErrAlreadyInitialized 表示组件已完成初始化，不能重复初始化。
	ErrAlreadyInitialized = errors.New("xcomp: component already initialized")

	// ErrNotInitialized 表示组件尚未初始化就被使用。
	ErrNotInitialized = errors.New("xcomp: component not initialized")

	// ErrDestroyed 表示组件已销毁，任何操作都被拒绝。
	ErrDestroyed = errors.New("xcomp: component destroyed")
)
