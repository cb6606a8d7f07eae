// Package xcomp 提供组件生命周期原语。
//
// # 核心功能
//
//   - [Initializable] / [Destructible]：带初始化和销毁阶段的组件
//     接口约定。
//   - [InitializeAll]：并发初始化一组组件，任一失败即取消其余。
//   - [DestroyAll]：按注册的逆序销毁，后初始化的先销毁。
//   - [Guard]：嵌入式状态机，帮组件实现"只初始化一次、销毁后
//     拒绝使用"的约束。
//
// # 设计决策
//
//   - 初始化并发执行，组件间的启动耗时互相重叠；销毁保持
//     逆序串行，依赖方先于被依赖方关闭。
//   - Guard 用原子状态机而不是互斥锁，热路径上的状态检查
//     无锁完成。
//
// # 快速示例
//
//	type server struct {
//		xcomp.Guard
//	}
//
//	func (s *server) Initialize(ctx context.Context) error {
//		if err := s.Guard.Initialize(); err != nil {
//			return err
//		}
//		// 真正的启动逻辑
//		return nil
//	}
package xcomp
