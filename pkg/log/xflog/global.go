package xflog

import (
	"sync"
	"sync/atomic"
)

// =============================================================================
// 进程级默认 Logger
//
// 定位：宿主应用显式 opt-in 的注册表，初始化/替换/重置都是显式操作。
// 注册表持有的是非拥有引用：Logger 的生命周期（含 Close）完全由
// 安装它的一方管理，库侧推荐依赖注入（显式持有 Logger）。
// =============================================================================

// globalLogger 进程级默认 Logger（并发安全）
var globalLogger atomic.Pointer[Logger]

// globalMu 保护 globalOnce 及其 Do 执行（也用于 ResetDefault）
var globalMu sync.Mutex

// globalOnce 确保惰性默认 Logger 只初始化一次
var globalOnce sync.Once

// defaultLogger 创建惰性默认 Logger。
//
// 在持锁状态下执行 once.Do，确保 ResetDefault（重置 globalOnce）与
// once.Do 之间不会发生并发竞争。初始化后 Default() 走 atomic.Load
// 快速路径，不进入此函数。
func defaultLogger() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()

	globalOnce.Do(func() {
		// 惰性默认：WARN 级别、零目标（丢弃一切）。
		// 注册表不替宿主构造任何 sink；在 SetDefault 安装真实 Logger
		// 之前，经由默认 Logger 的日志全部静默丢弃。
		globalLogger.Store(New())
	})
	return globalLogger.Load()
}

// Default 返回进程级默认 Logger。
//
// 未安装时惰性创建一个零目标的 WARN 级 Logger（丢弃一切）。
func Default() *Logger {
	if l := globalLogger.Load(); l != nil {
		return l
	}
	return defaultLogger()
}

// SetDefault 安装进程级默认 Logger。
//
// 传入 nil 会被忽略。注册表不接管 Logger 的所有权：
// 替换前的 Logger 由原安装方负责 Close。
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	globalLogger.Store(l)
}

// ResetDefault 重置默认 Logger 为未初始化状态（仅用于测试）。
//
// 不会 Close 当前安装的 Logger——注册表持有的是非拥有引用。
func ResetDefault() {
	globalMu.Lock()
	globalLogger.Store(nil)
	globalOnce = sync.Once{}
	globalMu.Unlock()
}

// Logf 使用默认 Logger 记录日志，参数同 [Logger.Logf]。
func Logf(level Level, origin, format string, args ...any) {
	Default().Logf(level, origin, format, args...)
}
