package xflog

import (
	"fmt"
	"time"
)

// Builder 日志配置构建器。
//
// first-error-wins：遇到第一个配置错误后，后续 Set/Add 操作被跳过，
// Build 返回该错误。Builder 为一次性使用：Build 成功后目标所有权
// 已转移给 Logger，再次 Build 返回 [ErrBuilderConsumed]。
type Builder struct {
	level    Level
	clock    func() time.Time
	onError  func(error)
	targets  []Target
	err      error
	consumed bool
}

// NewBuilder 创建配置构建器。
//
// 默认级别 [LevelWarn]，默认时钟 time.Now，无目标，无错误回调。
func NewBuilder() *Builder {
	return &Builder{
		level: LevelWarn,
		clock: time.Now,
	}
}

// SetLevel 设置最低严重级别。
//
// 构建路径上的越界值记为配置错误（由 Build 返回），不 panic，
// 与 [Logger.SetLevel] 的编程错误语义区分开。
func (b *Builder) SetLevel(level Level) *Builder {
	if b.err != nil {
		return b
	}
	if !level.Valid() {
		b.err = fmt.Errorf("%w: %d out of range", ErrInvalidLevel, int(level))
		return b
	}
	b.level = level
	return b
}

// SetLevelString 通过字符串设置日志级别。
func (b *Builder) SetLevelString(s string) *Builder {
	if b.err != nil {
		return b
	}
	level, err := ParseLevel(s)
	if err != nil {
		b.err = err
		return b
	}
	b.level = level
	return b
}

// SetClock 注入时间戳时钟。
//
// 默认为 time.Now；测试或需要确定性时间戳的调用方可以替换。
func (b *Builder) SetClock(clock func() time.Time) *Builder {
	if b.err != nil {
		return b
	}
	if clock == nil {
		b.err = ErrNilClock
		return b
	}
	b.clock = clock
	return b
}

// SetOnError 设置目标写失败的内部回调。
//
// 默认策略仍然是"不向外返回错误、不 panic"，回调只是允许业务把
// 吞掉的写失败接到 metrics/告警。回调在热路径同步执行，应保持轻量；
// 内置递归保护与 panic 隔离。
func (b *Builder) SetOnError(fn func(error)) *Builder {
	if b.err != nil {
		return b
	}
	b.onError = fn
	return b
}

// AddTarget 注册一个输出目标，Build 后所有权归 Logger。
//
// 扇出顺序即 AddTarget 顺序。
func (b *Builder) AddTarget(t Target) *Builder {
	if b.err != nil {
		return b
	}
	if t == nil {
		b.err = ErrNilTarget
		return b
	}
	b.targets = append(b.targets, t)
	return b
}

// Build 构建 Logger 实例。
//
// 配置错误时不构建任何东西，已注册目标的关闭责任回到调用方。
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true

	return &Logger{
		targets: b.targets,
		level:   b.level,
		clock:   b.clock,
		onError: b.onError,
	}, nil
}
