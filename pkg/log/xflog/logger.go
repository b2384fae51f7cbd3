package xflog

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// Logger 拥有一组有序输出目标和一个最低严重级别。
//
// Logger 独占全部已注册目标；[Logger.Close] 逐个关闭它们。
// 目标列表与级别字段不加锁：并发 Logf 是支持的使用方式，
// 但与在途 Logf 并发地 AddTarget/SetLevel/Close 必须由调用方串行化。
type Logger struct {
	targets []Target
	level   Level
	clock   func() time.Time
	onError func(error)
	closed  bool

	// 写失败计数与递归保护，见 handleError。
	errorCount     atomic.Uint64
	inErrorHandler atomic.Bool
}

// New 创建一个没有任何目标的 Logger。
//
// 默认级别为 [LevelWarn]（保守默认：抑制 TRACE/DEBUG/INFO），
// 默认时钟为 time.Now。需要注入时钟或错误回调时使用 [NewBuilder]。
func New() *Logger {
	return &Logger{
		level: LevelWarn,
		clock: time.Now,
	}
}

// AddTarget 注册一个输出目标，所有权随之转移给 Logger。
//
// 扇出顺序即注册顺序：先注册的目标先收到每条日志行（该顺序是文档化
// 契约，不是实现巧合）。传入 nil 目标属于调用方编程错误，直接 panic。
func (l *Logger) AddTarget(t Target) {
	if t == nil {
		panic(ErrNilTarget.Error())
	}
	l.targets = append(l.targets, t)
}

// SetLevel 设置最低严重级别。
//
// 低于该级别的日志调用是完全的 no-op（不格式化、不触碰任何目标）。
// 传入越界值属于调用方编程错误，直接 panic；配置路径请先用
// [ParseLevel] 把坏输入挡在外面。
func (l *Logger) SetLevel(level Level) {
	if !level.Valid() {
		panic(fmt.Sprintf("xflog: SetLevel(%d): level out of range", int(level)))
	}
	l.level = level
}

// Level 返回当前最低严重级别。
func (l *Logger) Level() Level {
	return l.level
}

// Close 按注册顺序关闭所有目标并释放目标列表。
//
// 每个目标的 Close 恰好被调用一次；重复 Close 是 no-op。
// Close 之后的日志调用没有目标可写，静默丢弃。
func (l *Logger) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true

	var errs []error
	for _, tgt := range l.targets {
		if err := tgt.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	l.targets = nil
	return errors.Join(errs...)
}

// WriteErrorCount 返回被吞掉的目标写失败总数。
//
// 目标写失败（磁盘满、管道断开等）不会向日志调用方暴露，
// 该计数器供监控与测试观察。
func (l *Logger) WriteErrorCount() uint64 {
	return l.errorCount.Load()
}

// handleError 处理目标写失败。
//
// 递归保护：如果 onError 回调内部再次触发写失败，跳过嵌套回调，
// 避免无限递归。panic 隔离：回调 panic 被捕获并计入错误计数，
// 不会扩散到业务调用链。
func (l *Logger) handleError(err error) {
	l.errorCount.Add(1)
	if l.onError == nil {
		return
	}
	if l.inErrorHandler.CompareAndSwap(false, true) {
		defer l.inErrorHandler.Store(false)
		l.safeOnError(err)
	}
}

// safeOnError 安全执行 onError 回调，隔离 panic。
func (l *Logger) safeOnError(err error) {
	defer func() {
		if r := recover(); r != nil {
			l.errorCount.Add(1)
		}
	}()
	l.onError(err)
}
