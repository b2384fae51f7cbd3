package xflog

import "fmt"

// TimeLayout 时间戳段的固定文本布局（本地时间，毫秒精度）。
const TimeLayout = "2006/01/02 15:04:05.000"

// 行格式中的固定段。
var (
	segOpen    = []byte("[ ")
	segSpace   = []byte(" ")
	segClose   = []byte(" ] ")
	segNewline = []byte("\n")
)

// Logf 带级别的日志入口：过滤、格式化、装配记录并扇出到所有目标。
//
// 执行序列：
//  1. level 越界属于调用方编程错误，直接 panic；
//  2. level 低于 Logger 最低级别时整个调用是 no-op——不做格式化，
//     不触碰任何目标（逐 Logger 过滤，不是逐目标）；
//  3. 渲染 format+args 为消息体；
//  4. 从注入时钟读取一次挂钟时间，按 [TimeLayout] 格式化——
//     时间戳逐调用捕获一次，同一行在所有目标上字节一致；
//  5. 装配 11 段有序记录，逐目标探测 [Colorizer] 能力填充色彩段，
//     把整组段交给该目标的 WriteVec 作为单次逻辑写；
//  6. 目标写失败被吞掉（计数 + 可选回调），绝不向调用方暴露。
//
// origin 是调用方提供的来源标签（通常为函数或组件名）。
func (l *Logger) Logf(level Level, origin, format string, args ...any) {
	if !level.Valid() {
		panic(fmt.Sprintf("xflog: Logf(%d): level out of range", int(level)))
	}
	if level < l.level {
		return
	}

	msg := fmt.Sprintf(format, args...)
	ts := l.clock().Format(TimeLayout)
	name := level.String()

	segs := [][]byte{
		segOpen,        // 0: "[ "
		[]byte(ts),     // 1: 时间戳
		segSpace,       // 2: " "
		[]byte(origin), // 3: 来源标签
		segSpace,       // 4: " "
		nil,            // 5: 色彩前缀（逐目标填充）
		[]byte(name),   // 6: 级别名
		nil,            // 7: 色彩后缀（逐目标填充）
		segClose,       // 8: " ] "
		[]byte(msg),    // 9: 消息体
		segNewline,     // 10: "\n"
	}

	for _, tgt := range l.targets {
		segs[5], segs[7] = nil, nil
		if c, ok := tgt.(Colorizer); ok {
			segs[5] = []byte(c.ColorizeBegin(level))
			segs[7] = []byte(c.ColorizeEnd(level))
		}
		if err := tgt.WriteVec(segs); err != nil {
			l.handleError(err)
		}
	}
}

// Tracef 以 TRACE 级别记录日志。
func (l *Logger) Tracef(origin, format string, args ...any) {
	l.Logf(LevelTrace, origin, format, args...)
}

// Debugf 以 DEBUG 级别记录日志。
func (l *Logger) Debugf(origin, format string, args ...any) {
	l.Logf(LevelDebug, origin, format, args...)
}

// Infof 以 INFO 级别记录日志。
func (l *Logger) Infof(origin, format string, args ...any) {
	l.Logf(LevelInfo, origin, format, args...)
}

// Warnf 以 WARN 级别记录日志。
func (l *Logger) Warnf(origin, format string, args ...any) {
	l.Logf(LevelWarn, origin, format, args...)
}

// Errorf 以 ERROR 级别记录日志。
func (l *Logger) Errorf(origin, format string, args ...any) {
	l.Logf(LevelError, origin, format, args...)
}

// Fatalf 以 FATAL 级别记录日志。
//
// 只记录，不终止进程：是否 abort 是调用方的决定，不是日志内核的。
func (l *Logger) Fatalf(origin, format string, args ...any) {
	l.Logf(LevelFatal, origin, format, args...)
}
