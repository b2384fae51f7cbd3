package xflog

// Target 输出目标的能力契约，所有 sink 必须实现的最小操作集。
//
// WriteVec 是派发引擎的唯一写入路径：整条日志行的全部字节段作为
// 单次逻辑写交给目标，目标必须把它们当作一个不可拆分的写操作渲染
// （原生 writev、或拼接后单次标量写）。Write 是标量补充路径，
// 供目标自身及适配器使用。
//
// 所有方法的错误都不会被派发引擎向调用方暴露（日志不反向破坏宿主），
// 只计入 [Logger.WriteErrorCount] 并通知可选的 onError 回调。
type Target interface {
	// Write 将一块连续字节追加到底层 sink。
	Write(p []byte) error

	// WriteVec 将有序字节段序列作为单次逻辑写渲染到底层 sink。
	WriteVec(segs [][]byte) error

	// Close 释放目标持有的资源（文件句柄等）。
	// 由拥有它的 Logger 在 Close 时调用，且只调用一次。
	Close() error
}

// Colorizer 可选的逐目标色彩化能力。
//
// 派发引擎在每次写出前对每个目标做类型断言探测：实现了本接口的目标
// 会收到按级别生成的色彩前缀/后缀段（如终端 ANSI 转义序列）；
// 未实现的目标收到空段。色彩化是逐目标的——同一 Logger 下的文件目标
// 和终端目标可以渲染得不同。
type Colorizer interface {
	// ColorizeBegin 返回 level 级别名之前插入的修饰文本。
	ColorizeBegin(level Level) string

	// ColorizeEnd 返回 level 级别名之后插入的修饰文本。
	ColorizeEnd(level Level) string
}
