// Package xflog 提供可嵌入的扇出日志内核。
//
// # 核心模型
//
// 调用方持有一个 [Logger]，向它注册一个或多个输出目标（[Target]），
// 设置最低严重级别，然后通过带级别的入口（[Logger.Logf] 及
// Tracef/Debugf/Infof/Warnf/Errorf/Fatalf 便捷方法）发出带时间戳、
// 带来源标签的日志行。派发引擎完成级别过滤、消息格式化、时间戳捕获，
// 并把固定的 11 段有序记录原子地扇出到每个已注册目标。
//
// # 行格式
//
// 每条日志行由恰好 11 个有序字节段组成：
//
//	"[ " 时间戳 " " 来源标签 " " [色彩前缀] 级别名 [色彩后缀] " ] " 消息体 "\n"
//
// 级别名为 TRACE/DEBUG/INFO/WARN/ERROR 之一，FATAL 级别输出 "FATAL ERROR"。
// 整组段交给目标的 WriteVec 作为单次逻辑写，这是多线程并发记录时
// 同一目标上日志行不互相穿插的基础（前提是目标的向量写对底层 sink
// 本身是原子的，如单次 writev(2) 系统调用）。
//
// # 目标契约
//
// [Target] 是必须实现的能力集 {Write, WriteVec, Close}；
// [Colorizer] 是可选能力，通过类型断言逐目标探测。色彩化是逐目标的：
// 同一 Logger 下的文件目标和终端目标可以渲染得不同。
// 缺少原生向量写原语的目标用拼接适配器退化为单次标量写
// （见 pkg/log/xtarget 的 Marker 实现）。
//
// # 所有权与并发
//
// Logger 独占其全部已注册目标：[Logger.Close] 按注册顺序逐个关闭目标，
// 之后丢弃它们；目标不得在 Logger 之外存活或被多个 Logger 共享
// （共享的 Null 单例除外）。
//
// 多个 goroutine 可以并发地对同一 Logger 调用 Logf；但目标列表与级别
// 字段本身不加锁，与在途 Logf 并发地 AddTarget/SetLevel/Close 是调用方
// 错误，必须由调用方串行化（典型做法：单线程完成全部装配后再把 Logger
// 引用分发给工作线程）。
//
// # 错误处理
//
// 日志记录绝不反过来破坏宿主进程（"失败不扩散"）：
//   - 越界级别传入 Logf/SetLevel 属于调用方编程错误，直接 panic；
//   - 目标写失败不向外暴露，只累加 [Logger.WriteErrorCount]，
//     并尽力通知可选的 onError 回调（内置递归保护与 panic 隔离）；
//   - 解析非法级别字符串返回 [LevelInvalid] 哨兵和 [ErrInvalidLevel]，
//     配置代码可据此拒绝坏输入，不会让越界值进入活动日志调用。
//
// # 进程级默认 Logger
//
// [Default]、[SetDefault]、[ResetDefault] 提供显式初始化/替换/重置的
// 进程级注册表。未安装前的惰性默认 Logger 没有任何目标（全部丢弃），
// 注册表不拥有 Logger，其生命周期完全由安装方管理。
package xflog
