// Package xtarget 提供 xflog 日志内核的输出目标实现。
//
// # 目标一览
//
//   - [Null]: 共享的丢弃单例，Write/WriteVec/Close 全部 no-op。
//     需要禁用某个 sink 时的零成本选择。
//   - [Stream]: 带缓冲的文件/标准错误流目标。[NewFile] 截断创建文件；
//     [NewStderr] 复制进程标准错误描述符，目标持有可独立关闭的句柄。
//     WriteVec 先冲刷缓冲，再对描述符发起一次原生 writev(2)，
//     整条日志行作为单次内核级写入落盘；非 Unix 平台退化为拼接后
//     单次标量写。描述符连接交互式终端时安装 ANSI 色彩化钩子，
//     否则不装（文件永远纯文本）。
//   - [Marker]: 追踪标记目标，把日志行作为 span 事件转发给外部
//     OpenTelemetry 追踪后端，供外部追踪/调试工具关联时间线。
//     追踪入口不可用（nil 或 noop provider）时构造失败，
//     调用方降级到 Stream 或 Null。
//
// # 构造失败约定
//
// 所有构造函数以 (target, error) 形式报告失败：文件打不开、描述符
// 复制失败、追踪后端不可用时返回 nil 目标和错误，由调用方选择
// 回退 sink 或者不装。构造失败绝不 panic。
//
// # 终端色彩表
//
// 按级别的 ANSI SGR 序列：TRACE 暗黑、DEBUG 暗白、INFO 亮绿、
// WARN 黄、ERROR 粗体红、FATAL 粗体黑字亮黄底；每个色彩跨度后
// 都跟重置序列。
package xtarget
