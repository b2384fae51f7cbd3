// Package vio 提供向量化 IO 的共享内核。
//
// 本包是 internal 包，仅供 xflog 的目标实现（pkg/log/xtarget）内部使用，
// 外部用户不应直接导入此包。
//
// 主要功能：
//   - [Concat]: 将多个字节段拼接为一块连续缓冲区（缺少原生 writev 能力
//     的目标用它退化为单次标量写）
//   - [Writev]: 对文件描述符发起一次原生 writev(2)，整条日志行作为
//     单次内核级写入落盘（Unix 平台生效，非 Unix 返回 [ErrUnsupportedPlatform]）
//   - [Dup]: 复制文件描述符，使目标持有可独立关闭的句柄
//     （Unix 平台生效，非 Unix 返回 [ErrUnsupportedPlatform]）
//
// # 平台支持
//
// Writev 和 Dup 在所有 Unix 平台（Linux、macOS、FreeBSD 等）上通过
// golang.org/x/sys/unix 实现。在 Windows 等非 Unix 平台上返回
// [ErrUnsupportedPlatform]，调用方自行降级（如 Concat 后单次 write）。
package vio
