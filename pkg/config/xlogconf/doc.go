// Package xlogconf 提供 xflog 日志内核的声明式配置，基于 koanf 实现。
//
// # 设计理念
//
// xlogconf 定位为最小化配置装载器：把 YAML/JSON 配置文件或字节数据
// 解析为 [Config]，再由 [Config.Build] 装配出一个就绪的 [xflog.Logger]。
// 级别字符串先经 xflog.ParseLevel 校验——非法级别在触碰任何目标之前
// 就被无效哨兵拒绝，坏输入不可能进入活动日志调用。
//
// # 配置结构
//
//	level: warn               # trace/debug/info/warn/error，缺省 warn
//	targets:
//	  - type: file            # null | file | stderr
//	    path: /var/log/app.log
//	  - type: stderr
//
// Marker 目标需要注入 TracerProvider，属于编程装配（xflog.Builder），
// 不在声明式配置范围内。
//
// # 支持的格式
//
//   - YAML（默认，推荐）：.yaml, .yml
//   - JSON：.json
//
// # 失败语义
//
// Build 失败时不留半成品：已构造的目标被逐个关闭，返回 nil Logger
// 和第一个错误。
package xlogconf
