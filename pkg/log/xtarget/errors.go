package xtarget

import "errors"

var (
	// ErrTargetClosed 表示对已关闭的目标发起写入。
	ErrTargetClosed = errors.New("xtarget: target closed")

	// ErrTracerUnavailable 表示追踪入口不可用（nil 或 noop provider），
	// Marker 目标无法构造，调用方应降级到 Stream 或 Null 目标。
	ErrTracerUnavailable = errors.New("xtarget: tracer unavailable")
)
