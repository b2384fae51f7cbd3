package xflog

import "errors"

var (
	// ErrInvalidLevel 表示日志级别字符串无法解析为任何有效级别。
	ErrInvalidLevel = errors.New("xflog: invalid log level")

	// ErrNilTarget 表示向构建器传入了 nil 目标。
	ErrNilTarget = errors.New("xflog: nil target")

	// ErrNilClock 表示向构建器传入了 nil 时钟函数。
	ErrNilClock = errors.New("xflog: nil clock")

	// ErrBuilderConsumed 表示构建器已被 Build 消费，不可复用。
	ErrBuilderConsumed = errors.New("xflog: builder already consumed")
)
