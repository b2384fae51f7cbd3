package vio

import "errors"

var (
	// ErrUnsupportedPlatform 表示当前平台不支持此操作。
	ErrUnsupportedPlatform = errors.New("vio: unsupported platform")

	// ErrShortWrite 表示 writev 写入的字节数少于请求的字节数。
	ErrShortWrite = errors.New("vio: short writev")
)
