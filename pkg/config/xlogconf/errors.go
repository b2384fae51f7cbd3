package xlogconf

import "errors"

// 配置加载和装配相关错误。
var (
	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("xlogconf: empty config path")

	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xlogconf: unsupported config format")

	// ErrLoadFailed 表示配置加载失败。
	ErrLoadFailed = errors.New("xlogconf: failed to load config")

	// ErrParseFailed 表示配置解析失败。
	ErrParseFailed = errors.New("xlogconf: failed to parse config")

	// ErrUnmarshalFailed 表示配置反序列化失败。
	ErrUnmarshalFailed = errors.New("xlogconf: failed to unmarshal config")

	// ErrUnknownTargetType 表示配置声明了未知的目标类型。
	ErrUnknownTargetType = errors.New("xlogconf: unknown target type")

	// ErrMissingTargetPath 表示 file 目标缺少 path 字段。
	ErrMissingTargetPath = errors.New("xlogconf: file target requires path")
)
