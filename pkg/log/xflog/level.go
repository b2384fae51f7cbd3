package xflog

import (
	"fmt"
	"strings"
)

// Level 日志严重级别，全序整数枚举。
type Level int

// 日志级别常量，从低到高全序排列。
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// LevelInvalid 无效级别哨兵。
//
// [ParseLevel] 解析失败时返回它，与所有有效级别（含 FATAL）都不相等，
// 配置代码可以据此拒绝坏输入，而不会把越界值带进活动日志调用。
const LevelInvalid Level = -1

// Valid 报告 l 是否为有效级别（TRACE..FATAL）。
func (l Level) Valid() bool {
	return l >= LevelTrace && l <= LevelFatal
}

// String 返回级别在日志行中渲染的固定名称。
//
// FATAL 级别渲染为 "FATAL ERROR"（位兼容的行格式要求），
// 其余级别为大写级别名；无效值返回 "INVALID"。
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL ERROR"
	default:
		return "INVALID"
	}
}

// ParseLevel 解析字符串为日志级别。
//
// 大小写不敏感，输入会自动 TrimSpace。可解析的名称为
// TRACE/DEBUG/INFO/WARN/ERROR；FATAL 不可由外部配置设置，
// 与不认识的字符串一样返回 [LevelInvalid] 和 [ErrInvalidLevel]。
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInvalid, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

// MarshalText 实现 encoding.TextMarshaler 接口。
//
// 支持配置序列化场景（YAML/JSON）。只有可配置级别（TRACE..ERROR）
// 可以序列化；FATAL 和无效值返回错误，与 [ParseLevel] 的可解析集合对称。
func (l Level) MarshalText() ([]byte, error) {
	if l < LevelTrace || l > LevelError {
		return nil, fmt.Errorf("%w: %d is not a configurable level", ErrInvalidLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler 接口。
//
// 支持从配置文件直接反序列化日志级别。
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
