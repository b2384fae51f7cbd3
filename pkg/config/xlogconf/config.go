package xlogconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/xflog/pkg/log/xflog"
	"github.com/omeyang/xflog/pkg/log/xtarget"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式（推荐）。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// TargetConfig 声明一个输出目标。
type TargetConfig struct {
	// Type 目标类型：null | file | stderr（大小写不敏感）。
	// YAML 中 null 需加引号（"null"），否则会被解析为空值。
	Type string `koanf:"type"`

	// Path file 目标的输出路径，其他类型忽略。
	Path string `koanf:"path"`
}

// Config 日志内核的声明式配置。
type Config struct {
	// Level 最低严重级别字符串（trace/debug/info/warn/error），
	// 空值沿用内核默认（warn）。
	Level string `koanf:"level"`

	// Targets 输出目标列表，扇出顺序即声明顺序。
	Targets []TargetConfig `koanf:"targets"`
}

// Load 从文件路径加载配置。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return LoadBytes(data, format)
}

// LoadBytes 从字节数据加载配置，需要显式指定格式。
//
// 空数据产出零值配置（无目标、默认级别），与读取空文件行为一致。
func LoadBytes(data []byte, format Format) (*Config, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return &cfg, nil
}

// Build 按配置装配一个就绪的 Logger。
//
// 级别字符串在触碰任何目标之前校验：解析失败即返回，不会打开文件。
// 任何目标构造失败时，已构造的目标被逐个关闭，不留半成品。
// 返回的 Logger 拥有全部目标，调用方负责 Close。
func (c *Config) Build() (*xflog.Logger, error) {
	b := xflog.NewBuilder()
	if c.Level != "" {
		level, err := xflog.ParseLevel(c.Level)
		if err != nil {
			return nil, err
		}
		b.SetLevel(level)
	}

	var targets []xflog.Target
	closeAll := func() {
		for _, t := range targets {
			_ = t.Close()
		}
	}

	for i, tc := range c.Targets {
		var (
			t   xflog.Target
			err error
		)
		switch strings.ToLower(strings.TrimSpace(tc.Type)) {
		case "null":
			t = xtarget.Null()
		case "file":
			if tc.Path == "" {
				closeAll()
				return nil, fmt.Errorf("%w: targets[%d]", ErrMissingTargetPath, i)
			}
			t, err = xtarget.NewFile(tc.Path)
		case "stderr":
			t, err = xtarget.NewStderr()
		default:
			closeAll()
			return nil, fmt.Errorf("%w: %q (targets[%d])", ErrUnknownTargetType, tc.Type, i)
		}
		if err != nil {
			closeAll()
			return nil, err
		}
		targets = append(targets, t)
		b.AddTarget(t)
	}

	return b.Build()
}

// =============================================================================
// 内部辅助函数
// =============================================================================

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
}

// parserFor 返回格式对应的 koanf 解析器。
func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
