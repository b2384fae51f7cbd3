package xlogconf_test

import (
	"fmt"

	"github.com/omeyang/xflog/pkg/config/xlogconf"
)

// ExampleLoadBytes 演示从字节数据加载配置并装配 Logger。
func ExampleLoadBytes() {
	configData := []byte(`
level: debug
targets:
  - type: "null"
`)

	cfg, err := xlogconf.LoadBytes(configData, xlogconf.FormatYAML)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		return
	}

	logger, err := cfg.Build()
	if err != nil {
		fmt.Printf("failed to build logger: %v\n", err)
		return
	}
	defer func() { _ = logger.Close() }()

	fmt.Printf("level: %s\n", logger.Level())
	logger.Debugf("core", "ready")

	// Output:
	// level: DEBUG
}
