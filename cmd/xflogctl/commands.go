package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xflog/pkg/config/xlogconf"
	"github.com/omeyang/xflog/pkg/log/xflog"
	"github.com/omeyang/xflog/pkg/log/xtarget"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，run() 将其映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isCLIUsageError 判断错误是否为 CLI 框架产生的参数错误。
func isCLIUsageError(err error) bool {
	if _, ok := err.(cli.ExitCoder); ok {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "invalid value") ||
		strings.Contains(msg, "No help topic for")
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createCheckCommand(),
		createEmitCommand(),
		createLevelsCommand(),
	}
}

// createCheckCommand 创建 check 子命令（干跑校验配置）。
func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Aliases:   []string{"c"},
		Usage:     "校验日志配置文件",
		ArgsUsage: "<配置文件>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return &usageError{msg: "check 命令需要且仅需要一个配置文件路径"}
			}
			return cmdCheck(args[0])
		},
	}
}

// createEmitCommand 创建 emit 子命令。
func createEmitCommand() *cli.Command {
	return &cli.Command{
		Name:      "emit",
		Aliases:   []string{"e"},
		Usage:     "发出一条日志",
		ArgsUsage: "<消息...>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（省略时输出到 stderr）",
			},
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "消息级别 (trace/debug/info/warn/error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "origin",
				Aliases: []string{"o"},
				Usage:   "来源标签",
				Value:   "cli",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return &usageError{msg: "emit 命令需要指定消息内容"}
			}
			return cmdEmit(cmd.String("config"), cmd.String("level"), cmd.String("origin"), args)
		},
	}
}

// createLevelsCommand 创建 levels 子命令。
func createLevelsCommand() *cli.Command {
	return &cli.Command{
		Name:  "levels",
		Usage: "列出可配置的严重级别",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdLevels(cmd)
		},
	}
}

// cmdCheck 干跑校验配置: 加载、装配全部目标、随即释放。
// 文件目标会被真实创建（截断），stderr 目标会真实复制句柄，
// 以便暴露权限与路径问题。
func cmdCheck(path string) error {
	cfg, err := xlogconf.Load(path)
	if err != nil {
		return fmt.Errorf("配置加载失败: %w", err)
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("配置装配失败: %w", err)
	}
	if err := logger.Close(); err != nil {
		return fmt.Errorf("目标释放失败: %w", err)
	}

	fmt.Printf("配置有效: %s\n", path)
	fmt.Printf("级别: %s\n", logger.Level())
	fmt.Printf("目标数: %d\n", len(cfg.Targets))
	return nil
}

// cmdEmit 按配置发出一条日志。
//
// 指定配置文件时遵从其级别阈值，低于阈值的消息被静默丢弃；
// 未指定时使用 trace 阈值的 stderr Logger，保证消息总是写出。
func cmdEmit(configPath, levelStr, origin string, args []string) error {
	level, err := xflog.ParseLevel(levelStr)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("无效级别 %q", levelStr)}
	}

	var logger *xflog.Logger
	if configPath != "" {
		cfg, loadErr := xlogconf.Load(configPath)
		if loadErr != nil {
			return fmt.Errorf("配置加载失败: %w", loadErr)
		}
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("配置装配失败: %w", err)
		}
	} else {
		stderr, targetErr := xtarget.NewStderr()
		if targetErr != nil {
			return fmt.Errorf("无法打开 stderr 目标: %w", targetErr)
		}
		logger, err = xflog.NewBuilder().
			SetLevel(xflog.LevelTrace).
			AddTarget(stderr).
			Build()
		if err != nil {
			_ = stderr.Close()
			return err
		}
	}
	defer func() { _ = logger.Close() }()

	logger.Logf(level, origin, "%s", strings.Join(args, " "))

	if n := logger.WriteErrorCount(); n > 0 {
		return fmt.Errorf("写入失败: %d 个目标报错", n)
	}
	return nil
}

// cmdLevels 列出可配置的级别及其排序。
func cmdLevels(cmd *cli.Command) error {
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	levels := []xflog.Level{
		xflog.LevelTrace,
		xflog.LevelDebug,
		xflog.LevelInfo,
		xflog.LevelWarn,
		xflog.LevelError,
	}
	for _, l := range levels {
		fmt.Fprintf(w, "%d  %s\n", int(l), l)
	}
	return nil
}
