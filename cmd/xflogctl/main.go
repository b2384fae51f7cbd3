// xflogctl 是 xflog 日志内核的命令行工具。
//
// 用法:
//
//	xflogctl <命令> [命令参数]
//
// 命令:
//
//	check <配置文件>   校验日志配置（加载、装配、释放，全程干跑）
//	emit [选项] <消息> 按配置发出一条日志（默认输出到 stderr）
//	levels             列出可配置的严重级别
//	help               显示帮助信息
//
// emit 选项:
//
//	-c, --config   配置文件路径（省略时输出到 stderr）
//	-l, --level    消息级别 (trace/debug/info/warn/error，默认: warn)
//	-o, --origin   来源标签（默认: cli）
//
// 退出码:
//
//	0: 执行成功
//	1: 执行失败（配置无法加载、目标无法打开等）
//	2: 参数错误（无效级别、缺少必需参数、未知命令等）
//
// 示例:
//
//	xflogctl check /etc/app/log.yaml            # 校验配置文件
//	xflogctl emit "service started"             # 以 warn 级别写 stderr
//	xflogctl emit -l error -o net "timeout"     # 指定级别与来源
//	xflogctl emit -c log.yaml -l info "ready"   # 按配置扇出
//	xflogctl levels                             # 列出级别及排序
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "xflogctl",
		Usage:          "xflog 日志内核命令行工具",
		Version:        fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"xflog Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Description: `xflogctl 围绕 xflog 声明式配置提供运维辅助能力:
校验配置文件能否装配出可用的 Logger，以及在脚本中
按同一套格式化规则发出单条日志行。

check 命令以干跑方式执行: 加载配置、构造全部目标、
随即关闭释放，不写入任何日志内容。`,
	}
}

func run(args []string) int {
	app := createApp()

	if err := app.Run(context.Background(), args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			// ExitErrHandler 或 flag 解析器已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
