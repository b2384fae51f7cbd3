package xflog_test

import (
	"fmt"
	"time"

	"github.com/omeyang/xflog/pkg/log/xflog"
)

// printTarget 把每条记录原样打印到标准输出的示例目标。
type printTarget struct{}

func (printTarget) Write(p []byte) error { fmt.Print(string(p)); return nil }

func (printTarget) WriteVec(segs [][]byte) error {
	for _, seg := range segs {
		fmt.Print(string(seg))
	}
	return nil
}

func (printTarget) Close() error { return nil }

// Example_basic 演示构建 Logger、注册目标并发出带级别的日志行。
func Example_basic() {
	logger, err := xflog.NewBuilder().
		SetLevelString("info").
		SetClock(func() time.Time {
			return time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
		}).
		AddTarget(printTarget{}).
		Build()
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	defer logger.Close()

	logger.Debugf("core", "suppressed below threshold")
	logger.Warnf("core", "disk at %d%%", 91)

	// Output:
	// [ 2026/08/29 12:00:00.000 core WARN ] disk at 91%
}

// ExampleParseLevel 演示配置代码如何用无效哨兵拒绝坏输入。
func ExampleParseLevel() {
	for _, s := range []string{"warn", "verbose"} {
		level, err := xflog.ParseLevel(s)
		if err != nil {
			fmt.Printf("%q rejected (sentinel=%d)\n", s, int(level))
			continue
		}
		fmt.Printf("%q -> %s\n", s, level)
	}

	// Output:
	// "warn" -> WARN
	// "verbose" rejected (sentinel=-1)
}
