package xtarget

import "github.com/omeyang/xflog/pkg/log/xflog"

// 编译时接口检查
var _ xflog.Target = nullTarget{}

// nullTarget 丢弃一切的目标。
type nullTarget struct{}

// Null 返回共享的丢弃目标单例。
//
// 单例不可销毁（Close 是 no-op），因此是"Logger 独占目标"规则的
// 文档化例外：所有需要禁用 sink 的调用方可以复用同一个实例，
// 注册到多个 Logger 也是安全的。
func Null() xflog.Target {
	return nullTarget{}
}

func (nullTarget) Write(_ []byte) error { return nil }

func (nullTarget) WriteVec(_ [][]byte) error { return nil }

func (nullTarget) Close() error { return nil }
