package xtarget

import (
	"context"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/omeyang/xflog/internal/vio"
	"github.com/omeyang/xflog/pkg/log/xflog"
)

// 编译时接口检查
var _ xflog.Target = (*Marker)(nil)

// markerScope Marker 目标的 instrumentation scope 名称。
const markerScope = "github.com/omeyang/xflog/pkg/log/xtarget"

// markerEventName 每条日志行对应的 span 事件名。
const markerEventName = "log.line"

// markerMessageKey 承载行文本的事件属性键。
const markerMessageKey = attribute.Key("log.message")

// Marker 追踪标记目标。
//
// 把每条日志行作为事件挂到一个长生命周期的标记 span 上，外部追踪
// 工具可以据此把日志与 trace 时间线关联。没有原生向量写原语，
// WriteVec 使用拼接适配器退化为单次 Write。Close 只结束 span，
// 不持有任何 OS 句柄。
type Marker struct {
	mu     sync.Mutex
	span   trace.Span
	closed bool
}

// NewMarker 创建追踪标记目标。
//
// provider 为 nil，或其产出的 span 不记录（noop provider）时，
// 追踪入口视为不可用：返回 [ErrTracerUnavailable]，不构造目标，
// 调用方降级到 Stream 或 Null。
func NewMarker(provider trace.TracerProvider) (*Marker, error) {
	if provider == nil {
		return nil, ErrTracerUnavailable
	}

	tracer := provider.Tracer(markerScope)
	_, span := tracer.Start(context.Background(), "xflog.marker")
	if !span.IsRecording() {
		span.End()
		return nil, ErrTracerUnavailable
	}

	return &Marker{span: span}, nil
}

// Write 把一条日志行文本转发给追踪后端（去掉结尾换行）。
func (m *Marker) Write(p []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrTargetClosed
	}

	text := strings.TrimSuffix(string(p), "\n")
	m.span.AddEvent(markerEventName,
		trace.WithAttributes(markerMessageKey.String(text)))
	return nil
}

// WriteVec 用拼接适配器把所有段合并为一条行文本后转发。
func (m *Marker) WriteVec(segs [][]byte) error {
	return m.Write(vio.Concat(segs))
}

// Close 结束标记 span，恰好一次；重复 Close 是 no-op。
func (m *Marker) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	m.span.End()
	return nil
}
