package xtarget

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xflog/pkg/log/xflog"
)

// newTermStream 构造终端色彩化目标的白盒辅助：测试环境没有 tty，
// 绕过 NewStderr 的 isatty 探测直接包装。
func newTermStream(t *testing.T) *termStream {
	t.Helper()
	s, err := NewFile(filepath.Join(t.TempDir(), "tty.log"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return &termStream{Stream: s}
}

func TestTermStream_ColorTablePerLevel(t *testing.T) {
	ts := newTermStream(t)

	tests := []struct {
		level xflog.Level
		want  string
	}{
		{xflog.LevelTrace, "\x1b[30;2m"},
		{xflog.LevelDebug, "\x1b[37;2m"},
		{xflog.LevelInfo, "\x1b[92m"},
		{xflog.LevelWarn, "\x1b[33m"},
		{xflog.LevelError, "\x1b[31;1m"},
		{xflog.LevelFatal, "\x1b[30;103;1m"},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			begin := ts.ColorizeBegin(tt.level)
			assert.Equal(t, tt.want, begin)
			assert.NotEmpty(t, begin, "每个有效级别都有非空色彩前缀")
			assert.Equal(t, ansiReset, ts.ColorizeEnd(tt.level), "每个色彩跨度后都跟重置序列")
		})
	}
}

func TestTermStream_InvalidLevelNoColor(t *testing.T) {
	ts := newTermStream(t)
	assert.Empty(t, ts.ColorizeBegin(xflog.LevelInvalid))
}

func TestTermStream_ColorMarkersLandInOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tty.log")
	s, err := NewFile(path)
	require.NoError(t, err)
	colored := &termStream{Stream: s}

	logger, err := xflog.NewBuilder().
		SetLevel(xflog.LevelTrace).
		AddTarget(colored).
		Build()
	require.NoError(t, err)

	logger.Errorf("core", "tinted")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\x1b[31;1mERROR\x1b[0m")
}
