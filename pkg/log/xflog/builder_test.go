package xflog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xflog/pkg/log/xflog"
)

func TestBuilder_Defaults(t *testing.T) {
	logger, err := xflog.NewBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, xflog.LevelWarn, logger.Level())
}

func TestBuilder_SetLevelString(t *testing.T) {
	logger, err := xflog.NewBuilder().SetLevelString("trace").Build()
	require.NoError(t, err)
	assert.Equal(t, xflog.LevelTrace, logger.Level())
}

func TestBuilder_InvalidLevelString(t *testing.T) {
	_, err := xflog.NewBuilder().SetLevelString("verbose").Build()
	assert.ErrorIs(t, err, xflog.ErrInvalidLevel)
}

func TestBuilder_OutOfRangeLevel(t *testing.T) {
	// 构建路径返回错误而非 panic
	_, err := xflog.NewBuilder().SetLevel(xflog.Level(42)).Build()
	assert.ErrorIs(t, err, xflog.ErrInvalidLevel)
}

func TestBuilder_NilTarget(t *testing.T) {
	_, err := xflog.NewBuilder().AddTarget(nil).Build()
	assert.ErrorIs(t, err, xflog.ErrNilTarget)
}

func TestBuilder_NilClock(t *testing.T) {
	_, err := xflog.NewBuilder().SetClock(nil).Build()
	assert.ErrorIs(t, err, xflog.ErrNilClock)
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	b := xflog.NewBuilder().
		SetLevelString("bogus"). // 第一个错误
		SetClock(nil).           // 被跳过
		SetLevel(xflog.LevelInfo)

	_, err := b.Build()
	assert.ErrorIs(t, err, xflog.ErrInvalidLevel, "返回第一个错误")
}

func TestBuilder_ErrorSkipsLaterSets(t *testing.T) {
	tgt := &recordTarget{}
	b := xflog.NewBuilder().SetLevelString("nope").AddTarget(tgt)
	_, err := b.Build()
	require.Error(t, err)

	// 配置错误后目标未被任何 Logger 接管，关闭责任在调用方
	assert.Equal(t, 0, tgt.closed)
}

func TestBuilder_OneShot(t *testing.T) {
	b := xflog.NewBuilder().AddTarget(&recordTarget{})
	_, err := b.Build()
	require.NoError(t, err)

	_, err = b.Build()
	assert.ErrorIs(t, err, xflog.ErrBuilderConsumed)
}

func TestBuilder_ClockInjection(t *testing.T) {
	tgt := &recordTarget{}
	at := time.Date(2026, 1, 2, 3, 4, 5, 678_000_000, time.Local)
	logger, err := xflog.NewBuilder().
		SetLevel(xflog.LevelTrace).
		SetClock(func() time.Time { return at }).
		AddTarget(tgt).
		Build()
	require.NoError(t, err)

	logger.Infof("core", "tick")
	require.Len(t, tgt.vecs, 1)
	assert.Equal(t, "2026/01/02 03:04:05.678", string(tgt.vecs[0][1]))
}
