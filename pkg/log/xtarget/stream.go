package xtarget

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/omeyang/xflog/internal/vio"
	"github.com/omeyang/xflog/pkg/log/xflog"
)

// 编译时接口检查
var (
	_ xflog.Target    = (*Stream)(nil)
	_ xflog.Target    = (*termStream)(nil)
	_ xflog.Colorizer = (*termStream)(nil)
)

// Stream 带缓冲的文件流目标。
//
// Write 追加到用户态缓冲；WriteVec 先冲刷缓冲，再对底层描述符发起
// 一次原生 writev(2)，让整条日志行作为单次内核级写入落盘——
// 这是同一 sink 上多个并发调用方的日志行不互相穿插的基础。
// 互斥锁只保护用户态缓冲的 flush-then-writev 序列；跨进程的行原子性
// 由内核的单次 writev 提供。
type Stream struct {
	mu     sync.Mutex
	f      *os.File
	w      *bufio.Writer
	closed bool
}

func newStream(f *os.File) *Stream {
	return &Stream{f: f, w: bufio.NewWriter(f)}
}

// NewFile 创建写入 path 的流目标，文件被截断或新建。
//
// 文件永远按非终端处理：不安装色彩化钩子。
// 打开失败时返回 nil 目标和错误。
func NewFile(path string) (*Stream, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("xtarget: open %q: %w", path, err)
	}
	return newStream(f), nil
}

// NewStderr 创建写入进程标准错误的流目标。
//
// 描述符经 dup 复制，目标持有可独立关闭的句柄，Close 不影响
// 进程原本的标准错误。描述符连接交互式终端时返回的目标实现
// [xflog.Colorizer]（ANSI 色彩化），否则为纯文本目标。
// 复制失败（含非 Unix 平台）时返回 nil 目标和错误。
func NewStderr() (xflog.Target, error) {
	fd, err := vio.Dup(int(os.Stderr.Fd()))
	if err != nil {
		return nil, fmt.Errorf("xtarget: dup stderr: %w", err)
	}

	s := newStream(os.NewFile(uintptr(fd), "stderr"))
	if term.IsTerminal(fd) {
		return &termStream{Stream: s}, nil
	}
	return s, nil
}

// Write 将一块连续字节追加到用户态缓冲。
func (s *Stream) Write(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrTargetClosed
	}
	_, err := s.w.Write(p)
	return err
}

// WriteVec 冲刷缓冲后将所有段作为单次内核级写入落盘。
//
// 先 flush 保证缓冲中的早先 Write 内容不会排到这条行之后；
// 随后绕过缓冲直接对描述符 writev。非 Unix 平台退化为
// 拼接后的单次标量写，保住"一次写调用"的原子性契约。
func (s *Stream) WriteVec(segs [][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrTargetClosed
	}
	if err := s.w.Flush(); err != nil {
		return err
	}

	err := vio.Writev(int(s.f.Fd()), segs)
	if errors.Is(err, vio.ErrUnsupportedPlatform) {
		_, werr := s.f.Write(vio.Concat(segs))
		return werr
	}
	return err
}

// Close 冲刷缓冲并关闭底层文件，恰好一次；重复 Close 是 no-op。
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	flushErr := s.w.Flush()
	closeErr := s.f.Close()
	return errors.Join(flushErr, closeErr)
}

// termStream 在 Stream 之上附加终端 ANSI 色彩化能力。
//
// 只有 NewStderr 在描述符确认连接交互式终端时才构造它；
// 色彩化是能力的有无，不是返回空串的降级。
type termStream struct {
	*Stream
}

// ColorizeBegin 返回 level 对应的 ANSI SGR 起始序列。
func (t *termStream) ColorizeBegin(level xflog.Level) string {
	return ansiBegin[level]
}

// ColorizeEnd 返回重置序列，关闭任何色彩跨度。
func (t *termStream) ColorizeEnd(_ xflog.Level) string {
	return ansiReset
}

// ansiReset 重置序列，跟在每个色彩跨度之后。
const ansiReset = "\x1b[0m"

// ansiBegin 按级别的 ANSI SGR 起始序列。
var ansiBegin = map[xflog.Level]string{
	xflog.LevelTrace: "\x1b[30;2m",     // 暗黑
	xflog.LevelDebug: "\x1b[37;2m",     // 暗白
	xflog.LevelInfo:  "\x1b[92m",       // 亮绿
	xflog.LevelWarn:  "\x1b[33m",       // 黄
	xflog.LevelError: "\x1b[31;1m",     // 粗体红
	xflog.LevelFatal: "\x1b[30;103;1m", // 粗体黑字亮黄底
}
