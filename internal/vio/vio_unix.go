//go:build unix

package vio

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// 系统调用函数变量，支持测试中 mock 替换以覆盖错误路径。
// 注意：mock 测试不可使用 t.Parallel()，因为替换包级变量会引发竞态。
var (
	sysWritev = unix.Writev
	sysDup    = unix.Dup
)

// Writev 对文件描述符发起一次原生 writev(2)。
//
// 所有字节段作为单次内核级写入落盘；单次 writev 对共享描述符的并发
// 调用方是原子的（受内核 IOV_MAX / 管道缓冲等实现上限约束），
// 这是多线程日志行不互相穿插的基础。
func Writev(fd int, segs [][]byte) error {
	n, err := sysWritev(fd, segs)
	if err != nil {
		return fmt.Errorf("vio: writev: %w", err)
	}

	total := 0
	for _, seg := range segs {
		total += len(seg)
	}
	if n < total {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrShortWrite, n, total)
	}
	return nil
}

// Dup 复制文件描述符。
//
// 返回的新描述符与原描述符指向同一打开文件，但可以被独立关闭，
// 不影响原描述符。
func Dup(fd int) (int, error) {
	newfd, err := sysDup(fd)
	if err != nil {
		return -1, fmt.Errorf("vio: dup: %w", err)
	}
	return newfd, nil
}
