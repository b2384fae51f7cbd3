//go:build !unix

package vio

// Writev 在非 Unix 平台上返回 [ErrUnsupportedPlatform]。
// 调用方应降级为 Concat 后的单次标量写。
func Writev(fd int, segs [][]byte) error {
	return ErrUnsupportedPlatform
}

// Dup 在非 Unix 平台上返回 [ErrUnsupportedPlatform]。
func Dup(fd int) (int, error) {
	return -1, ErrUnsupportedPlatform
}
