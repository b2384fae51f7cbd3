package vio

// Concat 将多个字节段拼接为一块连续缓冲区。
//
// 供缺少原生向量写能力的目标使用：拼接后对底层 sink 发起一次标量写，
// 保住"整条日志行一次写出"的原子性契约（保证的是最终写调用的原子性，
// 不是中间缓冲过程的原子性）。
func Concat(segs [][]byte) []byte {
	total := 0
	for _, seg := range segs {
		total += len(seg)
	}

	buf := make([]byte, 0, total)
	for _, seg := range segs {
		buf = append(buf, seg...)
	}
	return buf
}
