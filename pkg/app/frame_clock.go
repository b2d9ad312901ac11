package app

import "math"

// timestampSentinel 第一次 Tick 之前的“上一帧时间戳”
const timestampSentinel = 1.0

// FrameClock 根据宿主提供的单调时间戳计算每帧经过的时间(毫秒)
//
// 返回值总是落在 [0, maxDelta] 内：时间回退或非有限值得到 0，
// 窗口被挂起后恢复的长间隔被截断为 maxDelta，避免一次跳过大量模拟。
type FrameClock struct {
	previous float64
	maxDelta float64
}

// NewFrameClock 创建帧时钟，maxDelta <= 0 表示不截断
func NewFrameClock(maxDelta float64) *FrameClock {
	return &FrameClock{
		previous: timestampSentinel,
		maxDelta: maxDelta,
	}
}

// Tick 记录当前时间戳并返回距上一次的经过时间
func (c *FrameClock) Tick(now float64) float64 {
	if math.IsNaN(now) || math.IsInf(now, 0) {
		return 0
	}

	elapsed := now - c.previous
	c.previous = now

	if elapsed < 0 {
		return 0
	}
	if c.maxDelta > 0 && elapsed > c.maxDelta {
		return c.maxDelta
	}
	return elapsed
}
