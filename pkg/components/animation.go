package components

// AnimationComponent 管理基于 spritesheet 的循环帧动画
//
// 帧计时规则：FrameTimer 累加经过的时间，直到严格超过 FrameInterval；
// 超过的那一帧不再累加，而是重置计时器并前进一帧，
// 到达 MaxFrame 之后回到第 0 帧。
type AnimationComponent struct {
	CurrentFrame  int     // 当前帧索引，范围 [0, MaxFrame]
	MaxFrame      int     // 最后一帧的索引
	FrameInterval float64 // 每帧持续时间(毫秒)
	FrameTimer    float64 // 当前帧计时器(毫秒)
}

// Advance 推进动画计时器
func (a *AnimationComponent) Advance(deltaTime float64) {
	if a.FrameTimer > a.FrameInterval {
		if a.CurrentFrame >= a.MaxFrame {
			a.CurrentFrame = 0
		} else {
			a.CurrentFrame++
		}
		a.FrameTimer = 0
		return
	}
	a.FrameTimer += deltaTime
}
