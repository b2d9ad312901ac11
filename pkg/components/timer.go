package components

// TimerComponent 通用计时器组件
// 用于处理需要时间间隔的行为（如敌人生成周期）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "enemy_spawn"
	TargetTime  float64 // 目标时间（毫秒）
	CurrentTime float64 // 当前已过时间（毫秒）
}

// IsReady 计时器是否已严格超过目标时间
func (t *TimerComponent) IsReady() bool {
	return t.CurrentTime > t.TargetTime
}

// Accumulate 累加经过的时间
func (t *TimerComponent) Accumulate(deltaTime float64) {
	t.CurrentTime += deltaTime
}

// Reset 将计时器清零
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
}
