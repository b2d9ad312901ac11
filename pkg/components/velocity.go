package components

// VelocityComponent 存储实体的速度(表面单位/毫秒)
//
// 注意：VX 为正表示向左移动（基础更新执行 X -= VX * dt）。
type VelocityComponent struct {
	VX float64
	VY float64
}
