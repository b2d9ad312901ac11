package components

// PositionComponent 存储实体在绘制表面上的左上角坐标
type PositionComponent struct {
	X float64
	Y float64
}
