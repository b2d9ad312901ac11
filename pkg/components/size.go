package components

// SizeComponent 存储实体的绘制尺寸
// 由 spritesheet 单元格尺寸乘以缩放系数得到，构造后不再改变
type SizeComponent struct {
	Width  float64
	Height float64
}

// NewSizeComponent 根据单元格尺寸和缩放系数创建尺寸组件
func NewSizeComponent(cellWidth, cellHeight, scale float64) SizeComponent {
	return SizeComponent{
		Width:  cellWidth * scale,
		Height: cellHeight * scale,
	}
}
