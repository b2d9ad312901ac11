package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteSheet 存储实体的视觉资源（横向排列的动画帧 spritesheet）
//
// 资源本身对实体是不透明的：实体只关心单元格尺寸，
// 用于按当前帧索引选取源矩形 (frame*CellWidth, 0, CellWidth, CellHeight)。
// Image 可以为 nil（终端渲染和测试不需要真实图像）。
type SpriteSheet struct {
	Name       string        // 资源名称，如 "worm"、"ghost"、"spider"
	Image      *ebiten.Image // 实际图像资源
	CellWidth  float64       // 单帧宽度（像素）
	CellHeight float64       // 单帧高度（像素）
}
