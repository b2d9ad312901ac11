// Package render 定义实体绘制所用的表面抽象及其实现
//
// 实体只依赖 Surface 接口；Ebitengine 窗口、tcell 终端和测试记录器
// 分别提供各自的实现。
package render

import "github.com/gonewx/spawner/pkg/components"

// Rect 表面坐标系中的矩形
type Rect struct {
	X, Y float64
	W, H float64
}

// Surface 是实体绘制的目标
//
// 透明度是可保存的绘制状态：Save 压栈当前状态，Restore 弹出并恢复，
// SetAlpha 只修改当前状态。实现必须保证 Restore 之后透明度回到 Save 前的值。
type Surface interface {
	// Clear 清空整个表面
	Clear()

	// DrawSprite 将 sheet 中 src 区域绘制到表面的 dst 区域
	DrawSprite(sheet *components.SpriteSheet, src, dst Rect)

	// StrokeLine 绘制一条从 (x0, y0) 到 (x1, y1) 的线段
	StrokeLine(x0, y0, x1, y1 float64)

	// Save 保存当前绘制状态
	Save()

	// Restore 恢复最近一次 Save 的绘制状态
	Restore()

	// SetAlpha 设置后续绘制的不透明度 [0, 1]
	SetAlpha(alpha float64)
}

// TextSurface 是支持绘制文字的表面（调试信息使用）
type TextSurface interface {
	Surface

	// DrawText 在 (x, y) 处绘制一行文字，(x, y) 为文字左上角
	DrawText(str string, x, y float64)
}

// WithAlpha 在保存的绘制状态中以指定不透明度执行 draw
// 无论 draw 如何退出（包括 panic），Restore 都会被调用
func WithAlpha(s Surface, alpha float64, draw func(Surface)) {
	s.Save()
	defer s.Restore()
	s.SetAlpha(alpha)
	draw(s)
}

// alphaStack 是各实现共用的透明度状态栈
type alphaStack struct {
	current float64
	saved   []float64
}

func newAlphaStack() alphaStack {
	return alphaStack{current: 1}
}

func (a *alphaStack) save() {
	a.saved = append(a.saved, a.current)
}

// restore 没有对应 save 时忽略（与 canvas 行为一致）
func (a *alphaStack) restore() {
	if len(a.saved) == 0 {
		return
	}
	a.current = a.saved[len(a.saved)-1]
	a.saved = a.saved[:len(a.saved)-1]
}

func (a *alphaStack) set(alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	a.current = alpha
}
