package render

import (
	"image"
	"image/color"

	"github.com/gonewx/spawner/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// EbitenSurface 在 Ebitengine 图像上绘制
type EbitenSurface struct {
	target      *ebiten.Image
	alpha       alphaStack
	background  color.Color
	lineColor   color.Color
	textColor   color.Color
	strokeWidth float32
	face        text.Face
}

// NewEbitenSurface 创建绘制到 target 的表面
// target 通常是 Draw 回调传入的 screen，可以在每帧通过 SetTarget 替换
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{
		target:      target,
		alpha:       newAlphaStack(),
		background:  color.White,
		lineColor:   color.Black,
		textColor:   color.Black,
		strokeWidth: 1,
		face:        text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetTarget 替换绘制目标
func (s *EbitenSurface) SetTarget(target *ebiten.Image) {
	s.target = target
}

// Alpha 返回当前不透明度
func (s *EbitenSurface) Alpha() float64 {
	return s.alpha.current
}

// Clear 用背景色填充整个表面
func (s *EbitenSurface) Clear() {
	s.target.Fill(s.background)
}

// DrawSprite 将 sheet 中 src 区域缩放绘制到 dst 区域
func (s *EbitenSurface) DrawSprite(sheet *components.SpriteSheet, src, dst Rect) {
	if sheet == nil || sheet.Image == nil || src.W <= 0 || src.H <= 0 {
		return
	}

	srcRect := image.Rect(int(src.X), int(src.Y), int(src.X+src.W), int(src.Y+src.H))
	frame := sheet.Image.SubImage(srcRect).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.ScaleAlpha(float32(s.alpha.current))
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(frame, op)
}

// StrokeLine 绘制一条线段
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1 float64) {
	vector.StrokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), s.strokeWidth, s.scaled(s.lineColor), true)
}

// DrawText 以内置位图字体在 (x, y) 处绘制一行文字，(x, y) 为文字左上角
func (s *EbitenSurface) DrawText(str string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(s.textColor)
	op.ColorScale.ScaleAlpha(float32(s.alpha.current))
	text.Draw(s.target, str, s.face, op)
}

// scaled 按当前不透明度缩放颜色的 alpha 分量
func (s *EbitenSurface) scaled(c color.Color) color.NRGBA {
	r, g, b, a := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(float64(a>>8) * s.alpha.current),
	}
}

// Save 保存当前绘制状态
func (s *EbitenSurface) Save() {
	s.alpha.save()
}

// Restore 恢复最近一次保存的绘制状态
func (s *EbitenSurface) Restore() {
	s.alpha.restore()
}

// SetAlpha 设置后续绘制的不透明度
func (s *EbitenSurface) SetAlpha(alpha float64) {
	s.alpha.set(alpha)
}
