package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/spawner/pkg/components"
)

// Glyph 描述一个 spritesheet 在终端中的表现
// Frames 按动画帧循环使用
type Glyph struct {
	Frames []rune
	Color  tcell.Color
}

// DefaultGlyphs 返回内置敌人资源的终端字形表
func DefaultGlyphs() map[string]Glyph {
	return map[string]Glyph{
		"worm":   {Frames: []rune{'~', '≈'}, Color: tcell.ColorGreen},
		"ghost":  {Frames: []rune{'░', '▒'}, Color: tcell.ColorSilver},
		"spider": {Frames: []rune{'*', '✱'}, Color: tcell.ColorRed},
	}
}

var fallbackGlyph = Glyph{Frames: []rune{'#'}, Color: tcell.ColorWhite}

// TerminalSurface 将表面坐标映射到 tcell 屏幕的字符网格上
//
// 表面尺寸固定（与窗口版相同），终端尺寸变化时按比例缩放。
type TerminalSurface struct {
	screen    tcell.Screen
	width     float64
	height    float64
	glyphs    map[string]Glyph
	lineStyle tcell.Style
	textStyle tcell.Style
	alpha     alphaStack
}

// NewTerminalSurface 创建绘制到 screen 的终端表面
// width/height 是逻辑表面尺寸，而不是终端列数/行数
func NewTerminalSurface(screen tcell.Screen, width, height float64) *TerminalSurface {
	return &TerminalSurface{
		screen:    screen,
		width:     width,
		height:    height,
		glyphs:    DefaultGlyphs(),
		lineStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
		textStyle: tcell.StyleDefault.Foreground(tcell.ColorYellow),
		alpha:     newAlphaStack(),
	}
}

// SetGlyph 设置或覆盖某个资源的字形
func (s *TerminalSurface) SetGlyph(name string, glyph Glyph) {
	s.glyphs[name] = glyph
}

// Clear 清空终端
func (s *TerminalSurface) Clear() {
	s.screen.Clear()
}

// DrawSprite 用资源对应的字形填充 dst 覆盖的字符格
func (s *TerminalSurface) DrawSprite(sheet *components.SpriteSheet, src, dst Rect) {
	if sheet == nil {
		return
	}

	glyph, ok := s.glyphs[sheet.Name]
	if !ok || len(glyph.Frames) == 0 {
		glyph = fallbackGlyph
	}

	frame := 0
	if sheet.CellWidth > 0 {
		frame = int(src.X / sheet.CellWidth)
	}
	ch := glyph.Frames[frame%len(glyph.Frames)]

	style := tcell.StyleDefault.Foreground(glyph.Color)
	if s.alpha.current < 1 {
		style = style.Dim(true)
	}

	x0, y0 := s.toCell(dst.X, dst.Y)
	x1, y1 := s.toCellCeil(dst.X+dst.W, dst.Y+dst.H)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	cols, rows := s.screen.Size()
	for cy := max(y0, 0); cy < min(y1, rows); cy++ {
		for cx := max(x0, 0); cx < min(x1, cols); cx++ {
			s.screen.SetContent(cx, cy, ch, nil, style)
		}
	}
}

// StrokeLine 按字符格对线段采样绘制
func (s *TerminalSurface) StrokeLine(x0, y0, x1, y1 float64) {
	cx0, cy0 := s.toCell(x0, y0)
	cx1, cy1 := s.toCell(x1, y1)

	ch := '·'
	switch {
	case cx0 == cx1:
		ch = '│'
	case cy0 == cy1:
		ch = '─'
	}

	style := s.lineStyle
	if s.alpha.current < 1 {
		style = style.Dim(true)
	}

	steps := max(abs(cx1-cx0), abs(cy1-cy0))
	cols, rows := s.screen.Size()
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		cx := cx0 + int(math.Round(t*float64(cx1-cx0)))
		cy := cy0 + int(math.Round(t*float64(cy1-cy0)))
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
			continue
		}
		s.screen.SetContent(cx, cy, ch, nil, style)
	}
}

// DrawText 从 (x, y) 所在的字符格开始逐字符写入文字，超出右边缘的部分被截断
func (s *TerminalSurface) DrawText(str string, x, y float64) {
	cx, cy := s.toCell(x, y)
	cols, rows := s.screen.Size()
	if cy < 0 || cy >= rows {
		return
	}

	style := s.textStyle
	if s.alpha.current < 1 {
		style = style.Dim(true)
	}
	for _, r := range str {
		if cx >= cols {
			break
		}
		if cx >= 0 {
			s.screen.SetContent(cx, cy, r, nil, style)
		}
		cx++
	}
}

// Save 保存当前绘制状态
func (s *TerminalSurface) Save() {
	s.alpha.save()
}

// Restore 恢复最近一次保存的绘制状态
func (s *TerminalSurface) Restore() {
	s.alpha.restore()
}

// SetAlpha 设置后续绘制的不透明度，小于 1 时以暗色绘制
func (s *TerminalSurface) SetAlpha(alpha float64) {
	s.alpha.set(alpha)
}

func (s *TerminalSurface) toCell(x, y float64) (int, int) {
	cols, rows := s.screen.Size()
	return int(math.Floor(x * float64(cols) / s.width)), int(math.Floor(y * float64(rows) / s.height))
}

func (s *TerminalSurface) toCellCeil(x, y float64) (int, int) {
	cols, rows := s.screen.Size()
	return int(math.Ceil(x * float64(cols) / s.width)), int(math.Ceil(y * float64(rows) / s.height))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
