package render

import "github.com/gonewx/spawner/pkg/components"

// DrawOp 记录的绘制操作类型
type DrawOp int

const (
	OpClear DrawOp = iota
	OpSprite
	OpLine
	OpText
)

// DrawCall 一次被记录的绘制调用
type DrawCall struct {
	Op    DrawOp
	Sheet string  // OpSprite 时的资源名称
	Src   Rect    // OpSprite 时的源矩形
	Dst   Rect    // OpSprite 时的目标矩形；OpLine 时 (X,Y)-(X+W,Y+H) 为线段两端
	Text  string  // OpText 时的文字；Dst 的 (X,Y) 为位置
	Alpha float64 // 调用发生时的不透明度
}

// RecordingSurface 记录所有绘制调用而不实际绘制
// 主要用于测试断言绘制顺序、源矩形和透明度作用域
type RecordingSurface struct {
	Calls []DrawCall
	alpha alphaStack
}

// NewRecordingSurface 创建一个空的记录表面
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{alpha: newAlphaStack()}
}

// Alpha 返回当前不透明度
func (s *RecordingSurface) Alpha() float64 {
	return s.alpha.current
}

// SaveDepth 返回尚未恢复的 Save 数量
func (s *RecordingSurface) SaveDepth() int {
	return len(s.alpha.saved)
}

// Sprites 返回所有精灵绘制调用
func (s *RecordingSurface) Sprites() []DrawCall {
	return s.filter(OpSprite)
}

// Lines 返回所有线段绘制调用
func (s *RecordingSurface) Lines() []DrawCall {
	return s.filter(OpLine)
}

// Texts 返回所有文字绘制调用
func (s *RecordingSurface) Texts() []DrawCall {
	return s.filter(OpText)
}

// Reset 清空记录
func (s *RecordingSurface) Reset() {
	s.Calls = s.Calls[:0]
}

func (s *RecordingSurface) filter(op DrawOp) []DrawCall {
	var result []DrawCall
	for _, c := range s.Calls {
		if c.Op == op {
			result = append(result, c)
		}
	}
	return result
}

func (s *RecordingSurface) Clear() {
	s.Calls = append(s.Calls, DrawCall{Op: OpClear, Alpha: s.alpha.current})
}

func (s *RecordingSurface) DrawSprite(sheet *components.SpriteSheet, src, dst Rect) {
	name := ""
	if sheet != nil {
		name = sheet.Name
	}
	s.Calls = append(s.Calls, DrawCall{Op: OpSprite, Sheet: name, Src: src, Dst: dst, Alpha: s.alpha.current})
}

func (s *RecordingSurface) StrokeLine(x0, y0, x1, y1 float64) {
	s.Calls = append(s.Calls, DrawCall{
		Op:    OpLine,
		Dst:   Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0},
		Alpha: s.alpha.current,
	})
}

func (s *RecordingSurface) DrawText(str string, x, y float64) {
	s.Calls = append(s.Calls, DrawCall{Op: OpText, Text: str, Dst: Rect{X: x, Y: y}, Alpha: s.alpha.current})
}

func (s *RecordingSurface) Save()                  { s.alpha.save() }
func (s *RecordingSurface) Restore()               { s.alpha.restore() }
func (s *RecordingSurface) SetAlpha(alpha float64) { s.alpha.set(alpha) }
