package entities

import (
	"math"
	"testing"

	"github.com/gonewx/spawner/pkg/config"
	"github.com/gonewx/spawner/pkg/render"
	"github.com/gonewx/spawner/pkg/utils"
)

const floatTolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func newTestWorm(t *testing.T, values ...float64) *Worm {
	t.Helper()
	cfg := config.DefaultSpawnerConfig()
	sheets := NewSpriteSheets(cfg)
	return NewWorm(cfg.Enemies["worm"], sheets["worm"], cfg.Surface.Width, cfg.Surface.Height, utils.NewSequenceSource(values...))
}

func newTestGhost(t *testing.T, values ...float64) *Ghost {
	t.Helper()
	cfg := config.DefaultSpawnerConfig()
	sheets := NewSpriteSheets(cfg)
	return NewGhost(cfg.Enemies["ghost"], cfg.Ghost, sheets["ghost"], cfg.Surface.Width, cfg.Surface.Height, utils.NewSequenceSource(values...))
}

func newTestSpider(t *testing.T, values ...float64) *Spider {
	t.Helper()
	cfg := config.DefaultSpawnerConfig()
	sheets := NewSpriteSheets(cfg)
	return NewSpider(cfg.Enemies["spider"], cfg.Spider, sheets["spider"], cfg.Surface.Width, utils.NewSequenceSource(values...))
}

func TestWormSpawnState(t *testing.T) {
	w := newTestWorm(t, 0.5)

	x, y := w.Position()
	width, height := w.Size()

	if width != 114.5 || height != 85.5 {
		t.Errorf("expected size 114.5x85.5, got %.1fx%.1f", width, height)
	}
	if x != 500 {
		t.Errorf("expected x=500, got %.2f", x)
	}
	if y != 800-85.5 {
		t.Errorf("expected y=%.2f, got %.2f", 800-85.5, y)
	}
	if vx, vy := w.Velocity(); !approxEqual(vx, 0.15) || vy != 0 {
		t.Errorf("expected velocity (0.15, 0), got (%.3f, %.3f)", vx, vy)
	}
	if w.Type() != EnemyWorm {
		t.Errorf("expected type %s, got %s", EnemyWorm, w.Type())
	}
	if w.IsMarkedForDeletion() {
		t.Error("new worm should not be marked for deletion")
	}
}

func TestWormMovesLeftWithConstantY(t *testing.T) {
	w := newTestWorm(t, 0.3)
	_, startY := w.Position()
	prevX, _ := w.Position()

	for i := 0; i < 50; i++ {
		w.Update(16)
		x, y := w.Position()
		if x >= prevX {
			t.Fatalf("update %d: expected x to decrease, %.3f -> %.3f", i, prevX, x)
		}
		if y != startY {
			t.Fatalf("update %d: expected y to stay %.3f, got %.3f", i, startY, y)
		}
		prevX = x
	}
}

func TestWormLeavesLeftEdge(t *testing.T) {
	w := newTestWorm(t, 0.5)
	w.position.X = 250

	w.Update(3000)

	x, _ := w.Position()
	if !approxEqual(x, -200) {
		t.Errorf("expected x=-200, got %.3f", x)
	}
	if !w.IsMarkedForDeletion() {
		t.Error("expected worm to be marked for deletion after leaving the left edge")
	}
}

func TestWormNotMarkedWhilePartlyVisible(t *testing.T) {
	w := newTestWorm(t, 0.5)
	w.position.X = -100 // 宽度 114.5，仍有部分可见

	w.Update(0)

	if w.IsMarkedForDeletion() {
		t.Error("worm should stay alive while x >= -width")
	}
}

func TestDeletionFlagIsMonotonic(t *testing.T) {
	w := newTestWorm(t, 0.5)
	w.position.X = -200
	w.Update(16)
	if !w.IsMarkedForDeletion() {
		t.Fatal("expected worm to be marked")
	}

	// 即使被放回屏幕内，标记也不会撤销
	w.position.X = 300
	for i := 0; i < 10; i++ {
		w.Update(16)
		if !w.IsMarkedForDeletion() {
			t.Fatalf("deletion flag reverted after update %d", i)
		}
	}
}

func TestFrameIndexStaysInRangeAndCycles(t *testing.T) {
	enemies := []Enemy{
		newTestWorm(t, 0.5),
		newTestGhost(t, 0.5),
		newTestSpider(t, 0.5),
	}

	for _, e := range enemies {
		seen := make(map[int]bool)
		for i := 0; i < 500; i++ {
			e.Update(16)
			current, max := e.Frame()
			if current < 0 || current > max {
				t.Fatalf("%s: frame %d out of range [0, %d]", e.Type(), current, max)
			}
			seen[current] = true
		}
		_, max := e.Frame()
		if len(seen) != max+1 {
			t.Errorf("%s: expected all %d frames to be visited, got %d", e.Type(), max+1, len(seen))
		}
	}
}

func TestBaseDrawUsesCurrentFrameCell(t *testing.T) {
	w := newTestWorm(t, 0.5)
	w.animation.CurrentFrame = 3

	surface := render.NewRecordingSurface()
	w.Draw(surface)

	sprites := surface.Sprites()
	if len(sprites) != 1 {
		t.Fatalf("expected 1 sprite call, got %d", len(sprites))
	}

	call := sprites[0]
	expectedSrc := render.Rect{X: 3 * 229, Y: 0, W: 229, H: 171}
	if call.Src != expectedSrc {
		t.Errorf("expected src %+v, got %+v", expectedSrc, call.Src)
	}
	expectedDst := render.Rect{X: 500, Y: 800 - 85.5, W: 114.5, H: 85.5}
	if call.Dst != expectedDst {
		t.Errorf("expected dst %+v, got %+v", expectedDst, call.Dst)
	}
	if call.Sheet != "worm" {
		t.Errorf("expected sheet worm, got %s", call.Sheet)
	}
	if call.Alpha != 1 {
		t.Errorf("expected opaque draw, got alpha %.2f", call.Alpha)
	}
}

func TestDrawDoesNotMutateState(t *testing.T) {
	g := newTestGhost(t, 0.5)
	g.Update(16)
	before := *g

	g.Draw(render.NewRecordingSurface())

	if g.position != before.position || g.animation != before.animation || g.angle != before.angle {
		t.Error("draw should not mutate enemy state")
	}
}

func TestGhostSpawnState(t *testing.T) {
	g := newTestGhost(t, 0.5, 0.5, 0.5)

	x, y := g.Position()
	if x != 500 {
		t.Errorf("expected x=500, got %.2f", x)
	}
	if !approxEqual(y, 240) {
		t.Errorf("expected y=240, got %.3f", y)
	}
	if vx, _ := g.Velocity(); !approxEqual(vx, 0.15) {
		t.Errorf("expected vx=0.15, got %.3f", vx)
	}
	if !approxEqual(g.Curve(), 1.5) {
		t.Errorf("expected curve=1.5, got %.3f", g.Curve())
	}
	if g.angle != 0 {
		t.Errorf("expected angle=0, got %.3f", g.angle)
	}
	if width, height := g.Size(); width != 130.5 || height != 104.5 {
		t.Errorf("expected size 130.5x104.5, got %.1fx%.1f", width, height)
	}
}

func TestGhostBobs(t *testing.T) {
	g := newTestGhost(t, 0.5, 0.5, 0.5)

	// 第一次更新 angle=0，不产生垂直位移
	g.Update(16)
	_, y := g.Position()
	if !approxEqual(y, 240) {
		t.Errorf("expected y=240 after first update, got %.6f", y)
	}
	if !approxEqual(g.angle, 0.04) {
		t.Errorf("expected angle=0.04, got %.6f", g.angle)
	}

	g.Update(16)
	_, y = g.Position()
	expected := 240 + math.Sin(0.04)*1.5
	if !approxEqual(y, expected) {
		t.Errorf("expected y=%.6f after second update, got %.6f", expected, y)
	}

	// 角度步进不随时间缩放
	g.Update(1000)
	if !approxEqual(g.angle, 0.12) {
		t.Errorf("expected angle=0.12, got %.6f", g.angle)
	}
}

func TestGhostDrawScopesAlpha(t *testing.T) {
	g := newTestGhost(t, 0.5)
	surface := render.NewRecordingSurface()

	g.Draw(surface)
	surface.StrokeLine(0, 0, 1, 1)

	sprites := surface.Sprites()
	if len(sprites) != 1 {
		t.Fatalf("expected 1 sprite call, got %d", len(sprites))
	}
	if !approxEqual(sprites[0].Alpha, 0.7) {
		t.Errorf("expected ghost drawn at alpha 0.7, got %.2f", sprites[0].Alpha)
	}
	if surface.Alpha() != 1 {
		t.Errorf("expected alpha restored to 1, got %.2f", surface.Alpha())
	}
	if surface.SaveDepth() != 0 {
		t.Errorf("expected balanced save/restore, depth %d", surface.SaveDepth())
	}
	if lines := surface.Lines(); lines[0].Alpha != 1 {
		t.Errorf("expected later draws to be opaque, got alpha %.2f", lines[0].Alpha)
	}
}

func TestSpiderSpawnState(t *testing.T) {
	s := newTestSpider(t, 0.5, 0.5, 0.5)

	x, y := s.Position()
	width, height := s.Size()
	if width != 155 || height != 87 {
		t.Errorf("expected size 155x87, got %.1fx%.1f", width, height)
	}
	if x != 250 {
		t.Errorf("expected x=250, got %.2f", x)
	}
	if y != -87 {
		t.Errorf("expected y=-87, got %.2f", y)
	}
	if vx, vy := s.Velocity(); vx != 0 || !approxEqual(vy, 0.15) {
		t.Errorf("expected velocity (0, 0.15), got (%.3f, %.3f)", vx, vy)
	}
	if !approxEqual(s.MaxGoDown(), 200) {
		t.Errorf("expected maxGoDown=200, got %.3f", s.MaxGoDown())
	}
}

func TestSpiderDescendsBouncesAndRetracts(t *testing.T) {
	s := newTestSpider(t, 0.5, 0.5, 0.5)
	_, height := s.Size()

	bounced := false
	for i := 0; i < 200 && !s.IsMarkedForDeletion(); i++ {
		_, before := s.Position()
		s.Update(100)
		_, after := s.Position()
		x, _ := s.Position()

		if x != 250 {
			t.Fatalf("update %d: spider should not move horizontally, x=%.2f", i, x)
		}

		if s.IsMarkedForDeletion() {
			if !bounced {
				t.Fatalf("update %d: spider marked before bouncing", i)
			}
			if before >= -2*height {
				t.Fatalf("update %d: spider marked at y=%.2f, expected y < %.2f", i, before, -2*height)
			}
			break
		}

		if !bounced {
			if after < before {
				t.Fatalf("update %d: spider moved up before bouncing (%.2f -> %.2f)", i, before, after)
			}
			if _, vy := s.Velocity(); vy < 0 {
				bounced = true
				if after <= s.MaxGoDown() {
					t.Fatalf("update %d: bounced at y=%.2f without exceeding maxGoDown %.2f", i, after, s.MaxGoDown())
				}
			}
			continue
		}

		if after >= before {
			t.Fatalf("update %d: spider should retract after bouncing (%.2f -> %.2f)", i, before, after)
		}
	}

	if !s.IsMarkedForDeletion() {
		t.Error("expected spider to be marked for deletion after retracting")
	}
}

func TestSpiderBounceDoesNotJitter(t *testing.T) {
	s := newTestSpider(t, 0.5, 0.5, 0.5)
	s.position.Y = 300 // 远超下降上限 200

	s.Update(16)
	_, vy1 := s.Velocity()
	s.Update(16)
	_, vy2 := s.Velocity()

	if vy1 >= 0 || vy2 >= 0 {
		t.Errorf("expected spider to keep moving up while below maxGoDown, got vy %.3f then %.3f", vy1, vy2)
	}
}

func TestSpiderDrawsThreadThenBody(t *testing.T) {
	s := newTestSpider(t, 0.5, 0.5, 0.5)
	surface := render.NewRecordingSurface()

	s.Draw(surface)

	if len(surface.Calls) != 2 {
		t.Fatalf("expected 2 draw calls, got %d", len(surface.Calls))
	}
	if surface.Calls[0].Op != render.OpLine || surface.Calls[1].Op != render.OpSprite {
		t.Fatalf("expected line then sprite, got %v then %v", surface.Calls[0].Op, surface.Calls[1].Op)
	}

	line := surface.Calls[0].Dst
	expected := render.Rect{X: 327.5, Y: 0, W: 0, H: -87 + 10}
	if line != expected {
		t.Errorf("expected thread %+v, got %+v", expected, line)
	}
}
