package systems

import (
	"fmt"
	"testing"

	"github.com/gonewx/spawner/pkg/config"
	"github.com/gonewx/spawner/pkg/ecs"
	"github.com/gonewx/spawner/pkg/entities"
	"github.com/gonewx/spawner/pkg/render"
	"github.com/gonewx/spawner/pkg/utils"
)

// fakeEnemy 不移动的敌人，记录更新和绘制次数
type fakeEnemy struct {
	name         string
	y            float64
	marked       bool
	markOnUpdate bool
	updates      int
	draws   int
	trace   *[]string
}

func (e *fakeEnemy) IsMarkedForDeletion() bool { return e.marked }
func (e *fakeEnemy) Type() entities.EnemyType { return entities.EnemyWorm }
func (e *fakeEnemy) Position() (float64, float64) { return 0, e.y }
func (e *fakeEnemy) Size() (float64, float64) { return 10, 10 }
func (e *fakeEnemy) Frame() (int, int) { return 0, 0 }
func (e *fakeEnemy) Draw(surface render.Surface) { e.draws++ }
func (e *fakeEnemy) Update(deltaTime float64) {
	e.updates++
	if e.markOnUpdate {
		e.marked = true
	}
	if e.trace != nil {
		*e.trace = append(*e.trace, e.name)
	}
}

// fakeFactory 按顺序返回预先准备好的敌人
type fakeFactory struct {
	queue   []*fakeEnemy
	created int
}

func (f *fakeFactory) NewEnemy(enemyType entities.EnemyType) (entities.Enemy, error) {
	if len(f.queue) == 0 {
		return nil, fmt.Errorf("no more enemies")
	}
	e := f.queue[0]
	f.queue = f.queue[1:]
	f.created++
	return e, nil
}

func newRealSpawnSystem(t *testing.T, cfg *config.SpawnerConfig, rng utils.RandomSource) *EnemySpawnSystem {
	t.Helper()
	factory, err := entities.NewEnemyFactory(cfg, entities.NewSpriteSheets(cfg), rng)
	if err != nil {
		t.Fatalf("failed to create factory: %v", err)
	}
	return NewEnemySpawnSystem(factory, rng, cfg.SpawnTable, cfg.Loop.SpawnIntervalMs)
}

// spawnNext 推进直到发生一次生成（间隔为 0 时最多两次 Update）
func spawnNext(t *testing.T, s *EnemySpawnSystem) {
	t.Helper()
	before := s.SpawnedCount()
	for i := 0; i < 2; i++ {
		s.Update(1)
		if s.SpawnedCount() > before {
			return
		}
	}
	t.Fatalf("expected a spawn, spawned count stayed %d", before)
}

func TestEnemySpawnTimerScenario(t *testing.T) {
	cfg := config.DefaultSpawnerConfig()
	// 0.0: 选中 worm，速度取下限 0.1
	s := newRealSpawnSystem(t, cfg, utils.NewSequenceSource(0))

	s.Update(1500)
	if s.EnemyCount() != 0 {
		t.Errorf("expected no spawn on first update, got %d enemies", s.EnemyCount())
	}
	if current, _ := s.Timer(); current != 1500 {
		t.Errorf("expected timer 1500, got %.1f", current)
	}

	s.Update(500)
	if s.EnemyCount() != 1 {
		t.Fatalf("expected 1 enemy after second update, got %d", s.EnemyCount())
	}
	if current, _ := s.Timer(); current != 0 {
		t.Errorf("expected timer reset to 0, got %.1f", current)
	}
	worm := s.Enemies()[0]
	if worm.Type() != entities.EnemyWorm {
		t.Errorf("expected worm, got %s", worm.Type())
	}
	// 新敌人在生成的同一帧就会更新一次
	if x, _ := worm.Position(); !approx(x, 450) {
		t.Errorf("expected worm x=450 after spawn tick, got %.3f", x)
	}

	s.Update(600)
	if s.EnemyCount() != 1 {
		t.Errorf("expected still 1 enemy, got %d", s.EnemyCount())
	}
	if current, _ := s.Timer(); current != 600 {
		t.Errorf("expected timer 600, got %.1f", current)
	}
	if x, _ := worm.Position(); !approx(x, 390) {
		t.Errorf("expected worm x=390, got %.3f", x)
	}
}

func TestEnemySpawnTimerRequiresStrictlyExceeding(t *testing.T) {
	factory := &fakeFactory{queue: []*fakeEnemy{{name: "a"}}}
	s := NewEnemySpawnSystem(factory, utils.NewSequenceSource(0), []string{"worm"}, 1000)

	s.Update(1000)
	s.Update(16) // 计时器正好等于间隔，只累加
	if factory.created != 0 {
		t.Fatalf("expected no spawn at timer == interval, got %d", factory.created)
	}
	s.Update(16)
	if factory.created != 1 {
		t.Errorf("expected spawn once timer exceeds interval, got %d", factory.created)
	}
}

func TestEnemySpawnKeepsCollectionSortedByY(t *testing.T) {
	ys := []float64{300, 100, 200, 100, 50}
	factory := &fakeFactory{}
	for i, y := range ys {
		factory.queue = append(factory.queue, &fakeEnemy{name: fmt.Sprintf("e%d", i), y: y})
	}
	s := NewEnemySpawnSystem(factory, utils.NewSequenceSource(0), []string{"worm"}, 0)

	for i := range ys {
		spawnNext(t, s)

		enemies := s.Enemies()
		if len(enemies) != i+1 {
			t.Fatalf("expected %d enemies, got %d", i+1, len(enemies))
		}
		for j := 1; j < len(enemies); j++ {
			_, prev := enemies[j-1].Position()
			_, cur := enemies[j].Position()
			if prev > cur {
				t.Fatalf("spawn %d: collection not sorted by y at index %d (%.0f > %.0f)", i, j, prev, cur)
			}
		}
	}

	// 相同 Y 保持插入顺序：e1 在 e3 之前
	var order []string
	for _, e := range s.Enemies() {
		order = append(order, e.(*fakeEnemy).name)
	}
	expected := []string{"e4", "e1", "e3", "e2", "e0"}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("expected order %v, got %v", expected, order)
		}
	}
}

func TestEnemySpawnCullsLazily(t *testing.T) {
	a := &fakeEnemy{name: "a", y: 10}
	b := &fakeEnemy{name: "b", y: 20}
	factory := &fakeFactory{queue: []*fakeEnemy{a, b}}
	s := NewEnemySpawnSystem(factory, utils.NewSequenceSource(0), []string{"worm"}, 100)

	s.Update(101)
	s.Update(16)
	if s.EnemyCount() != 1 {
		t.Fatalf("expected 1 enemy, got %d", s.EnemyCount())
	}

	a.marked = true
	updatesBefore := a.updates
	s.Update(16)
	s.Draw(render.NewRecordingSurface())

	// 标记后直到下一次生成之前仍然保留、更新并绘制
	if s.EnemyCount() != 1 {
		t.Fatalf("marked enemy removed before next spawn")
	}
	if a.updates != updatesBefore+1 {
		t.Errorf("expected marked enemy to keep updating, got %d updates", a.updates-updatesBefore)
	}
	if a.draws != 1 {
		t.Errorf("expected marked enemy to still be drawn, got %d draws", a.draws)
	}

	s.Update(100)
	s.Update(16) // 生成 b 并清理 a
	enemies := s.Enemies()
	if len(enemies) != 1 || enemies[0] != entities.Enemy(b) {
		t.Errorf("expected only b to remain, got %d enemies", len(enemies))
	}
}

func TestEnemySpawnNewEnemyNotCulledSameTick(t *testing.T) {
	// 生成后第一次更新就标记删除（例如出生在屏幕外）
	doomed := &fakeEnemy{name: "doomed", markOnUpdate: true}
	next := &fakeEnemy{name: "next"}
	factory := &fakeFactory{queue: []*fakeEnemy{doomed, next}}
	s := NewEnemySpawnSystem(factory, utils.NewSequenceSource(0), []string{"worm"}, 0)

	spawnNext(t, s)
	if !doomed.marked {
		t.Fatal("expected new enemy to be updated and marked in its spawn tick")
	}
	if s.EnemyCount() != 1 {
		t.Fatalf("expected marked enemy to survive until next spawn, got %d enemies", s.EnemyCount())
	}

	spawnNext(t, s)
	enemies := s.Enemies()
	if len(enemies) != 1 || enemies[0] != entities.Enemy(next) {
		t.Errorf("expected marked enemy culled at next spawn, got %d enemies", len(enemies))
	}
}

func TestEnemySpawnUpdatesEachEnemyOnceInOrder(t *testing.T) {
	var trace []string
	factory := &fakeFactory{queue: []*fakeEnemy{
		{name: "low", y: 500, trace: &trace},
		{name: "high", y: 100, trace: &trace},
	}}
	s := NewEnemySpawnSystem(factory, utils.NewSequenceSource(0), []string{"worm"}, 0)

	spawnNext(t, s)
	spawnNext(t, s)

	trace = trace[:0]
	s.Update(16) // 计时器刚清零，不生成
	if len(trace) != 2 || trace[0] != "high" || trace[1] != "low" {
		t.Errorf("expected update order [high low], got %v", trace)
	}
}

func TestEnemySpawnCountMatchesConstructed(t *testing.T) {
	cfg := config.DefaultSpawnerConfig()
	cfg.Loop.SpawnIntervalMs = 50
	s := newRealSpawnSystem(t, cfg, utils.NewRandomSource(7))

	var listened []ecs.EntityID
	s.SetSpawnListener(func(id ecs.EntityID, enemy entities.Enemy) {
		if enemy == nil {
			t.Error("listener received nil enemy")
		}
		listened = append(listened, id)
	})

	for i := 0; i < 2000; i++ {
		s.Update(16)
	}

	if s.SpawnedCount() == 0 {
		t.Fatal("expected some spawns")
	}
	if len(listened) != s.SpawnedCount() {
		t.Errorf("expected %d listener calls, got %d", s.SpawnedCount(), len(listened))
	}
	for i := 1; i < len(listened); i++ {
		if listened[i] <= listened[i-1] {
			t.Fatalf("expected increasing entity IDs, got %d after %d", listened[i], listened[i-1])
		}
	}
	if s.EnemyCount() > s.SpawnedCount() {
		t.Errorf("alive count %d exceeds spawned count %d", s.EnemyCount(), s.SpawnedCount())
	}
}

func TestEnemySpawnTypeDistribution(t *testing.T) {
	cfg := config.DefaultSpawnerConfig()
	cfg.Loop.SpawnIntervalMs = 0
	s := newRealSpawnSystem(t, cfg, utils.NewRandomSource(42))

	counts := make(map[entities.EnemyType]int)
	s.SetSpawnListener(func(_ ecs.EntityID, enemy entities.Enemy) {
		counts[enemy.Type()]++
	})

	const spawns = 1000
	for s.SpawnedCount() < spawns {
		s.Update(1)
	}

	for _, enemyType := range []entities.EnemyType{entities.EnemyWorm, entities.EnemyGhost, entities.EnemySpider} {
		got := counts[enemyType]
		if got < 270 || got > 400 {
			t.Errorf("expected about 1/3 of %d spawns to be %s, got %d", spawns, enemyType, got)
		}
	}
}

func TestEnemySpawnDrawsOnlyEnemies(t *testing.T) {
	cfg := config.DefaultSpawnerConfig()
	cfg.SpawnTable = []string{"worm"}
	cfg.Loop.SpawnIntervalMs = 0
	s := newRealSpawnSystem(t, cfg, utils.NewSequenceSource(0.5))

	for i := 0; i < 3; i++ {
		spawnNext(t, s)
	}

	surface := render.NewRecordingSurface()
	s.Draw(surface)

	if len(surface.Calls) != 3 {
		t.Fatalf("expected 3 draw calls, got %d", len(surface.Calls))
	}
	for _, call := range surface.Calls {
		if call.Op != render.OpSprite || call.Sheet != "worm" {
			t.Errorf("expected worm sprite draw, got %+v", call)
		}
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
