package systems

import (
	"cmp"
	"log"

	"github.com/gonewx/spawner/pkg/components"
	"github.com/gonewx/spawner/pkg/ecs"
	"github.com/gonewx/spawner/pkg/entities"
	"github.com/gonewx/spawner/pkg/render"
	"github.com/gonewx/spawner/pkg/utils"
)

// EnemyFactory 按类型创建敌人
// *entities.EnemyFactory 满足该接口
type EnemyFactory interface {
	NewEnemy(enemyType entities.EnemyType) (entities.Enemy, error)
}

// SpawnListener 每生成一个敌人后被调用一次
type SpawnListener func(id ecs.EntityID, enemy entities.Enemy)

// EnemySpawnSystem 管理敌人的定时生成、逐帧更新和惰性清理
//
// 每次 Update:
//  1. 计时器严格超过间隔时：从类型表中均匀随机选取一种敌人并追加到集合末尾，
//     按 Y 坐标升序稳定排序，计时器清零，然后移除所有已标记删除的敌人；
//     否则只累加计时器
//  2. 按集合顺序对每个敌人调用一次 Update
//
// 已标记的敌人会一直保留（并继续更新、绘制）到下一次生成时才被移除。
type EnemySpawnSystem struct {
	entityManager *ecs.EntityManager[entities.Enemy]
	factory       EnemyFactory
	rng           utils.RandomSource
	spawnTable    []entities.EnemyType
	spawnTimer    components.TimerComponent
	spawnedCount  int
	listener      SpawnListener
}

// NewEnemySpawnSystem 创建敌人生成系统
//
// 参数:
//   - factory: 敌人工厂
//   - rng: 随机源（用于选择生成类型）
//   - spawnTable: 生成类型表，不能为空
//   - spawnInterval: 生成间隔(毫秒)
func NewEnemySpawnSystem(factory EnemyFactory, rng utils.RandomSource, spawnTable []string, spawnInterval float64) *EnemySpawnSystem {
	table := make([]entities.EnemyType, 0, len(spawnTable))
	for _, name := range spawnTable {
		table = append(table, entities.EnemyType(name))
	}

	log.Printf("[EnemySpawnSystem] Initialized with interval=%.0fms, table=%v", spawnInterval, spawnTable)

	return &EnemySpawnSystem{
		entityManager: ecs.NewEntityManager[entities.Enemy](),
		factory:       factory,
		rng:           rng,
		spawnTable:    table,
		spawnTimer: components.TimerComponent{
			Name:       "enemy_spawn",
			TargetTime: spawnInterval,
		},
	}
}

// SetSpawnListener 设置生成回调，传入 nil 取消
func (s *EnemySpawnSystem) SetSpawnListener(listener SpawnListener) {
	s.listener = listener
}

// Update 推进生成计时器并更新所有敌人，deltaTime 单位为毫秒
func (s *EnemySpawnSystem) Update(deltaTime float64) {
	if s.spawnTimer.IsReady() {
		s.spawn()
		s.spawnTimer.Reset()

		// 清理放在追加和排序之后：新敌人不会在同一帧被移除
		if removed := s.entityManager.RemoveMarkedEntities(); removed > 0 {
			log.Printf("[EnemySpawnSystem] Removed %d enemies, %d alive", removed, s.entityManager.Len())
		}
	} else {
		s.spawnTimer.Accumulate(deltaTime)
	}

	s.entityManager.Each(func(_ ecs.EntityID, enemy entities.Enemy) {
		enemy.Update(deltaTime)
	})
}

// Draw 按集合顺序绘制所有敌人
func (s *EnemySpawnSystem) Draw(surface render.Surface) {
	s.entityManager.Each(func(_ ecs.EntityID, enemy entities.Enemy) {
		enemy.Draw(surface)
	})
}

func (s *EnemySpawnSystem) spawn() {
	enemyType := s.spawnTable[utils.RandIndex(s.rng, len(s.spawnTable))]

	enemy, err := s.factory.NewEnemy(enemyType)
	if err != nil {
		log.Printf("[EnemySpawnSystem] WARNING: Failed to create %s: %v", enemyType, err)
		return
	}

	id := s.entityManager.CreateEntity(enemy)
	s.entityManager.SortStableFunc(func(a, b entities.Enemy) int {
		_, ay := a.Position()
		_, by := b.Position()
		return cmp.Compare(ay, by)
	})
	s.spawnedCount++

	x, y := enemy.Position()
	log.Printf("[EnemySpawnSystem] Spawned %s (ID: %d) at (%.1f, %.1f), %d enemies alive",
		enemyType, id, x, y, s.entityManager.Len())

	if s.listener != nil {
		s.listener(id, enemy)
	}
}

// Enemies 返回按集合顺序排列的敌人快照（包括已标记但尚未清理的）
func (s *EnemySpawnSystem) Enemies() []entities.Enemy {
	return s.entityManager.Entities()
}

// EnemyCount 返回集合中的敌人数量
func (s *EnemySpawnSystem) EnemyCount() int {
	return s.entityManager.Len()
}

// SpawnedCount 返回累计生成的敌人数量
func (s *EnemySpawnSystem) SpawnedCount() int {
	return s.spawnedCount
}

// Timer 返回生成计时器的当前值和目标值(毫秒)
func (s *EnemySpawnSystem) Timer() (current, target float64) {
	return s.spawnTimer.CurrentTime, s.spawnTimer.TargetTime
}
